package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookingcare-service/internal/delivery/dto"
	"bookingcare-service/internal/usecase"
	"bookingcare-service/pkg/response"

	"github.com/google/uuid"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) GetTopDoctorHome(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.ParamError(w, "Invalid limit")
			return
		}
		limit = parsed
	}

	doctors, err := h.doctorUsecase.GetTopDoctorHome(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, "", doctors)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, "", doctors)
}

func (h *DoctorHandler) SaveDetailInfoDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveDoctorInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ParamError(w, usecase.MsgMissingParameters)
		return
	}

	if err := h.doctorUsecase.SaveDetailInfoDoctor(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, "Save doctor info succeed!", nil)
}

func (h *DoctorHandler) GetDetailDoctorByID(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseUUIDQuery(r, "id")
	if !ok {
		response.ParamError(w, usecase.MsgMissingRequiredParameter)
		return
	}

	doctor, err := h.doctorUsecase.GetDetailDoctorByID(r.Context(), doctorID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, "", doctor)
}

func parseUUIDQuery(r *http.Request, key string) (uuid.UUID, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
