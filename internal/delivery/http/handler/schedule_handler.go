package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookingcare-service/internal/delivery/dto"
	"bookingcare-service/internal/usecase"
	"bookingcare-service/pkg/response"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
	}
}

// BulkCreateSchedule handles POST /api/v1/bulk-create-schedule.
// A slot's maxNumber is optional and defaults to MAX_NUMBER_SCHEDULE; an explicit
// maxNumber below 1 is answered like any other malformed body, with errCode 1 and
// "Missing required parameter".
func (h *ScheduleHandler) BulkCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkCreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ParamError(w, usecase.MsgMissingRequiredParameter)
		return
	}

	result, err := h.scheduleUsecase.BulkCreateSchedule(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, "Succeed!", result)
}

func (h *ScheduleHandler) GetScheduleByDate(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseUUIDQuery(r, "doctorId")
	if !ok {
		response.ParamError(w, usecase.MsgMissingRequiredParameters)
		return
	}

	date, err := strconv.ParseInt(r.URL.Query().Get("date"), 10, 64)
	if err != nil {
		response.ParamError(w, usecase.MsgMissingRequiredParameters)
		return
	}

	schedules, err := h.scheduleUsecase.GetScheduleByDate(r.Context(), doctorID, date)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, "", schedules)
}
