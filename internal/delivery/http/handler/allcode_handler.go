package handler

import (
	"net/http"

	"bookingcare-service/internal/usecase"
	"bookingcare-service/pkg/response"
)

type AllcodeHandler struct {
	allcodeUsecase usecase.AllcodeUsecase
}

func NewAllcodeHandler(allcodeUsecase usecase.AllcodeUsecase) *AllcodeHandler {
	return &AllcodeHandler{
		allcodeUsecase: allcodeUsecase,
	}
}

func (h *AllcodeHandler) GetAllcodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.allcodeUsecase.GetAllcodes(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, "", codes)
}
