package handler

import (
	"errors"
	"net/http"

	"bookingcare-service/internal/usecase"
	"bookingcare-service/pkg/response"
)

// writeError renders a usecase error: validation failures stay in-band with status 200,
// known conflicts get their own status, anything else is a server error.
func writeError(w http.ResponseWriter, err error) {
	if paramErr, ok := usecase.AsParamError(err); ok {
		response.JSON(w, http.StatusOK, response.Response{
			ErrCode:    paramErr.Code,
			ErrMessage: paramErr.Message,
		})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrMarkdownExists):
		response.Conflict(w, "Doctor markdown already exists")
	default:
		response.InternalServerError(w)
	}
}
