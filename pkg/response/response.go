package response

import (
	"encoding/json"
	"net/http"
)

// Result codes carried in every envelope
const (
	CodeSuccess     = 0
	CodeParamError  = 1
	CodeServerError = -1
)

// Response is the envelope returned by every endpoint: {errCode, errMessage?, data?}
type Response struct {
	ErrCode    int         `json:"errCode"`
	ErrMessage string      `json:"errMessage,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusOK, Response{
		ErrCode:    CodeSuccess,
		ErrMessage: message,
		Data:       data,
	})
}

// ParamError reports an in-band validation failure. Status stays 200; callers branch on errCode.
func ParamError(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Response{
		ErrCode:    CodeParamError,
		ErrMessage: message,
	})
}

func Error(w http.ResponseWriter, statusCode int, errCode int, message string) {
	JSON(w, statusCode, Response{
		ErrCode:    errCode,
		ErrMessage: message,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, CodeParamError, message)
}

func Conflict(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Conflict"
	}
	Error(w, http.StatusConflict, CodeParamError, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, CodeParamError, message)
}

func TooManyRequests(w http.ResponseWriter) {
	Error(w, http.StatusTooManyRequests, CodeServerError, "Too many requests")
}

func InternalServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, CodeServerError, "Error from server")
}
