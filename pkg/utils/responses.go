package utils

import (
	"encoding/json"
	"net/http"

	"realty-backend/pkg/apperror"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errors any) {
	writeJSON(w, code, Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errors,
	})
}

func writeJSON(w http.ResponseWriter, code int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, data, nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, data, nil)
}

// ------------- Error responses -------------

// ResponseError writes a typed application error with its machine code.
func ResponseError(w http.ResponseWriter, err *apperror.Error) {
	resp := Response{
		Status:  false,
		Message: err.Message,
		Code:    err.Code,
		Error:   err.Message,
	}
	if len(err.Fields) > 0 {
		resp.Errors = err.Fields
	}
	if err.Kind == apperror.KindInternal {
		resp.Message = "Internal server error"
		resp.Error = resp.Message
	}
	writeJSON(w, err.HTTPStatus(), resp)
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	code := apperror.CodeValidation
	writeJSON(w, http.StatusBadRequest, Response{Message: message, Errors: errors, Code: code, Error: message})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{Message: message, Code: apperror.CodeUnauthorized, Error: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{Message: message, Code: apperror.CodeNotFound, Error: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{Message: message, Code: apperror.CodeInternal, Error: message})
}

// returns 503 Service Unavailable
func ResponseUnavailable(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusServiceUnavailable, Response{Message: message, Code: "UNAVAILABLE", Error: message})
}
