package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"travel-bookings/internal/errors"
)

type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := Response{Data: data}
	json.NewEncoder(w).Encode(response)
}

func writeError(w http.ResponseWriter, appErr *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")

	statusCode := appErr.HTTPStatus()
	errResponse := Error{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Details: appErr.Details,
	}

	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{Error: &errResponse})
}

// writeServiceError keeps unexpected error values from leaking untyped.
func writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		writeError(w, appErr)
		return
	}
	writeError(w, errors.NewAppError(errors.InternalError, "an unexpected error occurred").WithDetails(err.Error()))
}

func pathID(r *http.Request, name string) (int64, *errors.AppError) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewAppErrorf(errors.InvalidInput, "invalid %s", name)
	}
	return id, nil
}

// parseAmount parses a monetary field. Amounts carry at most 2 fraction
// digits; anything finer would be silently rounded by the store's NUMERIC
// columns, so it is rejected here instead.
func parseAmount(value, field string) (decimal.Decimal, *errors.AppError) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, errors.NewAppErrorf(errors.InvalidInput, "invalid %s format", field)
	}
	rounded := amount.Round(2)
	if !amount.Equal(rounded) {
		return decimal.Decimal{}, errors.NewAppErrorf(errors.InvalidInput, "%s must have at most 2 fraction digits", field)
	}
	return rounded, nil
}
