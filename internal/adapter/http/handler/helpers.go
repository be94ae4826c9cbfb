package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/caixaflow/caixaflow/internal/adapter/http/dto"
	"github.com/caixaflow/caixaflow/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with an explicit code.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// respondError maps a domain error to its HTTP status and stable wire code,
// carrying field-level details for validation failures.
func respondError(w http.ResponseWriter, err error) {
	resp := dto.ErrorResponse{
		Error:   domain.ErrorCode(err),
		Message: err.Error(),
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, f := range ve.Fields {
			resp.Fields = append(resp.Fields, dto.FieldErrorResponse{
				Field:   f.Field,
				Message: f.Message,
			})
		}
	}

	writeJSON(w, statusForError(err), resp)
}

func statusForError(err error) int {
	switch domain.ErrorCode(err) {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodePeriodClosed:
		return http.StatusConflict
	case domain.CodeDuplicateCode:
		return http.StatusConflict
	case domain.CodeAccountHasTransactions:
		return http.StatusConflict
	case domain.CodeSystemAccountLocked,
		domain.CodeSystemAccountDeleteForbidden:
		return http.StatusForbidden
	case domain.CodeValidationFailed,
		domain.CodeInvalidCodeFormat,
		domain.CodeInvalidCategoryForMovement:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseDateQuery parses a YYYY-MM-DD query parameter. A missing key yields a
// zero time; a malformed value yields an error.
func parseDateQuery(r *http.Request, key string) (time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return time.Time{}, nil
	}

	return domain.ParseDate(val)
}
