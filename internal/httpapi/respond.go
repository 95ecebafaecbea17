package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"

	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/apperror"
)

// Pagination is the envelope block accompanying every list response.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

func newPagination(page, limit int, total int64) *Pagination {
	return &Pagination{
		CurrentPage:  page,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

// envelope is the uniform response shape shared by every endpoint.
// Errors carries per-row failures; Error is the single batch-fatal
// detail the bulk endpoint echoes.
type envelope struct {
	Status     bool        `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Error      string      `json:"error,omitempty"`
	IsUpdate   *bool       `json:"isUpdate,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Status: true, Data: data})
}

func writeMessageData(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, envelope{Status: true, Message: message, Data: data})
}

func writeList(w http.ResponseWriter, data interface{}, pagination *Pagination) {
	writeJSON(w, http.StatusOK, envelope{Status: true, Data: data, Pagination: pagination})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Status: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Status: false, Message: message})
}

// respondWithError converts a service error into the envelope. Conflicts
// map to 400 alongside validation failures; only the generic message
// leaves the process on unexpected errors.
func respondWithError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation, apperror.CodeConflict:
		writeError(w, http.StatusBadRequest, err.Error())
	case apperror.CodeNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error("unexpected error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON rejects unknown fields and trailing content.
func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return errors.New("invalid JSON body")
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

// decodeJSONLenient tolerates unknown fields; bulk import rows come from
// spreadsheets that often carry extra columns.
func decodeJSONLenient(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}
