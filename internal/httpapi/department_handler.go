package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

type DepartmentHandler struct {
	service service.Departments
	logger  *zap.Logger
}

func NewDepartmentHandler(svc service.Departments, logger *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{service: svc, logger: logger}
}

type departmentRequest struct {
	Name  string `json:"name"`
	Plant string `json:"plant"`
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := parseListQuery(r)

	departments, total, err := h.service.List(r.Context(), query)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	query = normalizedForPagination(query)
	writeList(w, departments, newPagination(query.Page, query.Limit, total))
}

func (h *DepartmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	department, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, department)
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req departmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	department, err := h.service.Create(r.Context(), service.DepartmentInput{
		Name:  req.Name,
		Plant: req.Plant,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessageData(w, http.StatusCreated, "Department created successfully", department)
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	var req departmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	department, err := h.service.Update(r.Context(), id, service.DepartmentInput{
		Name:  req.Name,
		Plant: req.Plant,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessageData(w, http.StatusOK, "Department updated successfully", department)
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessage(w, http.StatusOK, "Department deleted successfully")
}
