package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

type CategoryHandler struct {
	service service.Categories
	logger  *zap.Logger
}

func NewCategoryHandler(svc service.Categories, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{service: svc, logger: logger}
}

type categoryRequest struct {
	Name  string `json:"name"`
	Plant string `json:"plant"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	query := parseListQuery(r)

	categories, total, err := h.service.List(r.Context(), query)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	query = normalizedForPagination(query)
	writeList(w, categories, newPagination(query.Page, query.Limit, total))
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.service.Create(r.Context(), service.CategoryInput{
		Name:  req.Name,
		Plant: req.Plant,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessageData(w, http.StatusCreated, "Category created successfully", category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.service.Update(r.Context(), id, service.CategoryInput{
		Name:  req.Name,
		Plant: req.Plant,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessageData(w, http.StatusOK, "Category updated successfully", category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessage(w, http.StatusOK, "Category deleted successfully")
}
