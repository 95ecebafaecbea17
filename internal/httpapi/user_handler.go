package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

type UserHandler struct {
	service service.Users
	logger  *zap.Logger
}

func NewUserHandler(svc service.Users, logger *zap.Logger) *UserHandler {
	return &UserHandler{service: svc, logger: logger}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	query := service.UserListQuery{
		ListQuery: parseListQuery(r),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}

	users, total, err := h.service.List(r.Context(), query)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	normalized := normalizedForPagination(query.ListQuery)
	writeList(w, users, newPagination(normalized.Page, normalized.Limit, total))
}
