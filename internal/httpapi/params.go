package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

func parseIDVar(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id64 == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id64), nil
}

// parseListQuery reads page/limit/search; malformed numbers silently fall
// back to the defaults, matching the tolerant query contract.
func parseListQuery(r *http.Request) service.ListQuery {
	query := r.URL.Query()

	page := 0
	if parsed, err := strconv.Atoi(strings.TrimSpace(query.Get("page"))); err == nil {
		page = parsed
	}
	limit := 0
	if parsed, err := strconv.Atoi(strings.TrimSpace(query.Get("limit"))); err == nil {
		limit = parsed
	}

	return service.ListQuery{
		Page:   page,
		Limit:  limit,
		Search: query.Get("search"),
	}
}

// normalizedForPagination mirrors the service-side defaults so the
// envelope reports the page and limit actually used.
func normalizedForPagination(query service.ListQuery) service.ListQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 10
	}
	return query
}

func parseOptionalUintQuery(r *http.Request, name string) (*uint, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id64 == 0 {
		return nil, errors.New(name + " must be a positive integer")
	}
	id := uint(id64)
	return &id, nil
}
