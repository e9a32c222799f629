package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
	"github.com/go-chi/chi/v5"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPathParam, name)
	}
	return id, nil
}

// pageFromQuery reads ?skip and ?limit. Missing values fall back to the
// page defaults; the upper limit is enforced by models.Page.Normalize.
func pageFromQuery(r *http.Request) (models.Page, error) {
	var page models.Page
	q := r.URL.Query()

	if v := q.Get("skip"); v != "" {
		skip, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return models.Page{}, fmt.Errorf("%w: skip", ErrInvalidQueryParam)
		}
		page.Skip = skip
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil || limit == 0 {
			return models.Page{}, fmt.Errorf("%w: limit", ErrInvalidQueryParam)
		}
		page.Limit = limit
	}

	return page.Normalize(), nil
}

func boolQuery(r *http.Request, name string) (*bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQueryParam, name)
	}
	return &b, nil
}

// userID returns the authenticated caller. Routes behind the auth
// middleware always have one.
func userID(r *http.Request) (int64, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, errNoUserInContext
	}
	return id, nil
}
