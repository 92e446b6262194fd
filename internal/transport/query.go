package transport

import (
	"net/http"
	"strconv"
)

// QueryInt reads an integer query parameter, falling back to def on absence
// or garbage.
func QueryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// QueryBool reads an optional boolean query parameter; nil means absent.
func QueryBool(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// PageQuery reads the common page/limit pair with sane bounds.
func PageQuery(r *http.Request) (page, limit int) {
	page = QueryInt(r, "page", 1)
	limit = QueryInt(r, "limit", 10)
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
