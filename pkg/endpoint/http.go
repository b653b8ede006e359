package endpoint

import (
	"net/http"
	"strconv"
)

const defaultPageSize = 20

// queryInt parses an integer query parameter, falling back to def when
// the parameter is absent or malformed.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
