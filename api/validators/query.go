package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/packline/inventory-api/pkg/errors"
)

// ParseQueryInt reads an integer query parameter, falling back to defaultVal
// when absent. There is deliberately no upper bound; callers may request
// arbitrarily large pages.
func ParseQueryInt(r *http.Request, key string, defaultVal, min int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min})
	}
	return value, nil
}
