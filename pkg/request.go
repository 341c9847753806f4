package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

var ErrMissingPathVar = errors.New("missing path variable")

// PathInt reads a positive integer path variable set by the mux router.
func PathInt(r *http.Request, name string) (int, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, fmt.Errorf("%s: %w", name, ErrMissingPathVar)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s is not a number: %w", name, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("%s must be greater than 0", name)
	}
	return v, nil
}

// UserID returns the {user} path variable.
func UserID(r *http.Request) (int, error) {
	return PathInt(r, "user")
}
