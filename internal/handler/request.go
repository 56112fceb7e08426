package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/thrivelog/thrivelog/internal/apperr"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return apperr.New(apperr.ErrInvalidArgument, "request body too large")
		case errors.Is(err, io.EOF):
			return apperr.New(apperr.ErrInvalidArgument, "request body is required")
		}
		return apperr.Newf(apperr.ErrInvalidArgument, "invalid JSON body: %v", err)
	}
	return nil
}

// queryBool parses an optional boolean query parameter. Absent means nil.
func queryBool(r *http.Request, key string) (*bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, apperr.Newf(apperr.ErrInvalidArgument, "%s must be true or false", key)
	}
	return &b, nil
}

// queryInt parses an optional integer query parameter, returning def when absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.Newf(apperr.ErrInvalidArgument, "%s must be an integer", key)
	}
	return n, nil
}
