package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrivelog/thrivelog/internal/apperr"
)

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Read"}`))
	require.NoError(t, decodeJSON(httptest.NewRecorder(), req, &v))
	assert.Equal(t, "Read", v.Title)

	for _, body := range []string{"", "{", `["title"]`} {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := decodeJSON(httptest.NewRecorder(), req, &v)
		assert.True(t, errors.Is(err, apperr.ErrInvalidArgument), body)
	}

	big := `{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	err := decodeJSON(httptest.NewRecorder(), req, &v)
	assert.Equal(t, "request body too large", apperr.Message(err))
}

func TestQueryParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?isActive=false&limit=5&bad=x", nil)

	b, err := queryBool(req, "isActive")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.False(t, *b)

	b, err = queryBool(req, "missing")
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = queryBool(req, "bad")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	n, err := queryInt(req, "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = queryInt(req, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = queryInt(req, "bad", 1)
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
}
