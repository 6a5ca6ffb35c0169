package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/bookly-app/bookly-server/internal/api/http/context"
	"github.com/bookly-app/bookly-server/internal/mocks"
	"github.com/bookly-app/bookly-server/internal/testutil"
)

func TestRouter_Register(t *testing.T) {
	r := New(
		&mocks.AuthService{},
		&mocks.BookService{},
		&mocks.TokenManager{},
		&mocks.TokenBlocklist{},
		httpcontext.NewManager(),
		testutil.MakeNoopLogger(),
	)

	e := r.Register()
	require.NotNil(t, e)

	routes := map[string]bool{}
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	assert.True(t, routes["POST /api/v1/auth/signup"])
	assert.True(t, routes["POST /api/v1/auth/login"])
	assert.True(t, routes["GET /api/v1/auth/refresh_token"])
	assert.True(t, routes["GET /api/v1/auth/logout"])
	assert.True(t, routes["GET /api/v1/books"])
	assert.True(t, routes["POST /api/v1/books"])
	assert.True(t, routes["GET /api/v1/books/:id"])
	assert.True(t, routes["PUT /api/v1/books/:id"])
	assert.True(t, routes["DELETE /api/v1/books/:id"])
}

func TestRouter_GuardedRoutesRequireToken(t *testing.T) {
	r := New(
		&mocks.AuthService{},
		&mocks.BookService{},
		&mocks.TokenManager{},
		&mocks.TokenBlocklist{},
		httpcontext.NewManager(),
		testutil.MakeNoopLogger(),
	)
	e := r.Register()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/books"},
		{http.MethodPost, "/api/v1/books"},
		{http.MethodGet, "/api/v1/auth/refresh_token"},
		{http.MethodGet, "/api/v1/auth/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			e.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
