package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/bookly-app/bookly-server/internal/api/http/context"
	servermocks "github.com/bookly-app/bookly-server/internal/mocks"
	"github.com/bookly-app/bookly-server/internal/model"
	"github.com/bookly-app/bookly-server/internal/service"
	"github.com/bookly-app/bookly-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(svc *servermocks.AuthService) *gin.Engine {
	ctxMgr := httpcontext.NewManager()
	h := NewAuth(svc, ctxMgr, testutil.MakeNoopLogger())

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/refresh_token", withClaims(ctxMgr), h.RefreshToken)
	r.GET("/auth/logout", withClaims(ctxMgr), h.Logout)
	return r
}

// withClaims stands in for the guard middleware and plants fixed claims.
func withClaims(ctxMgr model.ContextManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &model.TokenClaims{
			Subject:   model.Subject{UID: uuid.MustParse("2b41f2a8-76ae-4a3c-9e64-3b0e9c9b6a11"), Email: "a@b.c"},
			JTI:       "jti-1",
			ExpiresAt: time.Now().Add(time.Hour),
			Refresh:   true,
		}
		c.Request = c.Request.WithContext(ctxMgr.SetClaimsToContext(c.Request.Context(), claims))
		c.Next()
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	svc := &servermocks.AuthService{}
	now := time.Now().UTC().Truncate(time.Second)
	created := model.User{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "a@b.c",
		FirstName: "Alice",
		LastName:  "Doe",
		CreatedAt: now,
		UpdatedAt: now,
	}
	svc.On("Signup", mock.Anything, service.SignupParams{
		Username:  "alice",
		Email:     "a@b.c",
		Password:  "secret123",
		FirstName: "Alice",
		LastName:  "Doe",
	}).Return(created, nil)

	r := newAuthRouter(svc)

	body := `{"username":"alice","email":"a@b.c","password":"secret123","first_name":"Alice","last_name":"Doe"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID.String(), resp["uid"])
	assert.Equal(t, "alice", resp["username"])
	assert.Equal(t, false, resp["is_verified"])
	assert.NotContains(t, resp, "password_hash")
	svc.AssertExpectations(t)
}

func TestAuthHandler_Signup_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "bad email", body: `{"username":"a","email":"not-an-email","password":"secret","first_name":"A","last_name":"B"}`},
		{name: "short password", body: `{"username":"a","email":"a@b.c","password":"ab","first_name":"A","last_name":"B"}`},
		{name: "missing names", body: `{"username":"a","email":"a@b.c","password":"secret"}`},
		{name: "not json", body: `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &servermocks.AuthService{}
			r := newAuthRouter(svc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("Signup", mock.Anything, mock.Anything).Return(model.User{}, model.ErrEmailTaken)

	r := newAuthRouter(svc)

	body := `{"username":"alice","email":"a@b.c","password":"secret123","first_name":"Alice","last_name":"Doe"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body)))

	require.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user already exists with this email", resp["message"])
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &servermocks.AuthService{}
	userID := uuid.New()
	svc.On("Login", mock.Anything, "a@b.c", "secret123").Return(
		model.User{ID: userID, Email: "a@b.c"},
		service.TokenPair{Access: "access-token", Refresh: "refresh-token"},
		nil,
	)

	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"secret123"}`)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			Email string `json:"email"`
			UID   string `json:"uid"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	assert.Equal(t, "a@b.c", resp.User.Email)
	assert.Equal(t, userID.String(), resp.User.UID)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("Login", mock.Anything, "a@b.c", "wrong").Return(model.User{}, service.TokenPair{}, model.ErrInvalidCredentials)

	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"wrong"}`)))

	require.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid email or password", resp["message"])
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("Refresh", mock.Anything, mock.MatchedBy(func(claims *model.TokenClaims) bool {
		return claims.JTI == "jti-1" && claims.Refresh
	})).Return("new-access", nil)

	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/refresh_token", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "new-access", resp["access_token"])
}

func TestAuthHandler_RefreshToken_NoClaims(t *testing.T) {
	svc := &servermocks.AuthService{}
	ctxMgr := httpcontext.NewManager()
	h := NewAuth(svc, ctxMgr, testutil.MakeNoopLogger())

	r := gin.New()
	r.GET("/auth/refresh_token", h.RefreshToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/refresh_token", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("Logout", mock.Anything, mock.MatchedBy(func(claims *model.TokenClaims) bool {
		return claims.JTI == "jti-1"
	})).Return(nil)

	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "logged out successfully", resp["message"])
	svc.AssertExpectations(t)
}

func TestAuthHandler_Logout_BlocklistDown(t *testing.T) {
	svc := &servermocks.AuthService{}
	svc.On("Logout", mock.Anything, mock.Anything).Return(model.ErrBlocklistUnavailable)

	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
