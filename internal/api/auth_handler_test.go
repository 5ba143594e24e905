package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoserver/internal/api"
	"todoserver/internal/domain"
	"todoserver/internal/service"
	"todoserver/internal/service/auth"
	"todoserver/internal/store"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success is 201 with id and email only", func(t *testing.T) {
		handler := api.NewAuthHandler(&mockAuthService{})

		rec := postJSON(t, handler.Register, "/user/register",
			`{"email":"a@b.com","password":"password1"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(1), resp["id"])
		assert.Equal(t, "a@b.com", resp["email"])
		assert.NotContains(t, resp, "password")
		assert.NotContains(t, rec.Body.String(), "hashed")
	})

	t.Run("seven character password is 400", func(t *testing.T) {
		handler := api.NewAuthHandler(&mockAuthService{})

		rec := postJSON(t, handler.Register, "/user/register",
			`{"email":"a@b.com","password":"short1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("missing email is 400", func(t *testing.T) {
		handler := api.NewAuthHandler(&mockAuthService{})

		rec := postJSON(t, handler.Register, "/user/register", `{"password":"password1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		handler := api.NewAuthHandler(&mockAuthService{})

		rec := postJSON(t, handler.Register, "/user/register", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		handler := api.NewAuthHandler(&mockAuthService{registerErr: store.ErrEmailExists})

		rec := postJSON(t, handler.Register, "/user/register",
			`{"email":"a@b.com","password":"password1"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already exists")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("success returns account fields and token", func(t *testing.T) {
		handler := api.NewAuthHandler(&mockAuthService{
			loginResult: &service.LoginResult{
				Account: &domain.Account{ID: 3, Email: "a@b.com"},
				Token:   "issued-token",
			},
		})

		rec := postJSON(t, handler.Login, "/user/login",
			`{"email":"a@b.com","password":"password1"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(3), resp["id"])
		assert.Equal(t, "a@b.com", resp["email"])
		assert.Equal(t, "issued-token", resp["token"])
	})

	t.Run("bad credentials are 401 with generic message", func(t *testing.T) {
		handler := api.NewAuthHandler(&mockAuthService{loginErr: auth.ErrInvalidCredentials})

		rec := postJSON(t, handler.Login, "/user/login",
			`{"email":"a@b.com","password":"wrongpass1"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("missing password is 400", func(t *testing.T) {
		handler := api.NewAuthHandler(&mockAuthService{})

		rec := postJSON(t, handler.Login, "/user/login", `{"email":"a@b.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
