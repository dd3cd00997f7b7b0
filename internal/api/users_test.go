package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing email", func(t *testing.T) {
		w := env.do(t, testRequest{method: http.MethodPost, path: "/users", body: map[string]string{
			"password": "secret",
		}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing email"}`, w.Body.String())
	})

	t.Run("missing password", func(t *testing.T) {
		w := env.do(t, testRequest{method: http.MethodPost, path: "/users", body: map[string]string{
			"email": "bob@x.com",
		}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing password"}`, w.Body.String())
	})

	t.Run("success returns id and email only", func(t *testing.T) {
		w := env.do(t, testRequest{method: http.MethodPost, path: "/users", body: map[string]string{
			"email":    "bob@x.com",
			"password": "secret",
		}})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "bob@x.com", resp["email"])
		assert.NotEmpty(t, resp["id"])
		assert.NotContains(t, resp, "password")
		assert.NotContains(t, w.Body.String(), "secret")
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := env.do(t, testRequest{method: http.MethodPost, path: "/users", body: map[string]string{
			"email":    "bob@x.com",
			"password": "other",
		}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Already exist"}`, w.Body.String())

		count, err := env.users.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGetMe(t *testing.T) {
	env := newTestEnv(t)
	id := env.register(t, "alice@x.com", "secret1")
	token := env.connect(t, "alice@x.com", "secret1")

	t.Run("valid token", func(t *testing.T) {
		w := env.do(t, testRequest{method: http.MethodGet, path: "/users/me", token: token})
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id, resp["id"])
		assert.Equal(t, "alice@x.com", resp["email"])
	})

	t.Run("missing token", func(t *testing.T) {
		w := env.do(t, testRequest{method: http.MethodGet, path: "/users/me"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		w := env.do(t, testRequest{method: http.MethodGet, path: "/users/me", token: "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestStatusAndStats(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "pw")

	w := env.do(t, testRequest{method: http.MethodGet, path: "/status"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"redis":true,"db":true}`, w.Body.String())

	w = env.do(t, testRequest{method: http.MethodGet, path: "/stats"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":1,"files":0}`, w.Body.String())
}
