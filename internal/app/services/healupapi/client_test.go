package healupapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestClient_Get(t *testing.T) {
	t.Run("Decodes Bare JSON Array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/doctors", r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderAccept))
			assert.Empty(t, r.Header.Get(constvars.HeaderAuthorization))

			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`[{"id":"D1","name":"Dr. Sarah Johnson"},{"id":"D2","name":"Dr. Michael Chen"}]`))
		}))
		defer server.Close()

		client := NewRestClient(server.URL, 5*time.Second)

		var out []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		err := client.Get(context.Background(), "/doctors", "", "doctor", &out)
		require.NoError(t, err)

		require.Len(t, out, 2)
		assert.Equal(t, "D1", out[0].ID)
		assert.Equal(t, "Dr. Michael Chen", out[1].Name)
	})

	t.Run("Injects Bearer Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret-token", r.Header.Get(constvars.HeaderAuthorization))
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewRestClient(server.URL, 5*time.Second)
		err := client.Get(context.Background(), "/appointments/me", "secret-token", "appointment", nil)
		require.NoError(t, err)
	})

	t.Run("Trailing Slash On Base URL Is Trimmed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/doctors/D1", r.URL.Path)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewRestClient(server.URL+"/", 5*time.Second)
		err := client.Get(context.Background(), "/doctors/D1", "", "doctor", nil)
		require.NoError(t, err)
	})
}

func TestRestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"id":"A1"}`))
	}))
	defer server.Close()

	client := NewRestClient(server.URL, 5*time.Second)

	body := map[string]string{"doctorId": "D1"}
	var out struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	err := client.Post(context.Background(), "/appointments", "tok", "appointment", body, &out)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "A1", out.ID)
}

func TestRestClient_ErrorSurfacing(t *testing.T) {
	t.Run("Upstream Message Forwarded Verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
		}))
		defer server.Close()

		client := NewRestClient(server.URL, 5*time.Second)
		err := client.Post(context.Background(), "/auth/login", "", "auth", map[string]string{}, nil)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, "Invalid credentials", customErr.ClientMessage)
	})

	t.Run("Unparseable Error Body Falls Back To Status Message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>Internal Server Error</html>`))
		}))
		defer server.Close()

		client := NewRestClient(server.URL, 5*time.Second)
		err := client.Get(context.Background(), "/doctors", "", "doctor", nil)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Equal(t, "Request failed with status 500", customErr.ClientMessage)
	})

	t.Run("Unreachable Upstream Is A Bad Gateway", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewRestClient(server.URL, time.Second)
		err := client.Get(context.Background(), "/doctors", "", "doctor", nil)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("Malformed Success Body Is A Decode Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":`))
		}))
		defer server.Close()

		client := NewRestClient(server.URL, 5*time.Second)

		var out struct{}
		err := client.Get(context.Background(), "/doctors/D1", "", "doctor", &out)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})
}
