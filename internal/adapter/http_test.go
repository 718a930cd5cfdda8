package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *httpServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientConfig{Server: srv.URL, Timeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://chat.example.com/ ", want: "https://chat.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)

	a, err := NewHTTPServerAdapter(config.ClientConfig{Server: "localhost:1", Token: " tok "}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "tok", a.Token())
}

func TestRegister_StoresToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Login)
		assert.Equal(t, "secret", user.Password)

		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: "header-token"})
	})

	token, err := a.Register(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "header-token", token)
	assert.Equal(t, "header-token", a.Token())
}

func TestLogin(t *testing.T) {
	t.Run("token from body", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: "body-token"})
		})

		token, err := a.Login(context.Background(), models.User{Login: "bob", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "body-token", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "wrong password"})
		})

		_, err := a.Login(context.Background(), models.User{Login: "bob", Password: "nope"})

		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.ErrorContains(t, err, "wrong password")
		assert.Empty(t, a.Token())
	})

	t.Run("no token at all", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]string{})
		})

		_, err := a.Login(context.Background(), models.User{Login: "bob", Password: "pw"})

		assert.ErrorIs(t, err, ErrNoToken)
	})
}

func TestSendMessage_SendsBearer(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/message/", r.URL.Path)

		var req models.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusCreated, models.Message{MessageID: 11, Algorithm: req.Algorithm, Content: "Khoor", Key: req.Key})
	})
	a.SetToken("tok")

	message, err := a.SendMessage(context.Background(), models.SendMessageRequest{Algorithm: "caesar", Content: "Hello", Key: "3"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), message.MessageID)
	assert.Equal(t, "Khoor", message.Content)
}

func TestListMessages(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, []models.Message{{MessageID: 1}, {MessageID: 2}})
	})

	messages, err := a.ListMessages(context.Background(), 5)

	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestGetMessage_NotFound(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/message/404", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "message not found"})
	})

	_, err := a.GetMessage(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMessage(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/message/3", r.URL.Path)

		var req models.UpdateMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Plaintext)
		assert.Nil(t, req.Content)
		writeJSON(t, w, http.StatusOK, models.Message{MessageID: 3, Content: "E|h"})
	})

	plaintext := "Bye"
	message, err := a.UpdateMessage(context.Background(), 3, models.UpdateMessageRequest{Plaintext: &plaintext})

	require.NoError(t, err)
	assert.Equal(t, "E|h", message.Content)
}

func TestDecryptMessage(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/message/decrypt", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.DecryptMessageResponse{DecryptedContent: "Hello"})
	})

	resp, err := a.DecryptMessage(context.Background(), models.DecryptMessageRequest{MessageID: 1, Algorithm: "caesar", Key: "3"})

	require.NoError(t, err)
	assert.Equal(t, "Hello", resp.DecryptedContent)
}

func TestIntercept(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.InterceptResult{
			Message:          models.Message{MessageID: 9, Content: "Khoor"},
			DecryptedContent: "Hello",
		})
	})

	result, err := a.Intercept(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Hello", result.DecryptedContent)
	assert.Equal(t, int64(9), result.Message.MessageID)
}

func TestCaptcha(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/captcha/new":
			writeJSON(t, w, http.StatusOK, models.CaptchaChallenge{Token: "c1", ShuffledIDs: []int{3, 1, 0, 2}})
		case "/api/captcha/verify":
			var answer models.CaptchaAnswer
			require.NoError(t, json.NewDecoder(r.Body).Decode(&answer))
			if answer.Token == "c1" {
				writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "wrong order"})
				return
			}
			writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid captcha"})
		}
	})

	challenge, err := a.NewCaptcha(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 0, 2}, challenge.ShuffledIDs)

	err = a.VerifyCaptcha(context.Background(), models.CaptchaAnswer{Token: "c1", Sequence: []int{3, 1, 0, 2}})
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = a.VerifyCaptcha(context.Background(), models.CaptchaAnswer{Token: "gone", Sequence: []int{0, 1, 2, 3}})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestVersion(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v1.2.3"))
	})

	version, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", version)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
		text   string
	}{
		{status: http.StatusConflict, body: `{"error":"login already exists"}`, want: ErrConflict, text: "login already exists"},
		{status: http.StatusInternalServerError, body: "", want: ErrInternalServerError, text: "Internal Server Error"},
		{status: http.StatusBadRequest, body: "plain text", want: ErrBadRequest, text: "plain text"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := a.GetMessage(context.Background(), 1)

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, tt.text)
		})
	}

	t.Run("unmapped status", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		_, err := a.Version(context.Background())

		assert.EqualError(t, err, "http 418: I'm a teapot")
	})
}
