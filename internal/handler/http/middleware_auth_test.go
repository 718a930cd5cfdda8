package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/cipher-chat/internal/service"
	"github.com/MKhiriev/cipher-chat/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		parseErr error
		parsed   bool
	}{
		{name: "no header"},
		{name: "not bearer", header: "Basic dXNlcjpwdw=="},
		{name: "bearer without token", header: "Bearer "},
		{name: "expired", header: testBearer, parseErr: service.ErrTokenIsExpired, parsed: true},
		{name: "forged", header: testBearer, parseErr: errors.New("signature is invalid"), parsed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			if tt.parsed {
				f.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(models.Token{}, tt.parseErr)
			}

			var header []string
			if tt.header != "" {
				header = []string{"Authorization", tt.header}
			}
			rec := f.do(http.MethodGet, "/api/message/", "", header...)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.NotEmpty(t, errorText(t, rec))
		})
	}
}

func TestAuthMiddleware_PassesUserID(t *testing.T) {
	f := newFixture(t, nil)
	f.authorize()
	f.messages.EXPECT().
		Send(gomock.Any(), int64(7), models.SendMessageRequest{Algorithm: "caesar", Content: "hi", Key: "3"}).
		Return(models.Message{MessageID: 1, AuthorID: 7}, nil)

	rec := f.do(http.MethodPost, "/api/message/", `{"algorithm":"caesar","content":"hi","key":"3"}`,
		"Authorization", testBearer)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
