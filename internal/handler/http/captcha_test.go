package http

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/cipher-chat/internal/service"
	"github.com/MKhiriev/cipher-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewCaptcha(t *testing.T) {
	expiresAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	f := newFixture(t, nil)
	f.captcha.EXPECT().NewChallenge(gomock.Any()).Return(models.CaptchaChallenge{
		Token:       "tok",
		ShuffledIDs: []int{2, 0, 3, 1},
		ExpiresAt:   expiresAt,
	}, nil)

	rec := f.do(http.MethodPost, "/api/captcha/new", "")

	require.Equal(t, http.StatusOK, rec.Code)
	challenge := decodeResponse[models.CaptchaChallenge](t, rec)
	assert.Equal(t, "tok", challenge.Token)
	assert.Equal(t, []int{2, 0, 3, 1}, challenge.ShuffledIDs)
	assert.True(t, expiresAt.Equal(challenge.ExpiresAt))
}

func TestVerifyCaptcha(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "solved", wantStatus: http.StatusOK},
		{name: "wrong order", err: service.ErrCaptchaWrongOrder, wantStatus: http.StatusUnauthorized},
		{name: "expired", err: service.ErrCaptchaExpired, wantStatus: http.StatusBadRequest},
		{name: "unknown token", err: service.ErrCaptchaInvalid, wantStatus: http.StatusBadRequest},
		{
			name:       "short sequence",
			err:        fmt.Errorf("%w: sequence", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.captcha.EXPECT().
				Verify(gomock.Any(), models.CaptchaAnswer{Token: "tok", Sequence: []int{0, 1, 2, 3}}).
				Return(tt.err)

			rec := f.do(http.MethodPost, "/api/captcha/verify", `{"token":"tok","sequence":[0,1,2,3]}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"success":true}`, rec.Body.String())
			}
		})
	}
}
