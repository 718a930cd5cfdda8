package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/service"
	"github.com/MKhiriev/cipher-chat/internal/store"
	"github.com/MKhiriev/cipher-chat/internal/utils"
	"github.com/MKhiriev/cipher-chat/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	utils.ErrInvalidAuthorization: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidQuery:               http.StatusBadRequest,
	utils.ErrEmptyBody:            http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrCaptchaInvalid:          http.StatusBadRequest,
	service.ErrCaptchaExpired:          http.StatusBadRequest,
	service.ErrCaptchaWrongOrder:       http.StatusUnauthorized,

	crypto.ErrInvalidKey:       http.StatusBadRequest,
	crypto.ErrNotInvertible:    http.StatusBadRequest,
	crypto.ErrInvalidSize:      http.StatusBadRequest,
	crypto.ErrUnknownAlgorithm: http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrMessageNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with a JSON [models.ErrorResponse].
// Server-side failures are reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	text := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		text = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: text}, status)
}

// decodeBody decodes the JSON request body into dst, mapping every decoding
// failure to ErrInvalidJSON.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return errors.Join(ErrInvalidJSON, err)
	}
	return nil
}
