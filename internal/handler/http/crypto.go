package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/cipher-chat/internal/service"
	"github.com/MKhiriev/cipher-chat/internal/utils"
	"github.com/MKhiriev/cipher-chat/models"
)

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	h.runCodec(w, r, h.services.CipherService.Encrypt)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	h.runCodec(w, r, h.services.CipherService.Decrypt)
}

type codecFunc func(ctx context.Context, req models.CryptoRequest) (models.CryptoResponse, error)

func (h *Handler) runCodec(w http.ResponseWriter, r *http.Request, run codecFunc) {
	ctx := r.Context()

	var req models.CryptoRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "invalid crypto request")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid crypto request")
		return
	}

	resp, err := run(ctx, req)
	if err != nil {
		writeError(w, r, err, "codec call failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
