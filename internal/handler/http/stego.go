package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/cipher-chat/internal/utils"
	"github.com/MKhiriev/cipher-chat/models"
)

func (h *Handler) embedSecret(w http.ResponseWriter, r *http.Request) {
	h.runStego(w, r, h.services.StegoService.Embed)
}

func (h *Handler) extractSecret(w http.ResponseWriter, r *http.Request) {
	h.runStego(w, r, h.services.StegoService.Extract)
}

func (h *Handler) inspectCover(w http.ResponseWriter, r *http.Request) {
	h.runStego(w, r, h.services.StegoService.Inspect)
}

func (h *Handler) runStego(w http.ResponseWriter, r *http.Request, run func(context.Context, models.StegoRequest) (models.StegoResponse, error)) {
	var req models.StegoRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "invalid stego request")
		return
	}

	resp, err := run(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "stego call failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
