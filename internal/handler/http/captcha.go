package http

import (
	"net/http"

	"github.com/MKhiriev/cipher-chat/internal/utils"
	"github.com/MKhiriev/cipher-chat/models"
)

func (h *Handler) newCaptcha(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.services.CaptchaService.NewChallenge(r.Context())
	if err != nil {
		writeError(w, r, err, "captcha was not issued")
		return
	}

	utils.WriteJSON(w, challenge, http.StatusOK)
}

func (h *Handler) verifyCaptcha(w http.ResponseWriter, r *http.Request) {
	var answer models.CaptchaAnswer
	if err := decodeBody(r, &answer); err != nil {
		writeError(w, r, err, "invalid captcha answer")
		return
	}

	if err := h.services.CaptchaService.Verify(r.Context(), answer); err != nil {
		writeError(w, r, err, "captcha rejected")
		return
	}

	utils.WriteJSON(w, models.CaptchaResult{Success: true}, http.StatusOK)
}
