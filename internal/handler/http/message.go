// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/cipher-chat/internal/utils"
	"github.com/MKhiriev/cipher-chat/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "message without author")
		return
	}

	var req models.SendMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "invalid message")
		return
	}

	message, err := h.services.MessageService.Send(ctx, authorID, req)
	if err != nil {
		writeError(w, r, err, "message was not sent")
		return
	}

	utils.WriteJSON(w, message, http.StatusCreated)
}

// listMessages returns stored messages oldest first. The optional "limit"
// query parameter caps how many are returned.
func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, errors.Join(ErrInvalidQuery, err), "invalid limit")
			return
		}
		limit = parsed
	}

	messages, err := h.services.MessageService.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, err, "messages were not listed")
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := messageIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "invalid message ID")
		return
	}

	message, err := h.services.MessageService.Get(r.Context(), messageID)
	if err != nil {
		writeError(w, r, err, "message was not fetched")
		return
	}

	utils.WriteJSON(w, message, http.StatusOK)
}

func (h *Handler) updateMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := messageIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "invalid message ID")
		return
	}

	var req models.UpdateMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "invalid message update")
		return
	}

	message, err := h.services.MessageService.Update(r.Context(), messageID, req)
	if err != nil {
		writeError(w, r, err, "message was not updated")
		return
	}

	utils.WriteJSON(w, message, http.StatusOK)
}

func (h *Handler) decryptMessage(w http.ResponseWriter, r *http.Request) {
	var req models.DecryptMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "invalid decrypt request")
		return
	}

	resp, err := h.services.MessageService.Decrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "message was not decrypted")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// intercept shows what an eavesdropper with database access reads.
func (h *Handler) intercept(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.MessageService.Intercept(r.Context())
	if err != nil {
		writeError(w, r, err, "nothing was intercepted")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func messageIDFromPath(r *http.Request) (int64, error) {
	messageID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidQuery, err)
	}
	return messageID, nil
}
