// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/store"
	"github.com/MKhiriev/cipher-chat/models"
)

// messageService enciphers chat messages through a CipherService and keeps
// them in a MessageRepository. Only ciphertext is ever persisted; the key
// column holds whatever is needed to read the message back.
type messageService struct {
	messages store.MessageRepository
	cipher   CipherService

	logger *logger.Logger
}

func NewMessageService(messages store.MessageRepository, cipher CipherService, logger *logger.Logger) MessageService {
	return &messageService{
		messages: messages,
		cipher:   cipher,
		logger:   logger,
	}
}

// Send enciphers req.Content and stores it for authorID. Playfair messages
// store their metadata as the key so that decryption is exact.
func (m *messageService) Send(ctx context.Context, authorID int64, req models.SendMessageRequest) (models.Message, error) {
	log := logger.FromContext(ctx)

	message, err := m.seal(ctx, req.Algorithm, req.Content, req.Key)
	if err != nil {
		log.Err(err).Str("func", "messageService.Send").Int64("author_id", authorID).Msg("message was not enciphered")
		return models.Message{}, err
	}
	message.AuthorID = authorID

	saved, err := m.messages.SaveMessage(ctx, message)
	if err != nil {
		log.Err(err).Str("func", "messageService.Send").Int64("author_id", authorID).Msg("message was not saved")
		return models.Message{}, fmt.Errorf("message was not saved: %w", err)
	}

	return saved, nil
}

// List returns stored messages oldest first. A zero limit returns all of them.
func (m *messageService) List(ctx context.Context, limit uint64) ([]models.Message, error) {
	messages, err := m.messages.ListMessages(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "messageService.List").Msg("messages were not listed")
		return nil, fmt.Errorf("messages were not listed: %w", err)
	}
	return messages, nil
}

func (m *messageService) Get(ctx context.Context, messageID int64) (models.Message, error) {
	message, err := m.messages.GetMessage(ctx, messageID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "messageService.Get").Int64("message_id", messageID).Msg("message was not fetched")
		return models.Message{}, fmt.Errorf("message was not fetched: %w", err)
	}
	return message, nil
}

// Update applies a partial change to a stored message. With Plaintext set
// the message is enciphered again; the algorithm and key fall back to the
// stored ones when the request leaves them out. Without Plaintext the
// given fields are written as they are.
func (m *messageService) Update(ctx context.Context, messageID int64, req models.UpdateMessageRequest) (models.Message, error) {
	log := logger.FromContext(ctx)

	var patch models.MessagePatch
	if req.Plaintext != nil {
		stored, err := m.messages.GetMessage(ctx, messageID)
		if err != nil {
			log.Err(err).Str("func", "messageService.Update").Int64("message_id", messageID).Msg("message was not fetched")
			return models.Message{}, fmt.Errorf("message was not fetched: %w", err)
		}

		algorithm, key := stored.Algorithm, stored.Key
		if req.Algorithm != nil {
			algorithm = *req.Algorithm
		}
		if req.Key != nil {
			key = *req.Key
		}

		sealed, err := m.seal(ctx, algorithm, *req.Plaintext, key)
		if err != nil {
			log.Err(err).Str("func", "messageService.Update").Int64("message_id", messageID).Msg("message was not enciphered")
			return models.Message{}, err
		}
		patch = models.MessagePatch{Algorithm: &sealed.Algorithm, Content: &sealed.Content, Key: &sealed.Key}
	} else {
		patch = models.MessagePatch{Content: req.Content, Key: req.Key}
		if req.Algorithm != nil {
			algorithm, err := crypto.ParseAlgorithm(*req.Algorithm)
			if err != nil {
				return models.Message{}, err
			}
			name := string(algorithm)
			patch.Algorithm = &name
		}
	}

	updated, err := m.messages.UpdateMessage(ctx, messageID, patch)
	if err != nil {
		log.Err(err).Str("func", "messageService.Update").Int64("message_id", messageID).Msg("message was not updated")
		return models.Message{}, fmt.Errorf("message was not updated: %w", err)
	}
	return updated, nil
}

// Decrypt reads a stored message back. Caesar and Hill use the key from
// the request; Playfair ignores it and uses the stored metadata.
func (m *messageService) Decrypt(ctx context.Context, req models.DecryptMessageRequest) (models.DecryptMessageResponse, error) {
	log := logger.FromContext(ctx)

	algorithm, err := crypto.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return models.DecryptMessageResponse{}, err
	}

	message, err := m.messages.GetMessage(ctx, req.MessageID)
	if err != nil {
		log.Err(err).Str("func", "messageService.Decrypt").Int64("message_id", req.MessageID).Msg("message was not fetched")
		return models.DecryptMessageResponse{}, fmt.Errorf("message was not fetched: %w", err)
	}

	key := req.Key
	if algorithm == crypto.Playfair {
		key = message.Key
	}

	plain, err := m.cipher.Decrypt(ctx, models.CryptoRequest{
		Algorithm: string(algorithm),
		Text:      message.Content,
		Key:       key,
	})
	if err != nil {
		return models.DecryptMessageResponse{}, err
	}

	return models.DecryptMessageResponse{DecryptedContent: plain.Result}, nil
}

// Intercept decrypts the latest message with the key stored next to it.
// A message that cannot be decrypted is still returned, with its
// ciphertext as content and the failure in DecryptError.
func (m *messageService) Intercept(ctx context.Context) (models.InterceptResult, error) {
	log := logger.FromContext(ctx)

	message, err := m.messages.GetLatestMessage(ctx)
	if err != nil {
		log.Err(err).Str("func", "messageService.Intercept").Msg("no message to intercept")
		return models.InterceptResult{}, fmt.Errorf("no message to intercept: %w", err)
	}

	result := models.InterceptResult{Message: message, DecryptedContent: message.Content}
	plain, err := m.cipher.Decrypt(ctx, models.CryptoRequest{
		Algorithm: message.Algorithm,
		Text:      message.Content,
		Key:       message.Key,
	})
	if err != nil {
		log.Warn().Err(err).Int64("message_id", message.MessageID).Msg("intercepted message was not decrypted")
		result.DecryptError = err.Error()
		return result, nil
	}

	result.DecryptedContent = plain.Result
	return result, nil
}

// seal enciphers plaintext and returns an unsaved message holding the
// canonical algorithm name, the ciphertext and the key to store.
func (m *messageService) seal(ctx context.Context, algorithm, plaintext, rawKey string) (models.Message, error) {
	resp, err := m.cipher.Encrypt(ctx, models.CryptoRequest{Algorithm: algorithm, Text: plaintext, Key: rawKey})
	if err != nil {
		return models.Message{}, err
	}

	key, err := storedKey(crypto.Algorithm(resp.Algorithm), rawKey, resp.Meta)
	if err != nil {
		return models.Message{}, err
	}

	return models.Message{Algorithm: resp.Algorithm, Content: resp.Result, Key: key}, nil
}

// storedKey returns the key column value: the metadata JSON when the codec
// produced one, otherwise the canonical form of rawKey.
func storedKey(algorithm crypto.Algorithm, rawKey string, meta *crypto.PlayfairMeta) (string, error) {
	if meta != nil {
		return crypto.PlayfairKey{Keyword: meta.Key, Size: meta.Size, MergeJ: meta.MergeJ, Meta: meta}.String(), nil
	}

	key, err := crypto.ParseKey(algorithm, rawKey)
	if err != nil {
		return "", err
	}
	return key.String(), nil
}
