// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/models"
)

// messageRepository is the SQL implementation of [MessageRepository] over
// the "messages" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database failures carry the request's trace id.
type messageRepository struct {
	*DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by db.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveMessage inserts message and returns it with MessageID and timestamps
// filled in by the database.
func (m *messageRepository) SaveMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveMessageQuery(m.builder, message, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "messageRepository.SaveMessage").Msg("failed to build query")
		return models.Message{}, err
	}

	var saved models.Message
	err = m.withRetry(ctx, func() error {
		saved, err = scanMessage(m.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.SaveMessage").
			Int64("author_id", message.AuthorID).
			Str("algorithm", message.Algorithm).
			Msg("failed to save message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// GetMessage returns the message with messageID, or [ErrMessageNotFound].
func (m *messageRepository) GetMessage(ctx context.Context, messageID int64) (models.Message, error) {
	query, args, err := buildGetMessageQuery(m.builder, messageID)
	if err != nil {
		return models.Message{}, err
	}
	return m.queryOne(ctx, "messageRepository.GetMessage", query, args)
}

// GetLatestMessage returns the most recently created message, or
// [ErrMessageNotFound] when there is none.
func (m *messageRepository) GetLatestMessage(ctx context.Context) (models.Message, error) {
	query, args, err := buildLatestMessageQuery(m.builder)
	if err != nil {
		return models.Message{}, err
	}
	return m.queryOne(ctx, "messageRepository.GetLatestMessage", query, args)
}

// UpdateMessage applies patch to the message with messageID and returns the
// stored result.
func (m *messageRepository) UpdateMessage(ctx context.Context, messageID int64, patch models.MessagePatch) (models.Message, error) {
	query, args, err := buildUpdateMessageQuery(m.builder, messageID, patch, time.Now().UTC())
	if err != nil {
		return models.Message{}, err
	}
	return m.queryOne(ctx, "messageRepository.UpdateMessage", query, args)
}

// ListMessages returns messages oldest first; a zero limit returns all.
func (m *messageRepository) ListMessages(ctx context.Context, limit uint64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMessagesQuery(m.builder, limit)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.ListMessages").Msg("failed to build query")
		return nil, err
	}

	var rows *sql.Rows
	err = m.withRetry(ctx, func() error {
		rows, err = m.QueryContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "messageRepository.ListMessages").Msg("failed to execute query for listing messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		message, scanErr := scanMessage(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "messageRepository.ListMessages").Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		messages = append(messages, message)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "messageRepository.ListMessages").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return messages, nil
}

func (m *messageRepository) queryOne(ctx context.Context, funcName, query string, args []any) (models.Message, error) {
	log := logger.FromContext(ctx)

	var message models.Message
	err := m.withRetry(ctx, func() error {
		var scanErr error
		message, scanErr = scanMessage(m.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, ErrMessageNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return message, nil
}
