// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is an enciphered chat message as stored by the server.
//
// Content always holds ciphertext. Key holds the boundary key string of
// the algorithm: the decimal shift for Caesar, the matrix for Hill and
// the JSON metadata for Playfair.
type Message struct {
	MessageID int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Algorithm string    `json:"algorithm"`
	Content   string    `json:"content"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// MessagePatch is a partial update of a stored message. Only non-nil
// fields are written.
type MessagePatch struct {
	Algorithm *string
	Content   *string
	Key       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p MessagePatch) IsEmpty() bool {
	return p.Algorithm == nil && p.Content == nil && p.Key == nil
}
