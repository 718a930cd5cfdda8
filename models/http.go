package models

import (
	"time"

	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/internal/stego"
)

// SendMessageRequest asks the server to encipher Content and store it.
// Key is the raw key material: a shift, a matrix or a Playfair keyword.
type SendMessageRequest struct {
	Algorithm string `json:"algorithm"`
	Content   string `json:"content"`
	Key       string `json:"key"`
}

// UpdateMessageRequest is a partial update of a stored message. When
// Plaintext is set the message is enciphered again with Algorithm and Key
// (falling back to the stored ones); otherwise Content, Algorithm and Key
// are written as given.
type UpdateMessageRequest struct {
	Plaintext *string `json:"plaintext,omitempty"`
	Content   *string `json:"content,omitempty"`
	Algorithm *string `json:"algorithm,omitempty"`
	Key       *string `json:"key,omitempty"`
}

// DecryptMessageRequest asks for the plaintext of a stored message.
// Key is ignored for Playfair, whose stored metadata is used instead.
type DecryptMessageRequest struct {
	MessageID int64  `json:"messageId"`
	Algorithm string `json:"algorithm"`
	Key       string `json:"key"`
}

// DecryptMessageResponse carries the recovered plaintext.
type DecryptMessageResponse struct {
	DecryptedContent string `json:"decryptedContent"`
}

// InterceptResult is what an eavesdropper sees: the latest message and,
// when its stored key worked, the plaintext.
type InterceptResult struct {
	Message          Message `json:"message"`
	DecryptedContent string  `json:"decryptedContent"`
	DecryptError     string  `json:"decryptError,omitempty"`
}

// CryptoRequest is a stateless encrypt or decrypt call. Size and MergeJ
// only apply to Playfair keywords; Meta, when present, makes Playfair
// decryption exact.
type CryptoRequest struct {
	Algorithm string               `json:"algorithm"`
	Text      string               `json:"text"`
	Key       string               `json:"key"`
	Size      int                  `json:"size,omitempty"`
	MergeJ    *bool                `json:"mergeJ,omitempty"`
	Meta      *crypto.PlayfairMeta `json:"meta,omitempty"`
}

// CryptoResponse is the result of a stateless codec call.
type CryptoResponse struct {
	Algorithm string               `json:"algorithm"`
	Result    string               `json:"result"`
	Meta      *crypto.PlayfairMeta `json:"meta,omitempty"`
}

// CaptchaChallenge is a freshly issued captcha.
type CaptchaChallenge struct {
	Token       string    `json:"token"`
	ShuffledIDs []int     `json:"shuffledIds"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// CaptchaAnswer is the tile order picked by the user.
type CaptchaAnswer struct {
	Token    string `json:"token"`
	Sequence []int  `json:"sequence"`
}

// CaptchaResult is the outcome of a successful verification.
type CaptchaResult struct {
	Success bool `json:"success"`
}

// StegoRequest carries a cover text and, for embedding, the secret.
type StegoRequest struct {
	Cover  string `json:"cover"`
	Secret string `json:"secret,omitempty"`
}

// StegoResponse describes a cover text after embedding or extraction.
type StegoResponse struct {
	Text     string         `json:"text,omitempty"`
	Secret   string         `json:"secret,omitempty"`
	Hidden   int            `json:"hidden"`
	Capacity stego.Capacity `json:"capacity"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
