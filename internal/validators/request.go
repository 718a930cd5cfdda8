package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/models"
)

// Field names accepted by [RequestValidator.Validate] to restrict
// validation to a subset of fields.
const (
	FieldAlgorithm = "algorithm"
	FieldContent   = "content"
	FieldKey       = "key"
	FieldText      = "text"
	FieldSize      = "size"
	FieldMessageID = "message_id"
	FieldPatch     = "patch"
	FieldLogin     = "login"
	FieldPassword  = "password"
	FieldToken     = "token"
	FieldSequence  = "sequence"
	FieldCover     = "cover"
	FieldSecret    = "secret"
)

const (
	maxLoginLength    = 64
	maxPasswordLength = 128

	// CaptchaTiles is the number of tiles a captcha answer orders.
	CaptchaTiles = 4
)

// RequestValidator checks the request models accepted by the HTTP API.
// Both value and pointer forms are accepted.
type RequestValidator struct {
}

// NewRequestValidator returns a [Validator] for API requests.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj:
//   - models.SendMessageRequest: algorithm, content, key
//   - models.UpdateMessageRequest: patch
//   - models.DecryptMessageRequest: message_id, algorithm, key
//   - models.CryptoRequest: algorithm, text, key, size
//   - models.User: login, password
//   - models.CaptchaAnswer: token, sequence
//   - models.StegoRequest: cover (secret only when requested)
//
// Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SendMessageRequest:
		return v.validateSendMessage(value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessage(*value, fields...)

	case models.UpdateMessageRequest:
		return v.validateUpdateMessage(value, fields...)
	case *models.UpdateMessageRequest:
		return v.validateUpdateMessage(*value, fields...)

	case models.DecryptMessageRequest:
		return v.validateDecryptMessage(value, fields...)
	case *models.DecryptMessageRequest:
		return v.validateDecryptMessage(*value, fields...)

	case models.CryptoRequest:
		return v.validateCrypto(value, fields...)
	case *models.CryptoRequest:
		return v.validateCrypto(*value, fields...)

	case models.User:
		return v.validateCredentials(value, fields...)
	case *models.User:
		return v.validateCredentials(*value, fields...)

	case models.CaptchaAnswer:
		return v.validateCaptchaAnswer(value, fields...)
	case *models.CaptchaAnswer:
		return v.validateCaptchaAnswer(*value, fields...)

	case models.StegoRequest:
		return v.validateStego(value, fields...)
	case *models.StegoRequest:
		return v.validateStego(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validAlgorithm(name string) bool {
	_, err := crypto.ParseAlgorithm(name)
	return err == nil
}

func isPlayfair(name string) bool {
	algorithm, err := crypto.ParseAlgorithm(name)
	return err == nil && algorithm == crypto.Playfair
}

func (v *RequestValidator) validateSendMessage(request models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAlgorithm, FieldContent, FieldKey}
	}

	for _, f := range fields {
		switch f {
		case FieldAlgorithm:
			if !validAlgorithm(request.Algorithm) {
				return ErrInvalidAlgorithm
			}
		case FieldContent:
			if request.Content == "" {
				return ErrEmptyContent
			}
		case FieldKey:
			if strings.TrimSpace(request.Key) == "" {
				return ErrEmptyKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateMessage only checks fields that are present: nil means
// "keep the stored value".
func (v *RequestValidator) validateUpdateMessage(request models.UpdateMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if request.Plaintext == nil && request.Content == nil && request.Algorithm == nil && request.Key == nil {
				return ErrNoFieldsToUpdate
			}
			if request.Plaintext != nil && request.Content != nil {
				return ErrConflictingContent
			}
			if request.Algorithm != nil && !validAlgorithm(*request.Algorithm) {
				return ErrInvalidAlgorithm
			}
			if request.Key != nil && strings.TrimSpace(*request.Key) == "" {
				return ErrEmptyKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDecryptMessage(request models.DecryptMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessageID, FieldAlgorithm, FieldKey}
	}

	for _, f := range fields {
		switch f {
		case FieldMessageID:
			if request.MessageID <= 0 {
				return ErrInvalidMessageID
			}
		case FieldAlgorithm:
			if !validAlgorithm(request.Algorithm) {
				return ErrInvalidAlgorithm
			}
		case FieldKey:
			// Playfair messages are decrypted with their stored metadata.
			if strings.TrimSpace(request.Key) == "" && !isPlayfair(request.Algorithm) {
				return ErrEmptyKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCrypto(request models.CryptoRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAlgorithm, FieldText, FieldKey, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldAlgorithm:
			if !validAlgorithm(request.Algorithm) {
				return ErrInvalidAlgorithm
			}
		case FieldText:
			if request.Text == "" {
				return ErrEmptyText
			}
		case FieldKey:
			if strings.TrimSpace(request.Key) == "" && request.Meta == nil {
				return ErrEmptyKey
			}
		case FieldSize:
			if request.Size != 0 && request.Size != 5 && request.Size != 6 {
				return ErrInvalidSquareSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCredentials(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if user.Login == "" || utf8.RuneCountInString(user.Login) > maxLoginLength ||
				strings.IndexFunc(user.Login, unicode.IsSpace) >= 0 {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if user.Password == "" || utf8.RuneCountInString(user.Password) > maxPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCaptchaAnswer(answer models.CaptchaAnswer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldSequence}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if answer.Token == "" {
				return ErrInvalidCaptchaToken
			}
		case FieldSequence:
			if len(answer.Sequence) != CaptchaTiles {
				return ErrInvalidSequence
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateStego(request models.StegoRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCover}
	}

	for _, f := range fields {
		switch f {
		case FieldCover:
			if request.Cover == "" {
				return ErrEmptyCover
			}
		case FieldSecret:
			if request.Secret == "" {
				return ErrEmptySecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
