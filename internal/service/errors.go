package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Captcha verification errors.
var (
	// ErrCaptchaInvalid is returned for unknown or already used tokens.
	ErrCaptchaInvalid = errors.New("captcha token is invalid")

	ErrCaptchaExpired = errors.New("captcha token is expired")

	// ErrCaptchaWrongOrder is returned when the tiles were put in the
	// wrong order. The token is consumed all the same.
	ErrCaptchaWrongOrder = errors.New("captcha tiles are in the wrong order")
)
