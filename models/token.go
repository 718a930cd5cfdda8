package models

import "github.com/golang-jwt/jwt/v5"

// Token is an issued or verified session token. Only the signed form ever
// leaves the server.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// UserID is the subject claim, already parsed.
	UserID int64 `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
