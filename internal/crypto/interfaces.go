package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher enciphers and deciphers with a parsed [Key]. [*Codec] is the
// implementation; services depend on this interface.
type Cipher interface {
	// Encrypt returns the ciphertext of text and, for Playfair, the
	// metadata needed for exact decryption.
	Encrypt(text string, key Key) (Sealed, error)

	// Decrypt reverses Encrypt.
	Decrypt(sealed Sealed, key Key) (string, error)
}

var _ Cipher = (*Codec)(nil)
