// Package crypto implements the classical substitution ciphers used to
// encrypt chat messages: Caesar (shift), Hill (matrix block cipher) and
// Playfair (digraph substitution).
//
// None of these ciphers are secure. They reproduce the behaviour the chat
// application relies on, including its key validation rules.
//
// Caesar and Hill work over the 94 printable ASCII symbols (code points
// 33..126, see [Table]). Playfair works over a 5x5 or 6x6 [Square] built
// from a keyword and returns [PlayfairMeta], which must be handed back to
// [PlayfairDecode] to recover the exact original text.
//
// Key material from the transport boundary is parsed into the tagged
// [Key] variant by [ParseKey]; [Encrypt] and [Decrypt] dispatch on it.
package crypto
