// Package textcrypto defines the algorithm tags, key material and backend contracts
// for the text cryptography operations: keyed-hash signing, Ed25519 signatures and
// ChaCha20-Poly1305 authenticated encryption.
package textcrypto
