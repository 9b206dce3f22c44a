// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals remembered account passwords at rest.
//
// The stored form of a sealed password is
//
//	sealed:v1:<base64(nonce || ciphertext)>
//
// where the ciphertext is produced by XChaCha20-Poly1305 under a key derived
// from the user's account secret with Argon2id. Values without the prefix
// are treated as legacy plaintext and returned unchanged by Open.
package crypto

// Sealer protects a password before it reaches the account table and
// recovers it on read. It satisfies store.PasswordSealer.
type Sealer interface {
	// Seal returns the stored form of plain.
	Seal(plain string) (string, error)

	// Open reverses Seal. Legacy plaintext values pass through.
	Open(stored string) (string, error)
}
