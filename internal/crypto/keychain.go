// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// SealedPrefix marks a value produced by a keyed [Sealer].
const SealedPrefix = "sealed:v1:"

// keySalt domain-separates the account secret from other uses of the same
// passphrase.
var keySalt = []byte("markdo/account-password/v1")

var (
	// ErrSecretRequired is returned by Open when a sealed value is read
	// without an account secret.
	ErrSecretRequired = errors.New("account secret required to open sealed password")
	// ErrMalformedSealed is returned when a sealed value cannot be decoded.
	ErrMalformedSealed = errors.New("malformed sealed password")
	// ErrOpenFailed is returned when authentication of a sealed value fails,
	// usually because the secret changed.
	ErrOpenFailed = errors.New("cannot open sealed password")
)

// keyChain is the keyed implementation of [Sealer].
type keyChain struct {
	aead cipher.AEAD
}

// NewCredentialSealer returns a [Sealer] keyed by secret. An empty secret
// yields a sealer that stores passwords as plaintext.
//
// The key is derived once with Argon2id:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewCredentialSealer(secret string) (Sealer, error) {
	if secret == "" {
		return plainText{}, nil
	}

	key := argon2.IDKey([]byte(secret), keySalt, 1, 64*1024, 4, chacha20poly1305.KeySize)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}
	return &keyChain{aead: aead}, nil
}

// Seal implements [Sealer]. A random 24-byte nonce is prepended to the
// ciphertext: blob = nonce ‖ ciphertext. The empty password stays empty.
func (k *keyChain) Seal(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}

	nonce := make([]byte, k.aead.NonceSize(), k.aead.NonceSize()+len(plain)+k.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("error generating nonce: %w", err)
	}

	blob := k.aead.Seal(nonce, nonce, []byte(plain), nil)
	return SealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (k *keyChain) Open(stored string) (string, error) {
	encoded, ok := strings.CutPrefix(stored, SealedPrefix)
	if !ok {
		return stored, nil
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedSealed, err)
	}
	if len(blob) < k.aead.NonceSize()+k.aead.Overhead() {
		return "", ErrMalformedSealed
	}

	nonce, ciphertext := blob[:k.aead.NonceSize()], blob[k.aead.NonceSize():]
	plain, err := k.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrOpenFailed
	}
	return string(plain), nil
}

// plainText stores passwords unchanged. Sealed values from an earlier keyed
// run cannot be opened.
type plainText struct{}

func (plainText) Seal(plain string) (string, error) { return plain, nil }

func (plainText) Open(stored string) (string, error) {
	if strings.HasPrefix(stored, SealedPrefix) {
		return "", ErrSecretRequired
	}
	return stored, nil
}
