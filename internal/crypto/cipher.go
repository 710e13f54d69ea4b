// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

const (
	saltSize  = 8
	keySize   = 32
	ivSize    = aes.BlockSize
	saltMagic = "Salted__"
)

// ErrEmptyPassphrase is returned by [NewPassphraseCipher] for an empty key.
var ErrEmptyPassphrase = errors.New("cipher passphrase is empty")

// passphraseCipher implements [CredentialCipher] compatibly with
// CryptoJS.AES.encrypt(text, passphrase).toString():
//
//	salt      = 8 random bytes
//	key || iv = EVP_BytesToKey(MD5, passphrase, salt), 32 + 16 bytes
//	blob      = "Salted__" || salt || AES-256-CBC(PKCS#7(text))
//	result    = base64(blob)
type passphraseCipher struct {
	passphrase []byte
	rand       io.Reader
}

// Option customises a passphrase cipher.
type Option func(*passphraseCipher)

// WithSaltSource replaces crypto/rand as the salt source. A fixed source makes
// Encrypt deterministic.
func WithSaltSource(r io.Reader) Option {
	return func(c *passphraseCipher) {
		c.rand = r
	}
}

// NewPassphraseCipher returns a [CredentialCipher] keyed by passphrase.
func NewPassphraseCipher(passphrase string, opts ...Option) (CredentialCipher, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	c := &passphraseCipher{
		passphrase: []byte(passphrase),
		rand:       rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Encrypt implements [CredentialCipher].
func (c *passphraseCipher) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	key, iv := deriveKeyIV(c.passphrase, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create aes cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	encrypted := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(encrypted, padded)

	blob := make([]byte, 0, len(saltMagic)+saltSize+len(encrypted))
	blob = append(blob, saltMagic...)
	blob = append(blob, salt...)
	blob = append(blob, encrypted...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// deriveKeyIV is OpenSSL EVP_BytesToKey with MD5 and a single iteration.
func deriveKeyIV(passphrase, salt []byte) (key, iv []byte) {
	var derived, block []byte
	for len(derived) < keySize+ivSize {
		h := md5.New()
		h.Write(block)
		h.Write(passphrase)
		h.Write(salt)
		block = h.Sum(nil)
		derived = append(derived, block...)
	}

	return derived[:keySize], derived[keySize : keySize+ivSize]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}
