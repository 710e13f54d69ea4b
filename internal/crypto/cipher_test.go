// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decryptEnvelope is the server-side counterpart of Encrypt.
func decryptEnvelope(t *testing.T, passphrase, encoded string) string {
	t.Helper()

	blob, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(blob, []byte(saltMagic)))

	salt := blob[len(saltMagic) : len(saltMagic)+saltSize]
	body := blob[len(saltMagic)+saltSize:]
	require.Zero(t, len(body)%aes.BlockSize)

	key, iv := deriveKeyIV([]byte(passphrase), salt)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)

	padLen := int(plain[len(plain)-1])
	require.True(t, padLen >= 1 && padLen <= aes.BlockSize)
	return string(plain[:len(plain)-padLen])
}

func TestNewPassphraseCipher_EmptyPassphrase(t *testing.T) {
	c, err := NewPassphraseCipher("")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestEncrypt_RoundTrip(t *testing.T) {
	c, err := NewPassphraseCipher("secret key 123")
	require.NoError(t, err)

	for _, plain := range []string{"", "abcde", "exactly16bytes!!", strings.Repeat("pässwörd", 10)} {
		encoded, err := c.Encrypt(plain)
		require.NoError(t, err)
		assert.Equal(t, plain, decryptEnvelope(t, "secret key 123", encoded))
	}
}

func TestEncrypt_OpenSSLEnvelope(t *testing.T) {
	c, err := NewPassphraseCipher("secret key 123")
	require.NoError(t, err)

	encoded, err := c.Encrypt("hunter22")
	require.NoError(t, err)

	// base64("Salted__") always starts with "U2FsdGVkX1".
	assert.True(t, strings.HasPrefix(encoded, "U2FsdGVkX1"))
}

func TestEncrypt_DeterministicWithFixedSalt(t *testing.T) {
	salt := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	newCipher := func() CredentialCipher {
		c, err := NewPassphraseCipher("secret key 123", WithSaltSource(bytes.NewReader(salt)))
		require.NoError(t, err)
		return c
	}

	a, err := newCipher().Encrypt("password")
	require.NoError(t, err)
	b, err := newCipher().Encrypt("password")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEncrypt_RandomSaltDiffers(t *testing.T) {
	c, err := NewPassphraseCipher("secret key 123")
	require.NoError(t, err)

	a, err := c.Encrypt("password")
	require.NoError(t, err)
	b, err := c.Encrypt("password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestEncrypt_SaltReadError(t *testing.T) {
	c, err := NewPassphraseCipher("k", WithSaltSource(failingReader{}))
	require.NoError(t, err)

	_, err = c.Encrypt("password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read salt")
}

func TestDeriveKeyIV_KnownVector(t *testing.T) {
	key, iv := deriveKeyIV([]byte("password"), make([]byte, saltSize))

	assert.Equal(t, "997e59f2fb2e4aa92cd02faa13646986767ae0a298d88132ae55806c2dfad95c", hex.EncodeToString(key))
	assert.Equal(t, "fc15da9b32fd13afe42e45502d8e3db8", hex.EncodeToString(iv))
}

// Matches: echo -n password | openssl enc -aes-256-cbc -md md5 -k "secret key 123" -S 0102030405060708
func TestEncrypt_MatchesOpenSSL(t *testing.T) {
	c, err := NewPassphraseCipher("secret key 123", WithSaltSource(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})))
	require.NoError(t, err)

	encoded, err := c.Encrypt("password")
	require.NoError(t, err)

	assert.Equal(t, "U2FsdGVkX18BAgMEBQYHCIAO189aypQaBAWxA22n5SU=", encoded)
}
