// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto obfuscates customer passwords before they leave the client.
//
// The storefront API expects passwords encrypted with a passphrase shared by
// every client, in the format produced by CryptoJS AES.encrypt. Because the
// passphrase ships with the client this is obfuscation, not confidentiality:
// anyone holding a client build can decrypt the value.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_cipher_mock.go -package=mock

// CredentialCipher encrypts a plaintext password into an opaque string the
// storefront API accepts. The client never decrypts.
type CredentialCipher interface {
	// Encrypt returns the base64 OpenSSL envelope of plaintext.
	Encrypt(plaintext string) (string, error)
}
