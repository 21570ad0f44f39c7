package server

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// sessionKeys derives the cookie signing key and the AES-256 encryption key
// from the configured session secret.
func sessionKeys(secret string) (hashKey, blockKey []byte, err error) {
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte("cms-admin session cookie"))
	hashKey = make([]byte, 32)
	blockKey = make([]byte, 32)
	if _, err := io.ReadFull(r, hashKey); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(r, blockKey); err != nil {
		return nil, nil, err
	}
	return hashKey, blockKey, nil
}
