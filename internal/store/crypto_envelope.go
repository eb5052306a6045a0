package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// sealedFormatVersion is the newest sealed blob layout this build reads.
const sealedFormatVersion = 1

// sessionAD binds sealed blobs to their purpose.
var sessionAD = []byte("loginflow/session/v1")

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified or corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted session")
	// ErrPassphraseRequired is returned when sealing without a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required to protect the session")
)

// KDFParams are the scrypt cost parameters.
type KDFParams struct {
	N, R, P int
}

// DefaultKDFParams are interactive-login strength scrypt costs.
func DefaultKDFParams() KDFParams { return KDFParams{N: 1 << 15, R: 8, P: 1} }

// sealed is the JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and encrypts raw into a JSON blob.
func seal(passphrase string, raw []byte, kdf KDFParams) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrPassphraseRequired
	}
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return json.Marshal(sealed{
		V:      sealedFormatVersion,
		Salt:   salt,
		N:      kdf.N,
		R:      kdf.R,
		P:      kdf.P,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, raw, sessionAD),
	})
}

// open decrypts a blob produced by seal.
func open(passphrase string, b []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode sealed session: %w", err)
	}
	if s.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed session version %d", s.V)
	}

	key, err := scrypt.Key([]byte(passphrase), s.Salt, s.N, s.R, s.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(s.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, s.Nonce, s.Cipher, sessionAD)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
