package repository

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
)

// noExpiry disables the Fernet token age check; notes never expire.
const noExpiry time.Duration = -1

// NotesCipher encrypts free-text bond notes before they reach the database.
// A nil *NotesCipher stores notes in plain text.
type NotesCipher struct {
	keys []*fernet.Key
}

// NewNotesCipher builds a cipher from one or more base64 Fernet keys.
// The first key encrypts; all keys are tried when decrypting, which allows
// key rotation. It returns nil when no key is configured.
func NewNotesCipher(encodedKeys ...string) (*NotesCipher, error) {
	var keys []*fernet.Key
	for _, encoded := range encodedKeys {
		if encoded == "" {
			continue
		}
		k, err := fernet.DecodeKey(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode notes encryption key: %w", err)
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	return &NotesCipher{keys: keys}, nil
}

// GenerateNotesKey returns a new random Fernet key in its base64 form.
func GenerateNotesKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return k.Encode(), nil
}

// seal returns the value to store and whether it is encrypted.
func (c *NotesCipher) seal(notes string) (string, bool, error) {
	if c == nil || notes == "" {
		return notes, false, nil
	}
	token, err := fernet.EncryptAndSign([]byte(notes), c.keys[0])
	if err != nil {
		return "", false, fmt.Errorf("failed to encrypt notes: %w", err)
	}
	return string(token), true, nil
}

// open reverses seal.
func (c *NotesCipher) open(stored string, encrypted bool) (string, error) {
	if !encrypted {
		return stored, nil
	}
	if c == nil {
		return "", fmt.Errorf("notes are encrypted but no key is configured")
	}
	msg := fernet.VerifyAndDecrypt([]byte(stored), noExpiry, c.keys)
	if msg == nil {
		return "", fmt.Errorf("notes token could not be verified with the configured keys")
	}
	return string(msg), nil
}
