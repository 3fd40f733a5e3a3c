// Package export writes encrypted journal archives using age encryption.
// An archive is passphrase-encrypted (age scrypt), armored, and written
// atomically: temp file, fsync, rename.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"

	"github.com/alignhq/align/internal/track"
)

// ErrWrongPassphrase is returned when decryption fails due to a bad
// passphrase.
var ErrWrongPassphrase = errors.New("wrong passphrase")

// ErrCorruptedArchive is returned when the archive exists but cannot be
// parsed.
var ErrCorruptedArchive = errors.New("archive is corrupted or unreadable")

// Archive is the plaintext JSON payload inside the age file.
type Archive struct {
	ExportedAt string               `json:"exported_at"` // YYYY-MM-DD
	Entries    []track.JournalEntry `json:"entries"`
}

// WriteFile encrypts the archive with the passphrase and writes it to path.
func WriteFile(path string, archive *Archive, passphrase string) error {
	if passphrase == "" {
		return fmt.Errorf("passphrase must not be empty")
	}
	if len(archive.Entries) == 0 {
		return fmt.Errorf("journal is empty, nothing to export")
	}

	raw, err := encrypt(archive, passphrase)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	return atomicWrite(path, raw)
}

// ReadFile decrypts an archive file with the passphrase.
func ReadFile(path, passphrase string) (*Archive, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	return decrypt(raw, passphrase)
}

func encrypt(archive *Archive, passphrase string) ([]byte, error) {
	jsonBytes, err := json.Marshal(archive)
	if err != nil {
		return nil, fmt.Errorf("serializing archive: %w", err)
	}

	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age recipient: %w", err)
	}

	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)

	w, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		return nil, fmt.Errorf("initializing age encryption: %w", err)
	}
	if _, err := w.Write(jsonBytes); err != nil {
		return nil, fmt.Errorf("encrypting archive: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return nil, fmt.Errorf("finalizing armor: %w", err)
	}

	return buf.Bytes(), nil
}

func decrypt(raw []byte, passphrase string) (*Archive, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age identity: %w", err)
	}

	armorReader := armor.NewReader(bytes.NewReader(raw))
	r, err := age.Decrypt(armorReader, identity)
	if err != nil {
		// age does not export typed errors for wrong passphrases, so match
		// the known message substrings.
		msg := err.Error()
		if strings.Contains(msg, "no identity matched") || strings.Contains(msg, "incorrect") {
			return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptedArchive, err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading decrypted data: %v", ErrCorruptedArchive, err)
	}

	var archive Archive
	if err := json.Unmarshal(plaintext, &archive); err != nil {
		return nil, fmt.Errorf("%w: parsing archive JSON: %v", ErrCorruptedArchive, err)
	}
	return &archive, nil
}

// atomicWrite writes data to path atomically: temp file, fsync, rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if err := os.Chmod(tmpName, 0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("setting temp file permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing archive: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("committing archive: %w", err)
	}

	success = true
	return nil
}
