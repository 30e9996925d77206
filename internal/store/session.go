package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"mediconnect/backend/internal/domain"
)

// SessionSlot is the single durable key holding the serialized session
// user, the local-storage analog. Load returns (nil, nil) when the slot
// is empty.
type SessionSlot interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// FileSlot keeps the slot in one JSON file on local disk.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (f *FileSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *FileSlot) Save(data []byte) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileSlot) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// restoreSession reads the slot at startup. Absent, unreadable, or
// malformed content all mean "no session"; corrupt content is discarded
// so the next load starts clean.
func restoreSession(slot SessionSlot, log *slog.Logger) *domain.SessionUser {
	if slot == nil {
		return nil
	}

	data, err := slot.Load()
	if err != nil {
		log.Warn("session load failed", slog.Any("err", err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var user domain.SessionUser
	if err := json.Unmarshal(data, &user); err != nil {
		log.Warn("discarding corrupt session data", slog.Any("err", err))
		if err := slot.Clear(); err != nil {
			log.Warn("session clear failed", slog.Any("err", err))
		}
		return nil
	}
	if !user.IsLoggedIn || user.Name == "" {
		return nil
	}
	return &user
}

func persistSession(slot SessionSlot, user domain.SessionUser) error {
	if slot == nil {
		return nil
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return slot.Save(data)
}
