package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/gymlog/internal/config"
	"github.com/misterclayt0n/gymlog/internal/models"
)

var ErrNoDraft = errors.New("no active session, start one with 'gymlog start-session'")

func getDraftPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "current_session.toml"), nil
}

func SaveDraft(draft *models.DraftSession) error {
	path, err := getDraftPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(draft); err != nil {
		return fmt.Errorf("encoding draft session: %w", err)
	}
	return nil
}

func LoadDraft() (*models.DraftSession, error) {
	path, err := getDraftPath()
	if err != nil {
		return nil, err
	}

	var draft models.DraftSession
	if _, err := toml.DecodeFile(path, &draft); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoDraft
		}
		return nil, fmt.Errorf("decoding draft session: %w", err)
	}
	return &draft, nil
}

func ClearDraft() error {
	path, err := getDraftPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func DraftExists() bool {
	path, err := getDraftPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
