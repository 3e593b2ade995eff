package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/attune/internal/models"
)

type prefsFile struct {
	Version  int             `json:"version"`
	Settings models.Settings `json:"settings"`
}

// JSONStore keeps preferences in a single pretty-printed JSON file.
type JSONStore struct {
	path string
	file *prefsFile
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("preferences already initialized at %s", s.path)
	}

	s.file = &prefsFile{
		Version:  1,
		Settings: DefaultSettings(),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("preferences not initialized, run 'attune init' first")
		}
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	s.file = &prefsFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.file == nil {
		return models.Settings{}, fmt.Errorf("preferences not loaded")
	}
	return s.file.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.file == nil {
		return fmt.Errorf("preferences not loaded")
	}
	s.file.Settings = settings
	return s.save()
}

func (s *JSONStore) ConfigPath() string {
	return s.path
}
