package storage

import (
	"github.com/mitchellh/hashstructure/v2"

	"github.com/julianstephens/attune/internal/logger"
	"github.com/julianstephens/attune/internal/models"
)

// Saver wraps a Provider and skips writes whose settings hash to the same
// value as the last successful save. The settings form is tiny but submits on
// every field change, so most saves are no-ops.
type Saver struct {
	Provider

	lastHash uint64
	hashed   bool
}

func NewSaver(p Provider) *Saver {
	return &Saver{Provider: p}
}

func (s *Saver) SaveSettings(settings models.Settings) error {
	hash, hashErr := hashstructure.Hash(settings, hashstructure.FormatV2, nil)
	if hashErr == nil && s.hashed && hash == s.lastHash {
		logger.Debug("settings unchanged, skipping save")
		return nil
	}

	if err := s.Provider.SaveSettings(settings); err != nil {
		return err
	}
	if hashErr == nil {
		s.lastHash = hash
		s.hashed = true
	}
	return nil
}
