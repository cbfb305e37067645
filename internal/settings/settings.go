// Package settings persists operator display preferences and the company
// profile as a JSON file. Writes go through an atomic rename so a crash
// mid-write never leaves a truncated file behind.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CompanyProfile identifies the business on receipts and statements
type CompanyProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logo,omitempty"`
}

// Settings is the full persisted state
type Settings struct {
	Company          CompanyProfile `json:"company"`
	CurrencySymbol   string         `json:"currencySymbol"`
	CurrencyPosition string         `json:"currencyPosition"`
	DateFormat       string         `json:"dateFormat"`
	Theme            string         `json:"theme"`
}

// Defaults returns the settings applied before anything has been saved
func Defaults() Settings {
	return Settings{
		Company:          CompanyProfile{Name: "Back Office"},
		CurrencySymbol:   "৳",
		CurrencyPosition: "left",
		DateFormat:       "02 Jan 2006",
		Theme:            "light",
	}
}

// Store reads and writes settings at a fixed file path. Safe for concurrent
// use from multiple handlers.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted settings, or the defaults when the file does
// not exist yet
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	settings := Defaults()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return settings, nil
}

// Save persists the settings. The file is written to a temp sibling and
// renamed over the target so readers never observe a partial write.
func (s *Store) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close settings file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

// Update loads the current settings, applies fn, and saves the result
func (s *Store) Update(fn func(*Settings)) (Settings, error) {
	settings, err := s.Load()
	if err != nil {
		return Settings{}, err
	}
	fn(&settings)
	if err := s.Save(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}
