package store

import (
	"encoding/json"
	"log"
	"os"

	"VRSuite-Go/models"
)

// Store persists the settings record as pretty-printed JSON at a fixed path.
// Last writer wins; no locking. Two instances of the application editing the
// same file concurrently is not supported.
type Store struct {
	Path string
}

func New(path string) *Store {
	return &Store{Path: path}
}

// Load reads the settings file. Any read or parse failure yields the default
// record; there is no partial-field recovery, a broken file is discarded
// wholesale.
func (s *Store) Load() models.VRSettings {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read settings from %s: %v", s.Path, err)
		}
		return models.DefaultVRSettings()
	}

	var settings models.VRSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: could not parse settings file %s, using defaults: %v", s.Path, err)
		return models.DefaultVRSettings()
	}
	return settings
}

// Save writes the full record back to the settings path.
func (s *Store) Save(settings models.VRSettings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}
