// Package persistence stores player progress between runs using gdata.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// Progress is what survives a restart: the best score reached and the last
// level entered.
type Progress struct {
	BestScore int    `json:"bestScore"`
	LastLevel string `json:"lastLevel"`
}

// Record folds a finished run into p. It reports whether anything changed.
func (p *Progress) Record(score int, level string) bool {
	changed := false
	if score > p.BestScore {
		p.BestScore = score
		changed = true
	}
	if level != "" && level != p.LastLevel {
		p.LastLevel = level
		changed = true
	}
	return changed
}

// Store reads and writes progress. A nil *Store is valid and does nothing,
// so callers can run without persistence when gdata is unavailable.
type Store struct {
	manager *gdata.Manager
}

// Open initializes the gdata manager for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data for %s: %w", appName, err)
	}
	return &Store{manager: m}, nil
}

// LoadProgress returns empty progress when nothing was saved yet.
func (s *Store) LoadProgress() (*Progress, error) {
	if s == nil || s.manager == nil {
		return &Progress{}, nil
	}

	data, err := s.manager.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return &Progress{}, nil
	}
	return decodeProgress(data)
}

func (s *Store) SaveProgress(p *Progress) error {
	if s == nil || s.manager == nil || p == nil {
		return nil
	}

	data, err := encodeProgress(p)
	if err != nil {
		return err
	}
	if err := s.manager.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func encodeProgress(p *Progress) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("serialize progress: %w", err)
	}
	return data, nil
}

func decodeProgress(data []byte) (*Progress, error) {
	if len(data) == 0 {
		return &Progress{}, nil
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return &Progress{}, fmt.Errorf("parse progress: %w", err)
	}
	return &p, nil
}
