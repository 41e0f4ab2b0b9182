package db

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
)

const (
	pointsFile = "points.json"
	configFile = "marketplace_config.json"
)

// JSONStore is the file-backed persistence adapter. State lives in two JSON
// documents under dir, rewritten whole on every mutation. A missing file is an
// empty store, not an error.
type JSONStore struct {
	mu  sync.Mutex
	dir string

	points  map[string]int
	configs map[string]MarketplaceConfig
}

// OpenJSONStore loads (or initializes) the store rooted at dir.
func OpenJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &JSONStore{
		dir:     dir,
		points:  make(map[string]int),
		configs: make(map[string]MarketplaceConfig),
	}

	if err := loadJSON(filepath.Join(dir, pointsFile), &s.points); err != nil {
		return nil, fmt.Errorf("load %s: %w", pointsFile, err)
	}
	if err := loadJSON(filepath.Join(dir, configFile), &s.configs); err != nil {
		return nil, fmt.Errorf("load %s: %w", configFile, err)
	}

	return s, nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON writes v to path via a temp file and rename so a crash mid-write
// never leaves a truncated document behind.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.New().String())
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (s *JSONStore) savePoints() error {
	return writeJSON(filepath.Join(s.dir, pointsFile), s.points)
}

func (s *JSONStore) saveConfigs() error {
	return writeJSON(filepath.Join(s.dir, configFile), s.configs)
}

// GetPoints returns the user's score, 0 when unknown.
func (s *JSONStore) GetPoints(userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points[userID], nil
}

// SetPoints upserts the user's score.
func (s *JSONStore) SetPoints(userID string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points[userID] = points
	return s.savePoints()
}

// GetAllPoints returns all ledger entries, highest score first. Ties order by
// user ID so repeated calls agree.
func (s *JSONStore) GetAllPoints() ([]PointsEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]PointsEntry, 0, len(s.points))
	for userID, points := range s.points {
		entries = append(entries, PointsEntry{UserID: userID, Points: points})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})
	return entries, nil
}

// ResetPoints zeroes a single user's score.
func (s *JSONStore) ResetPoints(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.points[userID]; !ok {
		return nil
	}
	s.points[userID] = 0
	return s.savePoints()
}

// ResetAllPoints clears the whole ledger.
func (s *JSONStore) ResetAllPoints() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = make(map[string]int)
	return s.savePoints()
}

// GetMarketplaceConfig returns the guild's config, nil when not set up.
func (s *JSONStore) GetMarketplaceConfig(guildID string) (*MarketplaceConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[guildID]
	if !ok {
		return nil, nil
	}
	return &cfg, nil
}

// SetMarketplaceConfig overwrites the guild's config.
func (s *JSONStore) SetMarketplaceConfig(cfg MarketplaceConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[cfg.GuildID] = cfg
	return s.saveConfigs()
}

// GetAllMarketplaceConfigs returns every configured guild.
func (s *JSONStore) GetAllMarketplaceConfigs() ([]MarketplaceConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs := make([]MarketplaceConfig, 0, len(s.configs))
	for _, cfg := range s.configs {
		configs = append(configs, cfg)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].GuildID < configs[j].GuildID })
	return configs, nil
}

// Close is a no-op; every mutation is flushed as it happens.
func (s *JSONStore) Close() error {
	return nil
}
