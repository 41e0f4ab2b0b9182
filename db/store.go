package db

import (
	"fmt"

	"github.com/mggonzales/discord-bot/config"
)

// PointsEntry is one row of the points ledger.
type PointsEntry struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
}

// MarketplaceConfig holds the per-guild marketplace channel wiring.
type MarketplaceConfig struct {
	GuildID              string `json:"guild_id"`
	MarketplaceChannelID string `json:"marketplace_channel_id"`
	SubmissionsChannelID string `json:"submissions_channel_id"`
}

// Store is the persistence adapter shared by the points ledger and the
// marketplace configuration. Reads for absent keys return zero values, not
// errors; callers are expected to treat read errors as the zero value too.
type Store interface {
	GetPoints(userID string) (int, error)
	SetPoints(userID string, points int) error
	// GetAllPoints returns every ledger entry sorted by points descending.
	GetAllPoints() ([]PointsEntry, error)
	// ResetPoints zeroes a single user's score.
	ResetPoints(userID string) error
	// ResetAllPoints removes every ledger entry.
	ResetAllPoints() error

	// GetMarketplaceConfig returns nil when the guild has never been set up.
	GetMarketplaceConfig(guildID string) (*MarketplaceConfig, error)
	SetMarketplaceConfig(cfg MarketplaceConfig) error
	GetAllMarketplaceConfigs() ([]MarketplaceConfig, error)

	Close() error
}

// Open creates the Store selected by the storage configuration.
func Open(cfg config.Storage) (Store, error) {
	switch cfg.Backend {
	case "", "sqlite":
		return OpenSQLite(cfg.SQLitePath)
	case "json":
		return OpenJSONStore(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
