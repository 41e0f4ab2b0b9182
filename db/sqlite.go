package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteDriver = "sqlite3"

// SQLiteStore is the SQL-backed persistence adapter. Two tables: points and
// marketplace_config, both keyed by their single ID column.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if necessary creates) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	conn, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: conn}
	if err := s.createTables(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTables() error {
	createPointsSQL := `
	CREATE TABLE IF NOT EXISTS points (
		user_id TEXT PRIMARY KEY,
		points INTEGER DEFAULT 0
	);`

	if _, err := s.db.Exec(createPointsSQL); err != nil {
		return fmt.Errorf("create points table: %w", err)
	}

	createConfigSQL := `
	CREATE TABLE IF NOT EXISTS marketplace_config (
		guild_id TEXT PRIMARY KEY,
		marketplace_channel_id TEXT NOT NULL,
		submissions_channel_id TEXT NOT NULL
	);`

	if _, err := s.db.Exec(createConfigSQL); err != nil {
		return fmt.Errorf("create marketplace_config table: %w", err)
	}

	return nil
}

// GetPoints returns the user's score, 0 when the user has no row.
func (s *SQLiteStore) GetPoints(userID string) (int, error) {
	var points int
	err := s.db.QueryRow("SELECT points FROM points WHERE user_id = ?", userID).Scan(&points)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return points, nil
}

// SetPoints upserts the user's score.
func (s *SQLiteStore) SetPoints(userID string, points int) error {
	_, err := s.db.Exec(`INSERT INTO points (user_id, points) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET points = excluded.points`, userID, points)
	return err
}

// GetAllPoints returns all ledger entries, highest score first.
func (s *SQLiteStore) GetAllPoints() ([]PointsEntry, error) {
	rows, err := s.db.Query("SELECT user_id, points FROM points ORDER BY points DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []PointsEntry
	for rows.Next() {
		var e PointsEntry
		if err := rows.Scan(&e.UserID, &e.Points); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ResetPoints zeroes a single user's score.
func (s *SQLiteStore) ResetPoints(userID string) error {
	_, err := s.db.Exec("UPDATE points SET points = 0 WHERE user_id = ?", userID)
	return err
}

// ResetAllPoints clears the whole ledger.
func (s *SQLiteStore) ResetAllPoints() error {
	_, err := s.db.Exec("DELETE FROM points")
	return err
}

// GetMarketplaceConfig returns the guild's config, nil when not set up.
func (s *SQLiteStore) GetMarketplaceConfig(guildID string) (*MarketplaceConfig, error) {
	var cfg MarketplaceConfig
	err := s.db.QueryRow(`SELECT guild_id, marketplace_channel_id, submissions_channel_id
		FROM marketplace_config WHERE guild_id = ?`, guildID).
		Scan(&cfg.GuildID, &cfg.MarketplaceChannelID, &cfg.SubmissionsChannelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// SetMarketplaceConfig overwrites the guild's config.
func (s *SQLiteStore) SetMarketplaceConfig(cfg MarketplaceConfig) error {
	_, err := s.db.Exec(`INSERT INTO marketplace_config (guild_id, marketplace_channel_id, submissions_channel_id)
		VALUES (?, ?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET
			marketplace_channel_id = excluded.marketplace_channel_id,
			submissions_channel_id = excluded.submissions_channel_id`,
		cfg.GuildID, cfg.MarketplaceChannelID, cfg.SubmissionsChannelID)
	return err
}

// GetAllMarketplaceConfigs returns every configured guild.
func (s *SQLiteStore) GetAllMarketplaceConfigs() ([]MarketplaceConfig, error) {
	rows, err := s.db.Query("SELECT guild_id, marketplace_channel_id, submissions_channel_id FROM marketplace_config")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []MarketplaceConfig
	for rows.Next() {
		var cfg MarketplaceConfig
		if err := rows.Scan(&cfg.GuildID, &cfg.MarketplaceChannelID, &cfg.SubmissionsChannelID); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

// Close closes the underlying connection pool.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
