package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mggonzales/discord-bot/config"
)

// Both backends must satisfy the same ledger and config semantics, so the
// suite runs against each.
func runStoreSuite(t *testing.T, open func(t *testing.T) Store) {
	t.Run("unknown user has zero points", func(t *testing.T) {
		s := open(t)
		points, err := s.GetPoints("nobody")
		require.NoError(t, err)
		assert.Equal(t, 0, points)
	})

	t.Run("set and get points", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.SetPoints("u1", 3))
		points, err := s.GetPoints("u1")
		require.NoError(t, err)
		assert.Equal(t, 3, points)

		// Upsert overwrites.
		require.NoError(t, s.SetPoints("u1", 4))
		points, err = s.GetPoints("u1")
		require.NoError(t, err)
		assert.Equal(t, 4, points)
	})

	t.Run("repeated awards accumulate", func(t *testing.T) {
		s := open(t)
		// Award is read-modify-write at the caller; three awards yield three
		// points. Concurrent safety is explicitly not guaranteed.
		for i := 0; i < 3; i++ {
			current, err := s.GetPoints("u1")
			require.NoError(t, err)
			require.NoError(t, s.SetPoints("u1", current+1))
		}
		points, err := s.GetPoints("u1")
		require.NoError(t, err)
		assert.Equal(t, 3, points)
	})

	t.Run("all points sorted descending", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.SetPoints("low", 1))
		require.NoError(t, s.SetPoints("high", 10))
		require.NoError(t, s.SetPoints("mid", 5))

		entries, err := s.GetAllPoints()
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "high", entries[0].UserID)
		assert.Equal(t, "mid", entries[1].UserID)
		assert.Equal(t, "low", entries[2].UserID)
		for i := 1; i < len(entries); i++ {
			assert.GreaterOrEqual(t, entries[i-1].Points, entries[i].Points)
		}
	})

	t.Run("reset one user leaves others", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.SetPoints("u1", 5))
		require.NoError(t, s.SetPoints("u2", 7))

		require.NoError(t, s.ResetPoints("u1"))

		p1, err := s.GetPoints("u1")
		require.NoError(t, err)
		assert.Equal(t, 0, p1)
		p2, err := s.GetPoints("u2")
		require.NoError(t, err)
		assert.Equal(t, 7, p2)
	})

	t.Run("reset unknown user is a no-op", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.SetPoints("u1", 5))
		require.NoError(t, s.ResetPoints("ghost"))
		p, err := s.GetPoints("u1")
		require.NoError(t, err)
		assert.Equal(t, 5, p)
	})

	t.Run("reset all empties the ledger", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.SetPoints("u1", 5))
		require.NoError(t, s.SetPoints("u2", 7))

		require.NoError(t, s.ResetAllPoints())

		entries, err := s.GetAllPoints()
		require.NoError(t, err)
		assert.Empty(t, entries)
		p, err := s.GetPoints("u1")
		require.NoError(t, err)
		assert.Equal(t, 0, p)
	})

	t.Run("config absent before setup", func(t *testing.T) {
		s := open(t)
		cfg, err := s.GetMarketplaceConfig("guild1")
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("config set, overwrite and list", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.SetMarketplaceConfig(MarketplaceConfig{
			GuildID: "guild1", MarketplaceChannelID: "m1", SubmissionsChannelID: "s1",
		}))
		require.NoError(t, s.SetMarketplaceConfig(MarketplaceConfig{
			GuildID: "guild2", MarketplaceChannelID: "m2", SubmissionsChannelID: "s2",
		}))

		cfg, err := s.GetMarketplaceConfig("guild1")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "m1", cfg.MarketplaceChannelID)
		assert.Equal(t, "s1", cfg.SubmissionsChannelID)

		// Setup overwrites the whole row, no merge.
		require.NoError(t, s.SetMarketplaceConfig(MarketplaceConfig{
			GuildID: "guild1", MarketplaceChannelID: "m9", SubmissionsChannelID: "s9",
		}))
		cfg, err = s.GetMarketplaceConfig("guild1")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "m9", cfg.MarketplaceChannelID)

		all, err := s.GetAllMarketplaceConfigs()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestJSONStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s, err := OpenJSONStore(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestJSONStoreTieOrderStable(t *testing.T) {
	s, err := OpenJSONStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.SetPoints("c", 2))
	require.NoError(t, s.SetPoints("a", 2))
	require.NoError(t, s.SetPoints("b", 2))

	first, err := s.GetAllPoints()
	require.NoError(t, err)
	second, err := s.GetAllPoints()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJSONStoreReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenJSONStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SetPoints("u1", 5))
	require.NoError(t, s.SetMarketplaceConfig(MarketplaceConfig{
		GuildID: "g1", MarketplaceChannelID: "m1", SubmissionsChannelID: "s1",
	}))
	require.NoError(t, s.Close())

	reopened, err := OpenJSONStore(dir)
	require.NoError(t, err)

	p, err := reopened.GetPoints("u1")
	require.NoError(t, err)
	assert.Equal(t, 5, p)

	cfg, err := reopened.GetMarketplaceConfig("g1")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "m1", cfg.MarketplaceChannelID)
}

func TestJSONStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenJSONStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SetPoints("u1", 1))
	require.NoError(t, s.SetMarketplaceConfig(MarketplaceConfig{GuildID: "g1"}))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s, err := OpenSQLite(filepath.Join(t.TempDir(), "bot.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.SetPoints("u1", 5))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	p, err := reopened.GetPoints("u1")
	require.NoError(t, err)
	assert.Equal(t, 5, p)
}

func TestOpenSelectsBackend(t *testing.T) {
	storageCfg := func(backend, dir string) config.Storage {
		return config.Storage{
			Backend:    backend,
			SQLitePath: filepath.Join(dir, "bot.db"),
			DataDir:    dir,
		}
	}

	s, err := Open(storageCfg("json", t.TempDir()))
	require.NoError(t, err)
	assert.IsType(t, &JSONStore{}, s)

	s, err = Open(storageCfg("sqlite", t.TempDir()))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	s.Close()

	// Empty backend defaults to sqlite.
	s, err = Open(storageCfg("", t.TempDir()))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	s.Close()

	_, err = Open(storageCfg("redis", t.TempDir()))
	assert.Error(t, err)
}
