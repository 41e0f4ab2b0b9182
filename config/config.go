package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level process configuration. Values come from config.yaml
// when present, with environment variables taking precedence.
type Config struct {
	Token    string `mapstructure:"DISCORD_TOKEN"`
	ClientID string `mapstructure:"DISCORD_CLIENT_ID"`
	Port     int    `mapstructure:"PORT"`
	Debug    bool   `mapstructure:"DEBUG"`

	Storage Storage `mapstructure:"storage"`
	Points  Points  `mapstructure:"points"`
}

// Storage selects and parameterizes the persistence backend.
type Storage struct {
	// Backend is either "sqlite" or "json".
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlite_path"`
	DataDir    string `mapstructure:"data_dir"`
}

// Points holds the ledger settings.
type Points struct {
	// AwardRoles are the role names allowed to use /good besides administrators.
	AwardRoles []string `mapstructure:"award_roles"`
}

var Cfg Config

// LoadConfig reads the configuration into Cfg. A missing config file is fine;
// missing bot credentials are not and are reported to the caller.
func LoadConfig() error {
	Cfg = Config{}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	// Nested keys map to underscored env vars: storage.backend <- STORAGE_BACKEND.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", 3000)
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("storage.backend", "sqlite")
	viper.SetDefault("storage.sqlite_path", "./data/bot.db")
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("points.award_roles", []string{"Coaches", "Moderators"})

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		return err
	}

	// Unmarshal does not consult AutomaticEnv for struct fields, so pick the
	// credentials up explicitly.
	if Cfg.Token == "" {
		Cfg.Token = viper.GetString("DISCORD_TOKEN")
	}
	if Cfg.ClientID == "" {
		Cfg.ClientID = viper.GetString("DISCORD_CLIENT_ID")
	}

	if Cfg.Token == "" {
		return errors.New("DISCORD_TOKEN is not set")
	}
	if Cfg.ClientID == "" {
		return errors.New("DISCORD_CLIENT_ID is not set")
	}

	return nil
}
