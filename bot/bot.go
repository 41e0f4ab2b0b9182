package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/command"
	"github.com/mggonzales/discord-bot/config"
	"github.com/mggonzales/discord-bot/db"
	"github.com/mggonzales/discord-bot/handler"
	"github.com/mggonzales/discord-bot/handler/marketplace"
	"github.com/mggonzales/discord-bot/handler/points"
	"github.com/mggonzales/discord-bot/logger"
)

var dg *discordgo.Session

// Start connects to the gateway and blocks until SIGINT/SIGTERM.
func Start(store db.Store) error {
	points.Register(store)
	marketplace.Register(store)

	var err error
	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		return fmt.Errorf("create Discord session: %w", err)
	}

	registerEventHandlers(dg)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open gateway connection: %w", err)
	}

	logger.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return dg.Close()
}

// GetSession returns the current Discord session, nil before Start.
func GetSession() *discordgo.Session {
	return dg
}

// deployCommands registers the slash commands in every guild the bot is in.
// Guild-scoped registration is instant, unlike the global variant.
func deployCommands(s *discordgo.Session, r *discordgo.Ready) {
	logger.Info().Int("guilds", len(r.Guilds)).Msg("deploying application commands")

	for _, guild := range r.Guilds {
		if err := deployGuildCommands(s, guild.ID); err != nil {
			logger.Error().Err(err).Str("guild_id", guild.ID).Msg("failed to deploy commands to guild")
			continue
		}
		logger.Info().Str("guild_id", guild.ID).Msg("deployed commands to guild")
	}
}

func deployGuildCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range command.AllCommands {
		if _, err := s.ApplicationCommandCreate(config.Cfg.ClientID, guildID, cmd); err != nil {
			return fmt.Errorf("create %q command: %w", cmd.Name, err)
		}
	}
	return nil
}

// onReady deploys commands once the gateway reports the guild list.
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Info().Str("bot", r.User.String()).Int("guilds", len(r.Guilds)).Msg("logged in")
	deployCommands(s, r)
}

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(onReady)
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(marketplace.OnMessageCreate)

	// DirectMessages + MessageContent are needed for the image side channel.
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
}
