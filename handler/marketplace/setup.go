package marketplace

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/db"
	"github.com/mggonzales/discord-bot/logger"
	"github.com/mggonzales/discord-bot/utils"
)

func setupCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.HasCapability(s, i, utils.CapManageMarketplace) {
		respondEphemeral(s, i, "❌ You need **Administrator** permission to use this command!")
		return
	}

	marketplaceChannel := optionChannel(s, i, "marketplace-channel")
	submissionsChannel := optionChannel(s, i, "submissions-channel")
	if marketplaceChannel == nil || submissionsChannel == nil {
		respondEphemeral(s, i, "❌ Both channels must be provided!")
		return
	}

	if !isTextChannel(marketplaceChannel) || !isTextChannel(submissionsChannel) {
		respondEphemeral(s, i, "❌ Both channels must be text channels!")
		return
	}

	err := store.SetMarketplaceConfig(db.MarketplaceConfig{
		GuildID:              i.GuildID,
		MarketplaceChannelID: marketplaceChannel.ID,
		SubmissionsChannelID: submissionsChannel.ID,
	})
	if err != nil {
		logger.Error().Err(err).Str("guild_id", i.GuildID).Msg("failed to save marketplace config")
		respondEphemeral(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}

	logger.Info().
		Str("guild_id", i.GuildID).
		Str("marketplace_channel_id", marketplaceChannel.ID).
		Str("submissions_channel_id", submissionsChannel.ID).
		Msg("marketplace config saved")

	respondEphemeral(s, i, fmt.Sprintf(
		"✅ Marketplace system configured!\n📢 **Marketplace Channel:** <#%s>\n📋 **Submissions Channel:** <#%s>\n\nUse `/marketplace-post` to post the submission button.",
		marketplaceChannel.ID, submissionsChannel.ID))
}

func postCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.HasCapability(s, i, utils.CapManageMarketplace) {
		respondEphemeral(s, i, "❌ You need **Administrator** permission to use this command!")
		return
	}

	cfg := guildConfig(i.GuildID)
	if cfg == nil {
		respondEphemeral(s, i, "❌ Marketplace system is not configured! Use `/marketplace-setup` first.")
		return
	}

	targetChannelID := i.ChannelID
	if ch := optionChannel(s, i, "channel"); ch != nil {
		targetChannelID = ch.ID
	}

	if _, err := s.ChannelMessageSendComplex(targetChannelID, buildPanelMessage()); err != nil {
		logger.Error().Err(err).Str("channel_id", targetChannelID).Msg("failed to post marketplace panel")
		respondEphemeral(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("✅ Marketplace submission button posted in <#%s>!", targetChannelID))
}

// guildConfig reads the guild's marketplace config, treating read errors as
// "not configured" so commands degrade instead of crashing.
func guildConfig(guildID string) *db.MarketplaceConfig {
	cfg, err := store.GetMarketplaceConfig(guildID)
	if err != nil {
		logger.Error().Err(err).Str("guild_id", guildID).Msg("failed to read marketplace config")
		return nil
	}
	return cfg
}

// isTextChannel reports whether the guild channel can hold messages. Threads
// and the text chat of voice channels qualify alongside plain text channels.
func isTextChannel(ch *discordgo.Channel) bool {
	switch ch.Type {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread,
		discordgo.ChannelTypeGuildVoice,
		discordgo.ChannelTypeGuildStageVoice:
		return true
	}
	return false
}

// optionChannel returns the channel option with the given name, nil when
// absent.
func optionChannel(s *discordgo.Session, i *discordgo.InteractionCreate, name string) *discordgo.Channel {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionChannel {
			return opt.ChannelValue(s)
		}
	}
	return nil
}
