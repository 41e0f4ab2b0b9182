package points

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/config"
	"github.com/mggonzales/discord-bot/logger"
	"github.com/mggonzales/discord-bot/utils"
)

func goodCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.HasCapability(s, i, utils.CapAwardPoints) {
		respondEphemeral(s, i, fmt.Sprintf(
			"❌ You need one of these roles to award points: **%s** (or Administrator permission)",
			strings.Join(config.Cfg.Points.AwardRoles, ", ")))
		return
	}

	target := optionUser(s, i, "user")
	if target == nil {
		respondEphemeral(s, i, "❌ Please specify a user to award points to.")
		return
	}

	if err := validateAwardTarget(target, i.Member.User.ID); err != nil {
		switch {
		case errors.Is(err, errTargetBot):
			respondEphemeral(s, i, "❌ You cannot award points to bots!")
		case errors.Is(err, errTargetSelf):
			respondEphemeral(s, i, "❌ You cannot award points to yourself!")
		}
		return
	}

	// Read-modify-write; not atomic under concurrent awards, last write wins.
	current, err := store.GetPoints(target.ID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", target.ID).Msg("failed to read points, defaulting to 0")
		current = 0
	}

	newPoints := current + 1
	if err := store.SetPoints(target.ID, newPoints); err != nil {
		logger.Error().Err(err).Str("user_id", target.ID).Msg("failed to save points")
		respondEphemeral(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}

	respond(s, i, fmt.Sprintf("✅ Awarded +1 point to <@%s>! They now have **%d** point(s).", target.ID, newPoints))
}

func balanceCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := optionUser(s, i, "user")
	if target == nil {
		target = i.Member.User
	}

	points, err := store.GetPoints(target.ID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", target.ID).Msg("failed to read points, defaulting to 0")
		points = 0
	}

	if target.ID == i.Member.User.ID {
		respond(s, i, fmt.Sprintf("💰 You have **%d** point(s).", points))
	} else {
		respond(s, i, fmt.Sprintf("💰 <@%s> has **%d** point(s).", target.ID, points))
	}
}

func resetCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.HasCapability(s, i, utils.CapResetPoints) {
		respondEphemeral(s, i, "❌ You need the **Manage Server** permission to use this command!")
		return
	}

	target := optionUser(s, i, "user")

	if target != nil {
		hadPoints, err := store.GetPoints(target.ID)
		if err != nil {
			logger.Error().Err(err).Str("user_id", target.ID).Msg("failed to read points, defaulting to 0")
			hadPoints = 0
		}
		if err := store.ResetPoints(target.ID); err != nil {
			logger.Error().Err(err).Str("user_id", target.ID).Msg("failed to reset points")
			respondEphemeral(s, i, "❌ An error occurred while processing your request. Please try again.")
			return
		}
		respond(s, i, fmt.Sprintf("🔄 Reset <@%s>'s points to 0. (Previously: %d)", target.ID, hadPoints))
		return
	}

	entries, err := store.GetAllPoints()
	if err != nil {
		logger.Error().Err(err).Msg("failed to read points, defaulting to empty")
		entries = nil
	}
	if err := store.ResetAllPoints(); err != nil {
		logger.Error().Err(err).Msg("failed to reset all points")
		respondEphemeral(s, i, "❌ An error occurred while processing your request. Please try again.")
		return
	}
	respond(s, i, fmt.Sprintf("🔄 Reset all points! Cleared data for %d user(s).", len(entries)))
}

func leaderboardCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	entries, err := store.GetAllPoints()
	if err != nil {
		logger.Error().Err(err).Msg("failed to read points, defaulting to empty")
		entries = nil
	}

	if len(entries) > 10 {
		entries = entries[:10]
	}

	if len(entries) == 0 {
		respondEphemeral(s, i, "📊 No one has any points yet! Use `/good @user` to award points.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Points Leaderboard",
		Description: "Top 10 users with the most points",
		Color:       0xFFD700,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", i.Member.User.Username),
		},
	}

	for rank, entry := range entries {
		plural := "s"
		if entry.Points == 1 {
			plural = ""
		}

		user, err := s.User(entry.UserID)
		if err != nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   fmt.Sprintf("%d. Unknown User", rank+1),
				Value:  fmt.Sprintf("**%d** point%s", entry.Points, plural),
				Inline: true,
			})
			continue
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", medal(rank), user.Username),
			Value:  fmt.Sprintf("**%d** point%s", entry.Points, plural),
			Inline: true,
		})

		if rank == 0 {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("256")}
		}
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to send leaderboard")
	}
}

func medal(rank int) string {
	switch rank {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank+1)
	}
}

// optionUser returns the user option with the given name, nil when absent.
func optionUser(s *discordgo.Session, i *discordgo.InteractionCreate, name string) *discordgo.User {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionUser {
			return opt.UserValue(s)
		}
	}
	return nil
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to respond to interaction")
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to respond to interaction")
	}
}
