package marketplace

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/handler"
	"github.com/mggonzales/discord-bot/logger"
	"github.com/mggonzales/discord-bot/utils"
)

func approveHandler(s *discordgo.Session, i *discordgo.InteractionCreate, _ handler.Ref) {
	if !utils.HasCapability(s, i, utils.CapReviewSubmissions) {
		respondEphemeral(s, i, "❌ You need **Administrator** or **Manage Server** permission to approve submissions!")
		return
	}

	if err := deferEphemeral(s, i); err != nil {
		logger.Error().Err(err).Msg("failed to defer approve response")
		return
	}

	cfg := guildConfig(i.GuildID)
	if cfg == nil {
		editReply(s, i, "❌ Marketplace system is not configured!")
		return
	}

	sub, err := DecodeContent(i.Message.Content)
	if err != nil {
		logger.Error().Err(err).Str("message_id", i.Message.ID).Msg("failed to decode submission payload")
		editReply(s, i, "❌ Could not retrieve submission data!")
		return
	}

	_, err = s.ChannelMessageSendComplex(cfg.MarketplaceChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("New listing from <@%s>!", sub.UserID),
		Embeds:  []*discordgo.MessageEmbed{buildListingEmbed(sub)},
	})
	if err != nil {
		logger.Error().Err(err).Str("channel_id", cfg.MarketplaceChannelID).Msg("failed to post listing")
		editReply(s, i, "❌ Failed to approve submission. Please try again.")
		return
	}

	// Terminal transition: flip the review message to approved and strip the
	// buttons so no further decision is reachable.
	updated := cloneEmbed(i.Message.Embeds[0])
	updated.Title = approvedEmbedTitle
	updated.Color = colorApproved

	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         i.Message.ID,
		Embeds:     &[]*discordgo.MessageEmbed{updated},
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		logger.Error().Err(err).Str("message_id", i.Message.ID).Msg("failed to update review message")
	}

	// Best effort; the submitter may have DMs closed.
	err = sendDM(s, sub.UserID, &discordgo.MessageSend{
		Content: fmt.Sprintf("✅ Your marketplace submission **\"%s\"** has been approved and posted!", sub.Title),
	})
	if err != nil {
		logger.Warn().Err(err).Str("user_id", sub.UserID).Msg("could not DM user about approval")
	}

	editReply(s, i, fmt.Sprintf("✅ Submission approved and posted to <#%s>!", cfg.MarketplaceChannelID))
}

func requestImagesHandler(s *discordgo.Session, i *discordgo.InteractionCreate, _ handler.Ref) {
	if !utils.HasCapability(s, i, utils.CapReviewSubmissions) {
		respondEphemeral(s, i, "❌ You need **Administrator** or **Manage Server** permission to request images!")
		return
	}

	if err := deferEphemeral(s, i); err != nil {
		logger.Error().Err(err).Msg("failed to defer request-images response")
		return
	}

	sub, err := DecodeContent(i.Message.Content)
	if err != nil {
		logger.Error().Err(err).Str("message_id", i.Message.ID).Msg("failed to decode submission payload")
		editReply(s, i, "❌ Could not retrieve submission data!")
		return
	}

	// Unlike approve, DM reachability is load-bearing here: without it the
	// submitter can never fulfil the request, so failure goes back to the
	// moderator.
	err = sendDM(s, sub.UserID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{buildImageRequestEmbed(sub.Title)},
	})
	if err != nil {
		logger.Warn().Err(err).Str("user_id", sub.UserID).Msg("could not DM user for image request")
		editReply(s, i, "❌ Could not send DM to user. They may have DMs disabled or have blocked the bot.")
		return
	}

	updated := cloneEmbed(i.Message.Embeds[0])
	updated.Fields = append(updated.Fields, &discordgo.MessageEmbedField{
		Name:  "📸 Image Request",
		Value: fmt.Sprintf("Sent by <@%s> at <t:%d:f>", i.Member.User.ID, time.Now().Unix()),
	})

	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel: i.ChannelID,
		ID:      i.Message.ID,
		Embeds:  &[]*discordgo.MessageEmbed{updated},
	})
	if err != nil {
		logger.Error().Err(err).Str("message_id", i.Message.ID).Msg("failed to record image request on review message")
	}

	requests.Add(sub.UserID, i.Message.ID, sub.Title)

	editReply(s, i, fmt.Sprintf(
		"✅ Image request sent to <@%s>! The bot will monitor their DMs for the next 24 hours.\n\nWhen they send images, you'll be notified here.",
		sub.UserID))
}

func declineHandler(s *discordgo.Session, i *discordgo.InteractionCreate, _ handler.Ref) {
	if !utils.HasCapability(s, i, utils.CapReviewSubmissions) {
		respondEphemeral(s, i, "❌ You need **Administrator** or **Manage Server** permission to decline submissions!")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: handler.ModalIDDeclineReason,
			Title:    "Decline Submission",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "decline_reason",
							Label:       "Reason for Decline (sent to user)",
							Placeholder: "e.g., Does not meet marketplace guidelines, Inappropriate content, etc.",
							Style:       discordgo.TextInputParagraph,
							Required:    true,
							MaxLength:   500,
						},
					},
				},
			},
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to show decline modal")
	}
}

func declineReasonModalHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := deferEphemeral(s, i); err != nil {
		logger.Error().Err(err).Msg("failed to defer decline response")
		return
	}

	reason := modalValues(i.ModalSubmitData())["decline_reason"]
	if reason == "" {
		editReply(s, i, "❌ A decline reason is required.")
		return
	}

	msg, err := findPendingSubmissionMessage(s, i.ChannelID)
	if err != nil {
		logger.Error().Err(err).Str("channel_id", i.ChannelID).Msg("failed to locate submission message")
		editReply(s, i, "❌ Could not find the submission message. Please try declining again or contact an administrator.")
		return
	}

	sub, err := DecodeContent(msg.Content)
	if err != nil {
		logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to decode submission payload")
		editReply(s, i, "❌ Could not retrieve submission data!")
		return
	}

	updated := cloneEmbed(msg.Embeds[0])
	updated.Title = declinedEmbedTitle
	updated.Color = colorDeclined
	updated.Fields = append(updated.Fields, &discordgo.MessageEmbedField{
		Name:  "📝 Decline Reason",
		Value: reason,
	})

	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         msg.ID,
		Embeds:     &[]*discordgo.MessageEmbed{updated},
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to update review message")
		editReply(s, i, "❌ Failed to decline submission. Please try again.")
		return
	}

	err = sendDM(s, sub.UserID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{buildDeclineDMEmbed(sub.Title, reason)},
	})
	if err != nil {
		logger.Warn().Err(err).Str("user_id", sub.UserID).Msg("could not DM user about decline")
	}

	editReply(s, i, fmt.Sprintf("✅ Submission declined. Reason sent to <@%s>.", sub.UserID))
}

// findPendingSubmissionMessage scans recent channel history for the newest
// review message that still has its buttons. The decline modal carries no
// back-reference to its message, so this heuristic is all we have; with two
// declines in flight in a busy submissions channel it can pick the wrong
// message.
func findPendingSubmissionMessage(s *discordgo.Session, channelID string) (*discordgo.Message, error) {
	messages, err := s.ChannelMessages(channelID, 50, "", "", "")
	if err != nil {
		return nil, err
	}

	for _, msg := range messages {
		if len(msg.Embeds) > 0 && msg.Embeds[0].Title == reviewEmbedTitle && len(msg.Components) > 0 {
			return msg, nil
		}
	}
	return nil, fmt.Errorf("no pending submission message in the last %d messages", 50)
}

// sendDM opens (or reuses) the user's DM channel and sends msg.
func sendDM(s *discordgo.Session, userID string, msg *discordgo.MessageSend) error {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open DM channel: %w", err)
	}
	if _, err := s.ChannelMessageSendComplex(channel.ID, msg); err != nil {
		return fmt.Errorf("send DM: %w", err)
	}
	return nil
}
