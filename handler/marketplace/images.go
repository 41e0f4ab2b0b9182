package marketplace

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/logger"
)

// OnMessageCreate watches every direct message for replies to outstanding
// image requests. Register it as a session-level handler; guild messages and
// bot authors are filtered out immediately.
func OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	// Only DMs carry no guild ID.
	if m.GuildID != "" {
		return
	}

	request, ok := requests.Lookup(m.Author.ID)
	if !ok {
		return
	}

	var imageURLs []string
	for _, att := range m.Attachments {
		if strings.HasPrefix(att.ContentType, "image/") {
			imageURLs = append(imageURLs, att.URL)
		}
	}
	// No images yet; keep waiting without nagging.
	if len(imageURLs) == 0 {
		return
	}

	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:    []*discordgo.MessageEmbed{buildImagesReceivedEmbed(len(imageURLs), request.ListingTitle)},
		Reference: m.Reference(),
	})
	if err != nil {
		logger.Error().Err(err).Str("user_id", m.Author.ID).Msg("failed to confirm image receipt")
	}

	if !attachImagesToSubmission(s, m.Author.ID, request, imageURLs) {
		_, err := s.ChannelMessageSend(m.ChannelID, "There was an error processing your images. Please contact a moderator.")
		if err != nil {
			logger.Error().Err(err).Str("user_id", m.Author.ID).Msg("failed to report image processing error")
		}
	}

	// Fulfilled either way; a failed channel update is not retried.
	requests.Remove(m.Author.ID)
}

// attachImagesToSubmission locates the review message across all configured
// guilds and overlays the received images onto it. Only the guild holding the
// message succeeds; failures elsewhere are logged per guild and skipped.
// Returns false when no guild could be updated.
func attachImagesToSubmission(s *discordgo.Session, submitterID string, request PendingImageRequest, imageURLs []string) bool {
	configs, err := store.GetAllMarketplaceConfigs()
	if err != nil {
		logger.Error().Err(err).Msg("failed to read marketplace configs")
		return false
	}

	for _, cfg := range configs {
		msg, err := s.ChannelMessage(cfg.SubmissionsChannelID, request.SubmissionMessageID)
		if err != nil {
			logger.Warn().Err(err).
				Str("guild_id", cfg.GuildID).
				Str("message_id", request.SubmissionMessageID).
				Msg("could not update submission in guild")
			continue
		}
		if len(msg.Embeds) == 0 {
			logger.Warn().Str("guild_id", cfg.GuildID).Str("message_id", msg.ID).Msg("submission message has no embed")
			continue
		}

		updated := cloneEmbed(msg.Embeds[0])
		updated.Image = &discordgo.MessageEmbedImage{URL: imageURLs[0]}
		updated.Fields = append(updated.Fields, &discordgo.MessageEmbedField{
			Name: "📸 Images Received",
			Value: fmt.Sprintf("User submitted %d image(s) at <t:%d:f>\n%s",
				len(imageURLs), time.Now().Unix(), imageLinksField(imageURLs)),
		})

		edit := &discordgo.MessageEdit{
			Channel: cfg.SubmissionsChannelID,
			ID:      msg.ID,
			Embeds:  &[]*discordgo.MessageEmbed{updated},
		}

		// Merge the images into the stored payload so later review actions
		// see them. A message without a payload still gets the embed update.
		if sub, err := DecodeContent(msg.Content); err == nil {
			sub.ImageURL = imageURLs[0]
			sub.AdditionalImages = imageURLs
			if content, err := EncodeContent(sub); err == nil {
				edit.Content = &content
			}
		} else {
			logger.Warn().Err(err).Str("message_id", msg.ID).Msg("submission payload missing, updating embed only")
		}

		if _, err := s.ChannelMessageEditComplex(edit); err != nil {
			logger.Warn().Err(err).
				Str("guild_id", cfg.GuildID).
				Str("message_id", msg.ID).
				Msg("could not update submission in guild")
			continue
		}

		_, err = s.ChannelMessageSend(cfg.SubmissionsChannelID, fmt.Sprintf(
			"📸 <@%s> has submitted images for their marketplace listing! Check the updated submission above.",
			submitterID))
		if err != nil {
			logger.Warn().Err(err).Str("guild_id", cfg.GuildID).Msg("failed to post image audit notice")
		}

		return true
	}

	logger.Warn().Str("user_id", submitterID).Str("message_id", request.SubmissionMessageID).
		Msg("received images but could not locate the submission message in any guild")
	return false
}
