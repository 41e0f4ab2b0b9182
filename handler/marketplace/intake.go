package marketplace

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/handler"
	"github.com/mggonzales/discord-bot/logger"
)

func submitButtonHandler(s *discordgo.Session, i *discordgo.InteractionCreate, _ handler.Ref) {
	cfg := guildConfig(i.GuildID)
	if cfg == nil {
		respondEphemeral(s, i, "❌ Marketplace system is not configured! An administrator needs to run `/marketplace-setup` first.")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: buildSubmissionModal(),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to show submission modal")
	}
}

func submissionModalHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := deferEphemeral(s, i); err != nil {
		logger.Error().Err(err).Msg("failed to defer modal response")
		return
	}

	cfg := guildConfig(i.GuildID)
	if cfg == nil {
		editReply(s, i, "❌ Marketplace system is not configured!")
		return
	}

	values := modalValues(i.ModalSubmitData())
	title := values["listing_title"]
	description := values["listing_description"]
	price := values["listing_price"]
	contact := values["listing_contact"]
	imageURL := validImageURL(values["listing_image"])

	if title == "" || description == "" || price == "" || contact == "" {
		editReply(s, i, "❌ Title, description, price and contact are all required.")
		return
	}

	user := i.Member.User
	submissionID := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), user.ID)

	embed := buildReviewEmbed(title, description, price, contact, imageURL, user)
	sent, err := s.ChannelMessageSendComplex(cfg.SubmissionsChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: buildReviewButtons(submissionID),
	})
	if err != nil {
		logger.Error().Err(err).Str("channel_id", cfg.SubmissionsChannelID).Msg("failed to send submission")
		editReply(s, i, "❌ Failed to submit your listing. Please contact an administrator.")
		return
	}

	// The review message is the submission's system of record: rewrite it to
	// carry the payload as a fenced JSON block in the body.
	sub := &Submission{
		MessageID:   sent.ID,
		Title:       title,
		Description: description,
		Price:       price,
		Contact:     contact,
		ImageURL:    imageURL,
		UserID:      user.ID,
		Username:    user.Username,
		UserTag:     user.String(),
	}
	content, err := EncodeContent(sub)
	if err == nil {
		_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel: cfg.SubmissionsChannelID,
			ID:      sent.ID,
			Content: &content,
		})
	}
	if err != nil {
		logger.Error().Err(err).Str("message_id", sent.ID).Msg("failed to attach submission payload")
		editReply(s, i, "❌ Failed to submit your listing. Please contact an administrator.")
		return
	}

	editReply(s, i, "✅ Your submission has been sent for review! You will be notified once it is processed.")
}

// validImageURL returns the input when it is a well-formed absolute URL and
// the empty string otherwise. A bad URL silently drops the image rather than
// failing the submission.
func validImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return raw
}

// modalValues flattens a modal's text inputs into customID -> value.
func modalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, component := range data.Components {
		actionRow, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}
