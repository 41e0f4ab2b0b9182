package handler

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/logger"
)

// Component custom IDs. Per-submission review actions carry the submission ID
// after the prefix; the submit button is shared.
const (
	CustomIDSubmit              = "marketplace_submit"
	CustomIDApprovePrefix       = "marketplace_approve_"
	CustomIDRequestImagesPrefix = "marketplace_request_images_"
	CustomIDDeclinePrefix       = "marketplace_decline_"
)

// Modal custom IDs.
const (
	ModalIDSubmission    = "marketplace_modal"
	ModalIDDeclineReason = "decline_reason_modal"
)

// RefKind enumerates the component interactions the bot understands.
type RefKind int

const (
	RefUnknown RefKind = iota
	RefSubmit
	RefApprove
	RefRequestImages
	RefDecline
)

// Ref is a component custom ID decoded into its kind and payload. Decoding
// happens once, here at the router boundary.
type Ref struct {
	Kind         RefKind
	SubmissionID string
}

// ParseComponentID decodes a component custom ID into a Ref.
func ParseComponentID(customID string) Ref {
	switch {
	case customID == CustomIDSubmit:
		return Ref{Kind: RefSubmit}
	case strings.HasPrefix(customID, CustomIDRequestImagesPrefix):
		return Ref{Kind: RefRequestImages, SubmissionID: strings.TrimPrefix(customID, CustomIDRequestImagesPrefix)}
	case strings.HasPrefix(customID, CustomIDApprovePrefix):
		return Ref{Kind: RefApprove, SubmissionID: strings.TrimPrefix(customID, CustomIDApprovePrefix)}
	case strings.HasPrefix(customID, CustomIDDeclinePrefix):
		return Ref{Kind: RefDecline, SubmissionID: strings.TrimPrefix(customID, CustomIDDeclinePrefix)}
	default:
		return Ref{Kind: RefUnknown}
	}
}

var (
	commandHandlers   = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
	componentHandlers = make(map[RefKind]func(s *discordgo.Session, i *discordgo.InteractionCreate, ref Ref))
	modalHandlers     = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
)

// AddCommandHandler registers a handler for a slash command.
func AddCommandHandler(name string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	commandHandlers[name] = handler
}

// AddComponentHandler registers a handler for a component interaction kind.
func AddComponentHandler(kind RefKind, handler func(s *discordgo.Session, i *discordgo.InteractionCreate, ref Ref)) {
	componentHandlers[kind] = handler
}

// AddModalHandler registers a handler for a modal submission.
func AddModalHandler(customID string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	modalHandlers[customID] = handler
}

// OnInteractionCreate is the main interaction router. It should be registered
// as the primary interaction handler on the session.
func OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("panic while handling interaction")
			replyGenericError(s, i)
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if handler, ok := commandHandlers[i.ApplicationCommandData().Name]; ok {
			handler(s, i)
		}
	case discordgo.InteractionMessageComponent:
		ref := ParseComponentID(i.MessageComponentData().CustomID)
		if handler, ok := componentHandlers[ref.Kind]; ok {
			handler(s, i, ref)
		}
	case discordgo.InteractionModalSubmit:
		if handler, ok := modalHandlers[i.ModalSubmitData().CustomID]; ok {
			handler(s, i)
		}
	}
}

// replyGenericError sends the one-size-fits-all apology. If the interaction
// was already acknowledged the reply goes out as a followup instead.
func replyGenericError(s *discordgo.Session, i *discordgo.InteractionCreate) {
	const msg = "❌ An error occurred while processing your request. Please try again."

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		if err != nil {
			logger.Error().Err(err).Msg("failed to send error message")
		}
	}
}
