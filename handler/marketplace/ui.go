package marketplace

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/handler"
)

// Embed titles. The decline flow matches reviewEmbedTitle against channel
// history to find its target, so it doubles as the review message signature.
const (
	reviewEmbedTitle   = "📝 New Marketplace Submission"
	approvedEmbedTitle = "✅ Approved - Marketplace Submission"
	declinedEmbedTitle = "❌ Declined - Marketplace Submission"
)

const (
	colorPanel    = 0x5865F2
	colorPending  = 0xFFA500
	colorApproved = 0x00FF00
	colorDeclined = 0xFF0000
	colorListing  = 0x233DFF
)

func embedTimestamp() string {
	return time.Now().Format(time.RFC3339)
}

// buildPanelMessage is the static call-to-action posted by /marketplace-post.
func buildPanelMessage() *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       "🛍️ Marketplace Submissions",
		Description: "Click the button below to submit your item/service to the marketplace!\n\n**What you can list:**\n• Items for sale\n• Services offered\n• Trade requests\n• And more!\n\nYour submission will be reviewed by our team before being posted.",
		Color:       colorPanel,
		Footer:      &discordgo.MessageEmbedFooter{Text: "All submissions are subject to approval"},
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Submit to Marketplace",
						Style:    discordgo.PrimaryButton,
						CustomID: handler.CustomIDSubmit,
						Emoji:    &discordgo.ComponentEmoji{Name: "📝"},
					},
				},
			},
		},
	}
}

// buildSubmissionModal is the five-field intake form.
func buildSubmissionModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: handler.ModalIDSubmission,
		Title:    "Marketplace Submission",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "listing_title",
						Label:       "Title",
						Placeholder: "e.g., Gaming PC For Sale, Web Design Services",
						Style:       discordgo.TextInputShort,
						Required:    true,
						MaxLength:   100,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "listing_description",
						Label:       "Description",
						Placeholder: "Provide detailed information about your listing...",
						Style:       discordgo.TextInputParagraph,
						Required:    true,
						MaxLength:   1000,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "listing_price",
						Label:       "Price",
						Placeholder: "e.g., $500, Free, Negotiable, 100 points",
						Style:       discordgo.TextInputShort,
						Required:    true,
						MaxLength:   50,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "listing_contact",
						Label:       "Contact Information",
						Placeholder: "How should people contact you? (DM, email, etc.)",
						Style:       discordgo.TextInputShort,
						Required:    true,
						MaxLength:   200,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "listing_image",
						Label:       "Image URL (Optional)",
						Placeholder: "https://example.com/image.png",
						Style:       discordgo.TextInputShort,
						Required:    false,
						MaxLength:   500,
					},
				},
			},
		},
	}
}

// buildReviewEmbed renders a fresh submission for the submissions channel.
func buildReviewEmbed(title, description, price, contact, imageURL string, user *discordgo.User) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: reviewEmbedTitle,
		Color: colorPending,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📌 Title", Value: title},
			{Name: "📄 Description", Value: description},
			{Name: "💰 Price", Value: price, Inline: true},
			{Name: "📞 Contact", Value: contact, Inline: true},
			{Name: "👤 Submitted By", Value: fmt.Sprintf("<@%s>", user.ID), Inline: true},
		},
		Timestamp: embedTimestamp(),
		Footer:    &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("User ID: %s", user.ID)},
	}
	if imageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: imageURL}
	}
	return embed
}

// buildReviewButtons returns the three review actions namespaced by the
// submission ID.
func buildReviewButtons(submissionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Approve",
					Style:    discordgo.SuccessButton,
					CustomID: handler.CustomIDApprovePrefix + submissionID,
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
				},
				discordgo.Button{
					Label:    "Request Images",
					Style:    discordgo.PrimaryButton,
					CustomID: handler.CustomIDRequestImagesPrefix + submissionID,
					Emoji:    &discordgo.ComponentEmoji{Name: "📸"},
				},
				discordgo.Button{
					Label:    "Decline",
					Style:    discordgo.DangerButton,
					CustomID: handler.CustomIDDeclinePrefix + submissionID,
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
				},
			},
		},
	}
}

// buildListingEmbed renders the public marketplace listing for an approved
// submission.
func buildListingEmbed(sub *Submission) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       sub.Title,
		Description: sub.Description,
		Color:       colorListing,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💰 Price", Value: sub.Price, Inline: true},
			{Name: "📞 Contact", Value: sub.Contact, Inline: true},
			{Name: "👤 Seller", Value: fmt.Sprintf("<@%s>", sub.UserID), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Listed by %s", sub.Username)},
		Timestamp: embedTimestamp(),
	}
	if sub.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: sub.ImageURL}
	}
	return embed
}

// buildImageRequestEmbed is the DM sent to the submitter when a moderator
// asks for listing images.
func buildImageRequestEmbed(listingTitle string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📸 Image Request for Your Marketplace Listing",
		Description: fmt.Sprintf("The moderators would like to request images for your listing **\"%s\"**.", listingTitle),
		Color:       colorPending,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📝 What to do", Value: "Please reply to this DM with image(s) of your product/service. You can attach multiple images in a single message."},
			{Name: "⏰ Timeframe", Value: "Please send the images within 24 hours."},
			{Name: "💡 Tip", Value: "Make sure the images are clear and relevant to your listing!"},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Simply attach your images in your next message here"},
		Timestamp: embedTimestamp(),
	}
}

// buildImagesReceivedEmbed confirms receipt to the submitter in the DM.
func buildImagesReceivedEmbed(count int, listingTitle string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✅ Images Received!",
		Description: fmt.Sprintf("Thank you! We've received %d image(s) for your listing **\"%s\"**.", count, listingTitle),
		Color:       colorApproved,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📝 Next Steps", Value: "The moderators will review your images and update your listing accordingly."},
		},
		Timestamp: embedTimestamp(),
	}
}

// buildDeclineDMEmbed is the DM sent to the submitter on decline. Its title is
// phrased for the recipient, not the review channel.
func buildDeclineDMEmbed(listingTitle, reason string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ Marketplace Submission Declined",
		Description: fmt.Sprintf("Your submission **\"%s\"** has been declined.", listingTitle),
		Color:       colorDeclined,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📝 Reason", Value: reason},
		},
		Timestamp: embedTimestamp(),
	}
}

// imageLinksField renders "[Image 1](url) • [Image 2](url)" for the audit
// field appended when a submitter sends images.
func imageLinksField(urls []string) string {
	links := make([]string, len(urls))
	for i, u := range urls {
		links[i] = fmt.Sprintf("[Image %d](%s)", i+1, u)
	}
	return strings.Join(links, " • ")
}

// cloneEmbed copies an embed so the original message state is left untouched
// until the edit goes through.
func cloneEmbed(embed *discordgo.MessageEmbed) *discordgo.MessageEmbed {
	clone := *embed
	clone.Fields = make([]*discordgo.MessageEmbedField, len(embed.Fields))
	for i, f := range embed.Fields {
		field := *f
		clone.Fields[i] = &field
	}
	return &clone
}
