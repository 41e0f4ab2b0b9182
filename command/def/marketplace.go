package def

import "github.com/bwmarrin/discordgo"

var MarketplaceSetupCommand = &discordgo.ApplicationCommand{
	Name:        "marketplace-setup",
	Description: "Set up the marketplace system (requires Administrator)",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "marketplace-channel",
			Description: "The channel where approved listings will be posted",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "submissions-channel",
			Description: "The channel where submissions will be reviewed",
			Required:    true,
		},
	},
}

var MarketplacePostCommand = &discordgo.ApplicationCommand{
	Name:        "marketplace-post",
	Description: "Post the marketplace submission button (requires Administrator)",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "The channel to post the button in (defaults to current channel)",
			Required:    false,
		},
	},
}
