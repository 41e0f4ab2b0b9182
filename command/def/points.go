package def

import "github.com/bwmarrin/discordgo"

var GoodCommand = &discordgo.ApplicationCommand{
	Name:        "good",
	Description: "Award +1 point to a user",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to award points to",
			Required:    true,
		},
	},
}

var BalanceCommand = &discordgo.ApplicationCommand{
	Name:        "balance",
	Description: "Check point balance for yourself or another user",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to check (defaults to you)",
			Required:    false,
		},
	},
}

var ResetCommand = &discordgo.ApplicationCommand{
	Name:        "reset",
	Description: "Reset points for a user or all users (requires Manage Server)",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to reset (leave empty to reset all users)",
			Required:    false,
		},
	},
}

var LeaderboardCommand = &discordgo.ApplicationCommand{
	Name:        "leaderboard",
	Description: "View the top 10 users with the most points",
}
