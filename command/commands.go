package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/command/def"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.GoodCommand,
	def.BalanceCommand,
	def.ResetCommand,
	def.LeaderboardCommand,
	def.MarketplaceSetupCommand,
	def.MarketplacePostCommand,
}
