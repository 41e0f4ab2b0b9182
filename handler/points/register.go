package points

import (
	"github.com/mggonzales/discord-bot/command/def"
	"github.com/mggonzales/discord-bot/db"
	"github.com/mggonzales/discord-bot/handler"
)

var store db.Store

// Register wires the points commands into the interaction router.
func Register(s db.Store) {
	store = s

	handler.AddCommandHandler(def.GoodCommand.Name, goodCommandHandler)
	handler.AddCommandHandler(def.BalanceCommand.Name, balanceCommandHandler)
	handler.AddCommandHandler(def.ResetCommand.Name, resetCommandHandler)
	handler.AddCommandHandler(def.LeaderboardCommand.Name, leaderboardCommandHandler)
}
