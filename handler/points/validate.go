package points

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

var (
	errTargetBot  = errors.New("cannot award points to bots")
	errTargetSelf = errors.New("cannot award points to yourself")
)

// validateAwardTarget rejects award targets before any ledger mutation.
func validateAwardTarget(target *discordgo.User, invokerID string) error {
	if target.Bot {
		return errTargetBot
	}
	if target.ID == invokerID {
		return errTargetSelf
	}
	return nil
}
