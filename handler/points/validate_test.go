package points

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestValidateAwardTarget(t *testing.T) {
	cases := []struct {
		name      string
		target    *discordgo.User
		invokerID string
		wantErr   error
	}{
		{
			name:      "regular member",
			target:    &discordgo.User{ID: "2"},
			invokerID: "1",
			wantErr:   nil,
		},
		{
			name:      "bot",
			target:    &discordgo.User{ID: "2", Bot: true},
			invokerID: "1",
			wantErr:   errTargetBot,
		},
		{
			name:      "self",
			target:    &discordgo.User{ID: "1"},
			invokerID: "1",
			wantErr:   errTargetSelf,
		},
		{
			name:      "invoker who is also a bot rejects on bot first",
			target:    &discordgo.User{ID: "1", Bot: true},
			invokerID: "1",
			wantErr:   errTargetBot,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateAwardTarget(tc.target, tc.invokerID)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
