package marketplace

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestIsTextChannel(t *testing.T) {
	cases := []struct {
		name string
		typ  discordgo.ChannelType
		want bool
	}{
		{"guild text", discordgo.ChannelTypeGuildText, true},
		{"announcement", discordgo.ChannelTypeGuildNews, true},
		{"news thread", discordgo.ChannelTypeGuildNewsThread, true},
		{"public thread", discordgo.ChannelTypeGuildPublicThread, true},
		{"private thread", discordgo.ChannelTypeGuildPrivateThread, true},
		{"voice text chat", discordgo.ChannelTypeGuildVoice, true},
		{"stage text chat", discordgo.ChannelTypeGuildStageVoice, true},
		{"category", discordgo.ChannelTypeGuildCategory, false},
		{"forum", discordgo.ChannelTypeGuildForum, false},
		{"dm", discordgo.ChannelTypeDM, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isTextChannel(&discordgo.Channel{Type: tc.typ}))
		})
	}
}
