package utils

import (
	"slices"

	"github.com/bwmarrin/discordgo"

	"github.com/mggonzales/discord-bot/config"
)

// Capability names an action gated behind elevated permissions. Every handler
// goes through HasCapability rather than re-deriving permission checks inline.
type Capability int

const (
	// CapAwardPoints: administrators or members holding an allow-listed role.
	CapAwardPoints Capability = iota
	// CapResetPoints: Manage Server.
	CapResetPoints
	// CapManageMarketplace: Administrator (setup and post commands).
	CapManageMarketplace
	// CapReviewSubmissions: Administrator or Manage Server.
	CapReviewSubmissions
)

// HasCapability reports whether the interaction's member may perform the
// given action. Interactions without a member (DM context) never qualify.
func HasCapability(s *discordgo.Session, i *discordgo.InteractionCreate, c Capability) bool {
	if i.Member == nil {
		return false
	}
	perms := i.Member.Permissions

	switch c {
	case CapAwardPoints:
		if perms&discordgo.PermissionAdministrator != 0 {
			return true
		}
		return memberHasRoleName(s, i.GuildID, i.Member, config.Cfg.Points.AwardRoles)
	case CapResetPoints:
		return perms&discordgo.PermissionManageServer != 0
	case CapManageMarketplace:
		return perms&discordgo.PermissionAdministrator != 0
	case CapReviewSubmissions:
		return perms&discordgo.PermissionAdministrator != 0 ||
			perms&discordgo.PermissionManageServer != 0
	}
	return false
}

// memberHasRoleName resolves the member's role IDs against the guild's role
// list and checks for any of the given names.
func memberHasRoleName(s *discordgo.Session, guildID string, member *discordgo.Member, names []string) bool {
	var roles []*discordgo.Role
	if guild, err := s.State.Guild(guildID); err == nil {
		roles = guild.Roles
	} else {
		fetched, err := s.GuildRoles(guildID)
		if err != nil {
			return false
		}
		roles = fetched
	}

	nameByID := make(map[string]string, len(roles))
	for _, role := range roles {
		nameByID[role.ID] = role.Name
	}

	for _, roleID := range member.Roles {
		if slices.Contains(names, nameByID[roleID]) {
			return true
		}
	}
	return false
}
