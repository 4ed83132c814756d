package utils

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// SplitRoleList parses a comma-separated mod role list into trimmed entries.
func SplitRoleList(roles string) []string {
	if roles == "" {
		return nil
	}
	parts := strings.Split(roles, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

// HasModPermission reports whether a member holds moderator-equivalent
// privilege: the Administrator or Kick Members guild permission through any
// of their roles, or membership in the configured mod role list (matched by
// role ID or role name).
func HasModPermission(s *discordgo.Session, guildID, userID string, modRoles []string) (bool, error) {
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch member %s: %w", userID, err)
	}

	guildRoles, err := s.GuildRoles(guildID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch roles for guild %s: %w", guildID, err)
	}

	rolesByID := make(map[string]*discordgo.Role, len(guildRoles))
	for _, r := range guildRoles {
		rolesByID[r.ID] = r
	}

	for _, roleID := range member.Roles {
		role, ok := rolesByID[roleID]
		if !ok {
			continue
		}
		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true, nil
		}
		if role.Permissions&discordgo.PermissionKickMembers != 0 {
			return true, nil
		}
		if contains(modRoles, role.ID) || contains(modRoles, role.Name) {
			return true, nil
		}
	}

	return false, nil
}
