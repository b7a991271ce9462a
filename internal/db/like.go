package db

import "strings"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern lowercases s and wraps it for a substring match. LIKE
// wildcards in s match literally; pair it with "LIKE ? ESCAPE '!'".
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}
