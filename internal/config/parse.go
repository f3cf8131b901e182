package config

import "strings"

// ParseNames splits a block of text into one trimmed name per line.
// Blank lines are skipped.
func ParseNames(text string) []string {
	return cleanNames(strings.Split(normalizeNewlines(text), "\n"))
}

// ParseFixedGroups reads one comma-separated group per line, e.g.
//
//	Alice, Bob
//	Carol, Dan
func ParseFixedGroups(text string) [][]string {
	var groups [][]string
	for _, line := range strings.Split(normalizeNewlines(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if names := cleanNames(strings.Split(line, ",")); len(names) > 0 {
			groups = append(groups, names)
		}
	}
	return groups
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
