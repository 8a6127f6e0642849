package main

import "fmt"

// truncate truncates a string to maxLen, padding with spaces if shorter
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return fmt.Sprintf("%-*s", maxLen, s)
	}
	return s[:maxLen-1] + "…"
}

// truncateLeft truncates a string to maxLen keeping the tail, which is the
// useful end for file paths.
func truncateLeft(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return "…" + s[len(s)-maxLen+1:]
}
