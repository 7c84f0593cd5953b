package formatter

import "regexp"

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI makes assertions independent of the terminal color profile.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
