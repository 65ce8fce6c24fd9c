package analysis

import "strings"

// meaningfulLines returns the added and removed lines of a unified diff,
// excluding the +++/--- file headers.
func meaningfulLines(diff string) []string {
	var lines []string
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			lines = append(lines, line)
		}
	}
	return lines
}
