package emit

import "strings"

// Lines decodes captured output and splits it into lines. Invalid UTF-8 is
// replaced rather than rejected, a trailing "\r" is dropped from each line and
// a final newline does not produce an extra empty line.
func Lines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	text := strings.ToValidUTF8(string(data), "\uFFFD")
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
