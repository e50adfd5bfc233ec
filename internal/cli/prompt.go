package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// promptLine prints message and reads one line. ok is false when input ended.
func (m *Menu) promptLine(message string) (string, bool) {
	fmt.Fprint(m.out, message)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// promptInt re-prompts until the user supplies an integer >= minimum.
func (m *Menu) promptInt(message string, minimum int) (int, bool) {
	for {
		line, ok := m.promptLine(message)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a valid number.")
			continue
		}
		if v < minimum {
			fmt.Fprintf(m.out, "Value must be at least %d.\n", minimum)
			continue
		}
		return v, true
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
