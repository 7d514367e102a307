package app

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// ShareBoard copies the session summary to the system clipboard and
// returns the status line to flash. Clipboard access needs xclip or
// xsel on Linux, so a failure is reported, not fatal.
func ShareBoard(s *Session) string {
	if err := clipboard.WriteAll(s.SummaryText()); err != nil {
		return fmt.Sprintf("copy failed: %v", err)
	}
	return "board copied to clipboard"
}
