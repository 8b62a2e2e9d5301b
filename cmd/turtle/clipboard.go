package main

import (
	"strings"

	"github.com/atotto/clipboard"
)

// copyFrame puts the frame's characters on the system clipboard, with
// trailing blanks trimmed from every row.
func copyFrame(f frame) error {
	lines := strings.Split(f.Plain(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return clipboard.WriteAll(strings.Join(lines, "\n"))
}
