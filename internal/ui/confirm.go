package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirm prompts the user with a yes/no question and returns their answer.
// Anything other than "y" or "yes" (case-insensitive) counts as no, and so
// does a read failure, so the safe path is always the default.
func Confirm(question string) bool {
	fmt.Print(ValueStyle.Render(question) + MutedStyle.Render(" [y/N] "))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
