package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/eiannone/keyboard"
)

// Confirm asks a yes/no question and reads a single keypress. The
// default on Enter, ESC, or any unrecognized key is no. Without a
// usable terminal it falls back to refusing.
func Confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)

	if err := keyboard.Open(); err != nil {
		fmt.Fprintln(os.Stderr, "n")
		return false
	}
	defer keyboard.Close()

	char, key, err := keyboard.GetSingleKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, "n")
		return false
	}
	if key == keyboard.KeyCtrlC || key == keyboard.KeyEsc {
		fmt.Fprintln(os.Stderr, "n")
		return false
	}

	answer := strings.ToLower(string(char))
	fmt.Fprintln(os.Stderr, answer)
	return answer == "y"
}
