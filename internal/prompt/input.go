// Package prompt provides interactive terminal input for the init
// command.
package prompt

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TextInputWithPrompter provides simple text input with a colored
// prompt using the given prompter
func TextInputWithPrompter(prompter Prompter, prompt string) (string, error) {
	coloredPrompt := color.CyanString(prompt + " ")
	result, err := prompter.Prompt(coloredPrompt)
	if err != nil {
		return "", fmt.Errorf("text input with prompter failed: %w", err)
	}
	return result, nil
}

// TextInputWithDefault prompts for input and falls back to def when
// the user submits an empty line.
func TextInputWithDefault(prompter Prompter, prompt, def string) (string, error) {
	result, err := TextInputWithPrompter(prompter, fmt.Sprintf("%s [%s]:", prompt, def))
	if err != nil {
		return "", err
	}
	if result == "" {
		return def, nil
	}
	return result, nil
}
