// Package prompt provides interactive terminal prompts for confirmation and
// credential entry.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptForUsername prompts the user for a username.
	PromptForUsername(message string) (string, error)

	// PromptForToken prompts the user for an access token without echoing it.
	PromptForToken(message string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompter instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForConfirmation prompts the user for confirmation with a default
// value, re-prompting until the answer is recognized. Exhausting the input
// without a recognizable answer is an error.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	for {
		fmt.Printf("%s %s: ", message, defaultText)

		input, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}

		// Trim whitespace and newlines
		answer := strings.TrimSpace(strings.ToLower(input))

		switch answer {
		case "":
			// A bare newline means "use the default"; no input at all
			// means the stream ended before an answer.
			if input == "" {
				return false, ErrInvalidConfirmationInput
			}
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err == io.EOF {
			return false, ErrInvalidConfirmationInput
		}

		fmt.Println("Please answer 'y' or 'n'.")
	}
}

// PromptForUsername prompts the user for a username.
func (p *realPrompt) PromptForUsername(message string) (string, error) {
	fmt.Print(message)

	input, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	username := strings.TrimSpace(input)
	if username == "" {
		return "", ErrEmptyInput
	}

	return username, nil
}

// PromptForToken prompts the user for an access token without echoing it.
// Falls back to a regular visible prompt when stdin is not a terminal.
func (p *realPrompt) PromptForToken(message string) (string, error) {
	fmt.Print(message)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		input, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("failed to read user input: %w", err)
		}
		token := strings.TrimSpace(input)
		if token == "" {
			return "", ErrEmptyInput
		}
		return token, nil
	}

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", ErrEmptyInput
	}

	return token, nil
}
