// Package render formats model output for the terminal.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Markdown renders text as terminal markdown.
func Markdown(text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("new term renderer: %w", err)
	}

	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return out, nil
}
