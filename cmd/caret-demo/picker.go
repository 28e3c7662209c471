package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// promptRequest asks the UI to prompt for a path. The answer goes to reply;
// an empty path means the prompt was dismissed.
type promptRequest struct {
	cwd   string
	reply chan<- string
}

// promptPicker implements fileio.Picker by prompting inside the running
// program.
type promptPicker struct {
	send func(tea.Msg)
}

func (p *promptPicker) Pick(ctx context.Context, cwd string) (string, error) {
	reply := make(chan string, 1)
	p.send(promptRequest{cwd: cwd, reply: reply})
	select {
	case path := <-reply:
		return path, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// resolvePath turns prompt input into a path, relative to cwd.
func resolvePath(cwd, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if strings.HasPrefix(input, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			input = filepath.Join(home, input[2:])
		}
	}
	if !filepath.IsAbs(input) && cwd != "" {
		input = filepath.Join(cwd, input)
	}
	return filepath.Clean(input)
}
