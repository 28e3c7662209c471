package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/caret/fileio"
	"github.com/iw2rmb/caret/highlight"
	"github.com/iw2rmb/caret/termui"
)

// diskChangedMsg wakes the program after the watcher saw the open file change.
type diskChangedMsg struct{}

type model struct {
	editor termui.Model
	style  termui.Style

	cache   *highlight.Cache
	watcher *fileio.Watcher
	logger  *slog.Logger

	language string
	palette  highlight.Palette
	dark     bool
	hlKind   string

	prompt  textinput.Model
	pending *promptRequest

	// path is the file the highlighter and watcher were last set up for.
	path     string
	synced   bool
	detected string
	stale    bool
	status   string

	width int
}

func newModel(ed termui.Model, st termui.Style, cache *highlight.Cache, w *fileio.Watcher, fcfg fileConfig, dark bool, logger *slog.Logger) model {
	palette := highlight.LightPalette()
	if dark {
		palette = highlight.DarkPalette()
	}
	in := textinput.New()
	in.Prompt = "open: "

	return model{
		editor:   ed,
		style:    st,
		cache:    cache,
		watcher:  w,
		logger:   logger,
		language: fcfg.Language,
		palette:  palette,
		dark:     dark,
		hlKind:   fcfg.Highlighter,
		prompt:   in,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		m.prompt.Width = max(msg.Width-len(m.prompt.Prompt)-1, 0)
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			m.answerPrompt("")
			return m, tea.Quit
		}
		if m.pending != nil {
			return m.updatePrompt(msg)
		}
		m.status = ""
		m.editor, cmd = m.editor.Update(msg)
	case promptRequest:
		m.pending = &msg
		m.prompt.SetValue("")
		m.prompt.Placeholder = msg.cwd
		cmd = m.prompt.Focus()
		m.editor = m.editor.Blur()
	case diskChangedMsg:
		m.checkDisk()
	default:
		m.editor, cmd = m.editor.Update(msg)
	}

	m.sync()
	return m, cmd
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive
	case tea.KeyEnter:
		m.answerPrompt(resolvePath(m.pending.cwd, m.prompt.Value()))
		return m, nil
	case tea.KeyEsc:
		m.answerPrompt("")
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *model) answerPrompt(path string) {
	if m.pending == nil {
		return
	}
	m.pending.reply <- path
	m.pending = nil
	m.prompt.Blur()
	m.editor = m.editor.Focus()
}

// sync follows the editor's output: it reports errors and, when the
// document's path changed, picks a highlighter and moves the watcher.
func (m *model) sync() {
	out := m.editor.Output()
	if out.Err != nil {
		m.status = errorText(out.Err)
	}
	if m.synced && out.Path == m.path {
		return
	}
	m.synced = true
	m.path = out.Path
	m.stale = false

	h, lang := m.highlighterFor(m.path)
	m.detected = lang
	m.cache.SetHighlighter(h)
	m.editor, _ = m.editor.Update(termui.RedrawMsg{})

	if m.watcher != nil {
		if err := m.watcher.Watch(m.path); err != nil {
			m.logger.Warn("watch failed", "path", m.path, "err", err)
		}
	}
}

func (m *model) highlighterFor(path string) (highlight.Highlighter, string) {
	switch m.hlKind {
	case "none":
		return highlight.Plain{}, ""
	case "alternating":
		return highlight.Alternating{Dark: m.dark}, "alternating"
	default:
		c := highlight.NewChroma(m.language, filepath.Base(path), m.palette)
		return c, c.Language()
	}
}

// checkDisk marks the document stale when the file no longer holds the
// editor's text. Saving from the editor produces events too.
func (m *model) checkDisk() {
	if m.watcher == nil {
		return
	}
	path, ok := m.watcher.Poll()
	if !ok || path == "" {
		return
	}
	text, err := fileio.ReadFile(path)
	if err != nil {
		m.logger.Warn("reread failed", "path", path, "err", err)
		return
	}
	m.stale = text != m.editor.Editor().Text()
	if m.stale {
		m.logger.Info("file changed on disk", "path", path)
	}
}

func errorText(err error) string {
	if errors.Is(err, fileio.ErrCanceled) {
		return "open canceled"
	}
	return err.Error()
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	if m.pending != nil {
		return m.prompt.View()
	}

	name := m.path
	if name == "" {
		name = "[scratch]"
	}
	parts := []string{name}
	if m.editor.Output().Modified {
		parts[0] += " *"
	}
	if m.detected != "" {
		parts = append(parts, m.detected)
	}
	if m.stale {
		parts = append(parts, "changed on disk")
	}
	ed := m.editor.Editor()
	row, col := m.editor.Output().Layout.RowCol(ed.Cursor().Offset)
	parts = append(parts, fmt.Sprintf("%d:%d", row+1, col+1))

	left := m.style.Status.Render(strings.Join(parts, " · "))
	if m.status != "" {
		left += "  " + m.style.StatusError.Render(m.status)
	}
	help := m.style.Status.Render("ctrl+o open · ctrl+s save · ctrl+q quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + help
}
