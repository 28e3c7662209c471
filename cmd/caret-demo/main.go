// Command caret-demo is a terminal editor built on the caret engine.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/caret"
	"github.com/iw2rmb/caret/editor"
	"github.com/iw2rmb/caret/fileio"
	"github.com/iw2rmb/caret/highlight"
	"github.com/iw2rmb/caret/layout"
	"github.com/iw2rmb/caret/termui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, "caret-demo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fset := flag.NewFlagSet("caret-demo", flag.ContinueOnError)
	configPath := fset.String("config", "", "YAML config file (default $XDG_CONFIG_HOME/caret/config.yaml)")
	theme := fset.String("theme", "", "color theme: dark, light or auto")
	hl := fset.String("highlight", "", "highlighter: chroma, alternating or none")
	lang := fset.String("lang", "", "chroma language, overriding detection by file name")
	tabWidth := fset.Int("tab-width", 0, "tab width in cells")
	noWrap := fset.Bool("no-wrap", false, "disable soft wrapping")
	readOnly := fset.Bool("read-only", false, "open the document read-only")
	logPath := fset.String("log", "", "write debug logs to this file")
	version := fset.Bool("version", false, "print the version and exit")
	fset.Usage = func() {
		_, _ = fmt.Fprintf(fset.Output(), "usage: caret-demo [flags] [file]\n")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return err
	}
	if *version {
		fmt.Println(caret.ReadBuild())
		return nil
	}

	path, explicit := *configPath, *configPath != ""
	if !explicit {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "caret", "config.yaml")
		}
	}
	fcfg, err := loadFileConfig(path, explicit)
	if err != nil {
		return err
	}
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			fcfg.Theme = *theme
		case "highlight":
			fcfg.Highlighter = *hl
		case "lang":
			fcfg.Language = *lang
		case "tab-width":
			fcfg.TabWidth = *tabWidth
		case "no-wrap":
			fcfg.NoWrap = *noWrap
		case "read-only":
			fcfg.ReadOnly = *readOnly
		case "log":
			fcfg.Log = *logPath
		}
	})
	if err := fcfg.validate(); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(fcfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	var text, docPath string
	if fset.NArg() > 0 {
		docPath = fset.Arg(0)
		text, err = fileio.ReadFile(docPath)
		if errors.Is(err, fs.ErrNotExist) {
			// Saving creates it.
			text, err = "", nil
		}
		if err != nil {
			return err
		}
	}

	dark := fcfg.Theme == "dark" || (fcfg.Theme != "light" && termenv.HasDarkBackground())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var p *tea.Program
	send := func(msg tea.Msg) func() { return func() { p.Send(msg) } }

	picker := &promptPicker{}
	bridge := fileio.NewBridge(picker, fileio.Options{Logger: logger, Redraw: send(termui.RedrawMsg{})})
	watcher, err := fileio.NewWatcher(fileio.Options{Logger: logger, Redraw: send(diskChangedMsg{})})
	if err != nil {
		logger.Warn("file watching disabled", "err", err)
		watcher = nil
	}
	cache := highlight.NewCache(highlight.Options{
		Layouter: layout.Cells(fcfg.TabWidth),
		Logger:   logger,
	})
	cwd, _ := os.Getwd()

	st := termui.DefaultStyle()
	ed := termui.New(termui.Config{
		Editor: editor.Config{
			Text:      text,
			Path:      docPath,
			ReadOnly:  fcfg.ReadOnly,
			Focused:   true,
			Cache:     cache,
			Bridge:    bridge,
			Cwd:       cwd,
			Clipboard: termui.NewOSC52Clipboard(termenv.NewOutput(os.Stdout)),
			Logger:    logger,
		},
		Style:   st,
		Context: ctx,
		NoWrap:  fcfg.NoWrap,
	})

	p = tea.NewProgram(
		newModel(ed, st, cache, watcher, fcfg, dark, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	picker.send = p.Send

	logger.Info("starting", "version", caret.Version(), "path", docPath)
	_, err = p.Run()

	cancel()
	bridge.Close()
	if watcher != nil {
		_ = watcher.Close()
	}
	return err
}

// openLogger returns a debug logger writing to path, or a discarding logger
// when path is empty.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
