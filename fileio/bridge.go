// Package fileio moves file contents between disk and the editor loop.
//
// Reads run on a background worker and come back through Bridge.Poll so the
// loop never blocks on a file chooser. Writes are synchronous.
package fileio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

var (
	// ErrCanceled reports that the user dismissed the file chooser.
	ErrCanceled = errors.New("fileio: open canceled")
	// ErrOpenPending is returned by RequestOpen while an earlier request has
	// not been polled yet.
	ErrOpenPending = errors.New("fileio: an open request is already pending")
)

// Picker asks the user for a file to open. It returns ErrCanceled (or an
// error wrapping it) when the user backs out. Pick may block for as long as
// the user takes; implementations should return when ctx is done.
type Picker interface {
	Pick(ctx context.Context, cwd string) (string, error)
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(ctx context.Context, cwd string) (string, error)

func (f PickerFunc) Pick(ctx context.Context, cwd string) (string, error) { return f(ctx, cwd) }

// FileMessage is the outcome of one open request. Exactly one of Text or Err
// is meaningful.
type FileMessage struct {
	Path string
	Text string
	Err  error
}

type Options struct {
	Logger *slog.Logger

	// Redraw is called from the worker once its message is ready to poll.
	Redraw func()
}

// Bridge runs open requests in the background and hands their results to
// the editor loop. At most one request is outstanding: its slot is released
// when the loop polls the result.
type Bridge struct {
	picker Picker
	logger *slog.Logger
	redraw func()

	msgs    chan FileMessage
	slot    *semaphore.Weighted
	pending atomic.Bool
	wg      sync.WaitGroup
}

func NewBridge(p Picker, opt Options) *Bridge {
	b := &Bridge{
		picker: p,
		logger: opt.Logger,
		redraw: opt.Redraw,
		msgs:   make(chan FileMessage, 1),
		slot:   semaphore.NewWeighted(1),
	}
	if b.logger == nil {
		b.logger = slog.New(slog.DiscardHandler)
	}
	return b
}

// RequestOpen starts a background pick-and-read. It returns ErrOpenPending
// if the previous request's message has not been polled yet.
func (b *Bridge) RequestOpen(ctx context.Context, cwd string) error {
	if !b.slot.TryAcquire(1) {
		return ErrOpenPending
	}
	b.pending.Store(true)
	b.wg.Add(1)
	go b.open(ctx, cwd)
	return nil
}

// Pending reports whether a request is in flight or its message is unpolled.
func (b *Bridge) Pending() bool {
	return b.pending.Load()
}

// Poll returns the finished request's message, if any. It never blocks.
func (b *Bridge) Poll() (FileMessage, bool) {
	select {
	case msg := <-b.msgs:
		b.pending.Store(false)
		b.slot.Release(1)
		return msg, true
	default:
		return FileMessage{}, false
	}
}

// Close waits for an in-flight worker to deliver its message. A picker that
// ignores its context can make Close block indefinitely.
func (b *Bridge) Close() {
	b.wg.Wait()
}

func (b *Bridge) open(ctx context.Context, cwd string) {
	defer b.wg.Done()

	msg := b.load(ctx, cwd)
	if msg.Err != nil {
		b.logger.Info("open failed", "path", msg.Path, "err", msg.Err)
	} else {
		b.logger.Debug("file opened", "path", msg.Path, "bytes", len(msg.Text))
	}

	// The slot guarantees the channel is empty.
	b.msgs <- msg
	if b.redraw != nil {
		b.redraw()
	}
}

func (b *Bridge) load(ctx context.Context, cwd string) FileMessage {
	if b.picker == nil {
		return FileMessage{Err: fmt.Errorf("fileio: no picker configured: %w", ErrCanceled)}
	}
	path, err := b.picker.Pick(ctx, cwd)
	switch {
	case err == nil && path == "":
		return FileMessage{Err: ErrCanceled}
	case errors.Is(err, ErrCanceled):
		return FileMessage{Err: err}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return FileMessage{Err: fmt.Errorf("%w: %w", ErrCanceled, err)}
	case err != nil:
		return FileMessage{Err: fmt.Errorf("fileio: pick: %w", err)}
	}

	text, err := ReadFile(path)
	if err != nil {
		return FileMessage{Path: path, Err: err}
	}
	return FileMessage{Path: path, Text: text}
}
