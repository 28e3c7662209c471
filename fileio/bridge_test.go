package fileio

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func staticPicker(path string) Picker {
	return PickerFunc(func(context.Context, string) (string, error) { return path, nil })
}

func TestBridge_DeliversFileOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))

	var redraws atomic.Int32
	b := NewBridge(staticPicker(path), Options{Redraw: func() { redraws.Add(1) }})

	require.NoError(t, b.RequestOpen(context.Background(), "."))
	b.Close()

	msg, ok := b.Poll()
	require.True(t, ok)
	require.NoError(t, msg.Err)
	require.Equal(t, FileMessage{Path: path, Text: "hello\n"}, msg)
	require.Equal(t, int32(1), redraws.Load())

	_, ok = b.Poll()
	require.False(t, ok)
	require.False(t, b.Pending())
}

func TestBridge_PollWithoutRequest(t *testing.T) {
	b := NewBridge(staticPicker("x"), Options{})
	_, ok := b.Poll()
	require.False(t, ok)
}

func TestBridge_RejectsSecondRequestUntilPolled(t *testing.T) {
	release := make(chan struct{})
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	b := NewBridge(PickerFunc(func(ctx context.Context, cwd string) (string, error) {
		<-release
		return path, nil
	}), Options{})

	require.NoError(t, b.RequestOpen(context.Background(), "."))
	require.True(t, b.Pending())
	require.ErrorIs(t, b.RequestOpen(context.Background(), "."), ErrOpenPending)

	close(release)
	b.Close()

	// Finished but not yet polled: still pending.
	require.ErrorIs(t, b.RequestOpen(context.Background(), "."), ErrOpenPending)

	_, ok := b.Poll()
	require.True(t, ok)
	require.NoError(t, b.RequestOpen(context.Background(), "."))
	b.Close()
	_, ok = b.Poll()
	require.True(t, ok)
}

func TestBridge_CancellationIsReported(t *testing.T) {
	cases := []struct {
		name   string
		picker Picker
		ctx    func() context.Context
	}{
		{
			name: "picker-canceled",
			picker: PickerFunc(func(context.Context, string) (string, error) {
				return "", ErrCanceled
			}),
			ctx: context.Background,
		},
		{
			name:   "empty-path",
			picker: staticPicker(""),
			ctx:    context.Background,
		},
		{
			name: "context-canceled",
			picker: PickerFunc(func(ctx context.Context, _ string) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			}),
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBridge(tc.picker, Options{})
			require.NoError(t, b.RequestOpen(tc.ctx(), "."))
			b.Close()

			msg, ok := b.Poll()
			require.True(t, ok)
			require.ErrorIs(t, msg.Err, ErrCanceled)
		})
	}
}

func TestBridge_ReadFailureIsReported(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	b := NewBridge(staticPicker(missing), Options{})

	require.NoError(t, b.RequestOpen(context.Background(), "."))
	b.Close()

	msg, ok := b.Poll()
	require.True(t, ok)
	require.Equal(t, missing, msg.Path)
	require.ErrorIs(t, msg.Err, fs.ErrNotExist)
}

func TestBridge_PickerErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	b := NewBridge(PickerFunc(func(context.Context, string) (string, error) { return "", boom }), Options{})

	require.NoError(t, b.RequestOpen(context.Background(), "."))
	b.Close()

	msg, ok := b.Poll()
	require.True(t, ok)
	require.ErrorIs(t, msg.Err, boom)
	require.NotErrorIs(t, msg.Err, ErrCanceled)
}
