package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResolvePath(t *testing.T) {
	cases := []struct {
		cwd, input, want string
	}{
		{"/work", "", ""},
		{"/work", "  ", ""},
		{"/work", "a.txt", filepath.Join("/work", "a.txt")},
		{"/work", "/etc/hosts", "/etc/hosts"},
		{"/work", "../b.txt", "/b.txt"},
		{"", "a.txt", "a.txt"},
	}
	for _, tc := range cases {
		if got := resolvePath(tc.cwd, tc.input); got != tc.want {
			t.Fatalf("resolvePath(%q, %q)=%q, want %q", tc.cwd, tc.input, got, tc.want)
		}
	}
}

func TestPromptPicker_AnswersThroughReply(t *testing.T) {
	p := &promptPicker{send: func(msg tea.Msg) {
		req := msg.(promptRequest)
		req.reply <- filepath.Join(req.cwd, "x.txt")
	}}

	got, err := p.Pick(context.Background(), "/work")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if want := filepath.Join("/work", "x.txt"); got != want {
		t.Fatalf("path=%q, want %q", got, want)
	}
}

func TestPromptPicker_HonoursContext(t *testing.T) {
	p := &promptPicker{send: func(tea.Msg) {}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Pick(ctx, "/work"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}
