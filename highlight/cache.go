package highlight

import (
	"log/slog"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/iw2rmb/caret/layout"
)

type Options struct {
	// Highlighter styles text before layout. Defaults to Plain.
	Highlighter Highlighter
	// Layouter lays out styled text. Defaults to terminal cells with a tab
	// width of 4.
	Layouter layout.Layouter
	Logger   *slog.Logger
}

type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
}

type cacheKey struct {
	sum       uint64
	wrapWidth float32
}

type cacheEntry struct {
	text   string
	layout *layout.Layout
	frame  uint64
}

// Cache memoizes styled layouts by text content and wrap width. Entries not
// used since the last BeginFrame are dropped by EndFrame.
//
// Cache is owned by the redraw loop and is not safe for concurrent use.
type Cache struct {
	highlighter Highlighter
	layouter    layout.Layouter
	logger      *slog.Logger

	entries map[cacheKey][]*cacheEntry
	frame   uint64
	stats   Stats
}

func NewCache(opt Options) *Cache {
	c := &Cache{
		highlighter: opt.Highlighter,
		layouter:    opt.Layouter,
		logger:      opt.Logger,
		entries:     make(map[cacheKey][]*cacheEntry),
	}
	if c.highlighter == nil {
		c.highlighter = Plain{}
	}
	if c.layouter == nil {
		c.layouter = layout.Cells(0)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Fingerprint returns the cache fingerprint of text.
func Fingerprint(text string) uint64 {
	return xxhash.Sum64String(text)
}

// BeginFrame starts a redraw cycle.
func (c *Cache) BeginFrame() {
	c.frame++
}

// EndFrame ends the current redraw cycle and evicts every entry it did not
// use.
func (c *Cache) EndFrame() {
	for k, bucket := range c.entries {
		kept := bucket[:0]
		for _, e := range bucket {
			if e.frame == c.frame {
				kept = append(kept, e)
				continue
			}
			c.stats.Evictions++
		}
		if len(kept) == 0 {
			delete(c.entries, k)
			continue
		}
		c.entries[k] = kept
	}
}

// Layout returns the styled layout of text wrapped at wrapWidth, computing it
// only when no entry for the same text and width exists.
func (c *Cache) Layout(text string, wrapWidth float32) *layout.Layout {
	k := cacheKey{sum: Fingerprint(text), wrapWidth: wrapWidth}
	for _, e := range c.entries[k] {
		if e.text == text {
			e.frame = c.frame
			c.stats.Hits++
			return e.layout
		}
	}

	c.stats.Misses++
	l := c.layouter.Layout(layout.Job{
		Text:      text,
		Sections:  c.highlight(text),
		WrapWidth: wrapWidth,
	})
	c.entries[k] = append(c.entries[k], &cacheEntry{text: text, layout: l, frame: c.frame})
	return l
}

func (c *Cache) highlight(text string) []layout.Section {
	secs, err := c.highlighter.Highlight(text)
	if err != nil {
		c.logger.Warn("highlight failed; laying out unstyled text", "err", err, "bytes", len(text))
		return nil
	}
	return normalizeSections(secs, utf8.RuneCountInString(text))
}

// SetHighlighter replaces the highlighter and drops every cached layout.
func (c *Cache) SetHighlighter(h Highlighter) {
	if h == nil {
		h = Plain{}
	}
	c.highlighter = h
	c.Reset()
}

// Reset drops every cached layout.
func (c *Cache) Reset() {
	for k, bucket := range c.entries {
		c.stats.Evictions += uint64(len(bucket))
		delete(c.entries, k)
	}
}

func (c *Cache) Stats() Stats {
	s := c.stats
	for _, bucket := range c.entries {
		s.Entries += len(bucket)
	}
	return s
}
