package editor

import "errors"

var (
	// ErrNoPath is reported when saving a document that was never opened
	// from or saved to a file.
	ErrNoPath = errors.New("editor: no file path to save to")
	// ErrNoFileBridge is reported when an open is requested without a
	// Config.Bridge.
	ErrNoFileBridge = errors.New("editor: no file bridge configured")
)
