// Package caret holds module-wide metadata for the caret editing engine.
// The engine itself lives in the buffer, layout, highlight, editor and
// fileio packages; termui embeds it in Bubble Tea programs.
package caret

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag of the release (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version without a `v` prefix.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded release version is valid.
func VersionIsSemver() bool {
	return IsSemver(Version())
}

// Build describes the running binary.
type Build struct {
	Version   string
	GoVersion string
	Revision  string
	Dirty     bool
}

// ReadBuild combines the release version with the VCS stamp the Go
// toolchain embeds into binaries. Revision is empty when the binary was
// built outside a repository.
func ReadBuild() Build {
	b := Build{Version: Version()}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	b.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = s.Value
		case "vcs.modified":
			b.Dirty = s.Value == "true"
		}
	}
	return b
}

// String formats the build for a -version flag: "caret 0.1.0 (abc1234, go1.25)".
func (b Build) String() string {
	var meta []string
	if b.Revision != "" {
		rev := b.Revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if b.Dirty {
			rev += "+dirty"
		}
		meta = append(meta, rev)
	}
	if b.GoVersion != "" {
		meta = append(meta, b.GoVersion)
	}
	if len(meta) == 0 {
		return "caret " + b.Version
	}
	return fmt.Sprintf("caret %s (%s)", b.Version, strings.Join(meta, ", "))
}
