package caret

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !VersionIsSemver() {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionTag_PrefixesV(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-alpha.1", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "01.2.3", want: false},
	}

	for _, tc := range cases {
		got := IsSemver(tc.version)
		if got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestBuild_String(t *testing.T) {
	cases := []struct {
		b    Build
		want string
	}{
		{Build{Version: "0.1.0"}, "caret 0.1.0"},
		{Build{Version: "0.1.0", GoVersion: "go1.25.7"}, "caret 0.1.0 (go1.25.7)"},
		{Build{Version: "0.1.0", Revision: "0123456789abcdef", Dirty: true, GoVersion: "go1.25.7"}, "caret 0.1.0 (0123456+dirty, go1.25.7)"},
		{Build{Version: "0.1.0", Revision: "abc"}, "caret 0.1.0 (abc)"},
	}
	for _, tc := range cases {
		if got := tc.b.String(); got != tc.want {
			t.Fatalf("String()=%q, want %q", got, tc.want)
		}
	}
}

func TestReadBuild_UsesEmbeddedVersion(t *testing.T) {
	if got, want := ReadBuild().Version, Version(); got != want {
		t.Fatalf("version=%q, want %q", got, want)
	}
}
