package buildinfo

import "testing"

func TestShort(t *testing.T) {
	v, c := Version, Commit
	defer func() { Version, Commit = v, c }()

	tests := []struct {
		version, commit, want string
	}{
		{"v1.2.0", "abc", "v1.2.0"},
		{"dev", "abc", "abc"},
		{"dev", "unknown", "dev"},
		{"", "", "dev"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Fatalf("Short(%q,%q)=%q want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	v, c, d := Version, Commit, Date
	defer func() { Version, Commit, Date = v, c, d }()

	Version, Commit, Date = "v0.1.0", "deadbeef", "2024-01-02"
	want := "gpdemo v0.1.0 (commit deadbeef, built 2024-01-02)"
	if got := String("gpdemo"); got != want {
		t.Fatalf("String=%q", got)
	}
}
