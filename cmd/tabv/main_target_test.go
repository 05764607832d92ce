package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("content\n"), 0o644); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}
	return path
}

func TestResolveTargets_Empty(t *testing.T) {
	targets, err := resolveTargets(nil)
	if err != nil {
		t.Fatalf("resolveTargets returned error: %v", err)
	}
	if len(targets.Local) != 0 || len(targets.Remote) != 0 {
		t.Fatalf("expected no targets, got %+v", targets)
	}
}

func TestResolveTargets_ExistingLocalPathWins(t *testing.T) {
	// A local file whose name looks like a remote spec stays local.
	path := writeFixture(t, "alice@server:notes")

	targets, err := resolveTargets([]string{path})
	if err != nil {
		t.Fatalf("resolveTargets returned error: %v", err)
	}
	if len(targets.Local) != 1 || targets.Local[0] != path {
		t.Fatalf("expected local target, got %+v", targets)
	}
	if targets.SSHDestination != "" {
		t.Fatalf("unexpected ssh destination: %q", targets.SSHDestination)
	}
}

func TestResolveTargets_MissingLocalFile(t *testing.T) {
	_, err := resolveTargets([]string{filepath.Join(t.TempDir(), "nope.txt")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "no such file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolveTargets_RemoteSpec(t *testing.T) {
	targets, err := resolveTargets([]string{"alice@10.0.0.5:/var/log/syslog"})
	if err != nil {
		t.Fatalf("resolveTargets returned error: %v", err)
	}
	if targets.SSHDestination != "alice@10.0.0.5" {
		t.Fatalf("unexpected ssh destination: %q", targets.SSHDestination)
	}
	if len(targets.Remote) != 1 || targets.Remote[0] != "/var/log/syslog" {
		t.Fatalf("unexpected remote paths: %v", targets.Remote)
	}
}

func TestResolveTargets_MixedLocalAndRemote(t *testing.T) {
	local := writeFixture(t, "a.txt")

	targets, err := resolveTargets([]string{local, "bob@host:notes.txt", "bob@host:todo.txt"})
	if err != nil {
		t.Fatalf("resolveTargets returned error: %v", err)
	}
	if len(targets.Local) != 1 || len(targets.Remote) != 2 {
		t.Fatalf("unexpected split: %+v", targets)
	}
	if targets.SSHDestination != "bob@host" {
		t.Fatalf("unexpected ssh destination: %q", targets.SSHDestination)
	}
}

func TestResolveTargets_RejectsMixedDestinations(t *testing.T) {
	_, err := resolveTargets([]string{"alice@one:x", "alice@two:y"})
	if err == nil {
		t.Fatal("expected error for two destinations")
	}
	if !strings.Contains(err.Error(), "one destination") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSplitRemoteSpec(t *testing.T) {
	tests := []struct {
		raw      string
		dest     string
		path     string
		isRemote bool
		wantErr  bool
	}{
		{raw: "alice@host:/etc/hosts", dest: "alice@host", path: "/etc/hosts", isRemote: true},
		{raw: "alice@host:notes.txt", dest: "alice@host", path: "notes.txt", isRemote: true},
		{raw: "alice@[::1]:/var/log/syslog", dest: "alice@::1", path: "/var/log/syslog", isRemote: true},
		{raw: "plain.txt", isRemote: false},
		{raw: "dir/with@at/file", isRemote: false},
		{raw: "alice@host", isRemote: false}, // no path separator
		{raw: "@host:x", isRemote: false},
		{raw: "alice@host:", isRemote: true, wantErr: true},
		{raw: "alice@:x", isRemote: true, wantErr: true},
		{raw: "alice@-host:x", isRemote: true, wantErr: true},
		{raw: "-alice@host:x", isRemote: true, wantErr: true},
		{raw: "alice@[::1]x", isRemote: true, wantErr: true},
		{raw: "alice@[::1]", isRemote: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			dest, path, isRemote, err := splitRemoteSpec(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitRemoteSpec(%q) returned error: %v", tt.raw, err)
			}
			if isRemote != tt.isRemote {
				t.Fatalf("isRemote = %v, want %v", isRemote, tt.isRemote)
			}
			if !tt.isRemote {
				return
			}
			if dest != tt.dest || path != tt.path {
				t.Errorf("got (%q, %q), want (%q, %q)", dest, path, tt.dest, tt.path)
			}
		})
	}
}

func TestBuildTabConfig_Defaults(t *testing.T) {
	cfg, err := buildTabConfig(0, 0, -1, -1)
	if err != nil {
		t.Fatalf("buildTabConfig returned error: %v", err)
	}
	if cfg.MinWidth != 10 || cfg.MaxWidth != 40 || cfg.FixedOverhead != 2 || cfg.PerTabOverhead != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestBuildTabConfig_Overrides(t *testing.T) {
	cfg, err := buildTabConfig(5, 20, 0, 2)
	if err != nil {
		t.Fatalf("buildTabConfig returned error: %v", err)
	}
	if cfg.MinWidth != 5 || cfg.MaxWidth != 20 || cfg.FixedOverhead != 0 || cfg.PerTabOverhead != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestBuildTabConfig_RejectsMinAboveMax(t *testing.T) {
	if _, err := buildTabConfig(30, 20, -1, -1); err == nil {
		t.Fatal("expected error for min > max")
	}
}
