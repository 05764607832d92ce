package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const helperEnvKey = "GO_WANT_TABV_HELPER_PROCESS"

type cliResult struct {
	stdout   string
	stderr   string
	exitCode int
}

func TestCLIHelperProcess(t *testing.T) {
	if os.Getenv(helperEnvKey) != "1" {
		return
	}

	sep := -1
	for i, arg := range os.Args {
		if arg == "--" {
			sep = i
			break
		}
	}
	if sep == -1 {
		fmt.Fprintln(os.Stderr, "missing -- argument separator for helper process")
		os.Exit(2)
	}

	os.Args = append([]string{os.Args[0]}, os.Args[sep+1:]...)
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	main()
	os.Exit(0)
}

func TestE2E_VersionFlag(t *testing.T) {
	result := runCLI(t, "--version")
	if result.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\nstderr:\n%s", result.exitCode, result.stderr)
	}
	if !strings.HasPrefix(result.stdout, "tabv ") {
		t.Fatalf("expected version string, got:\n%s", result.stdout)
	}
}

func TestE2E_MissingFileFailsFast(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	result := runCLI(t, missing)
	if result.exitCode == 0 {
		t.Fatalf("expected non-zero exit code\nstdout:\n%s", result.stdout)
	}
	if !strings.Contains(result.stderr, "no such file") {
		t.Fatalf("unexpected error message:\n%s", result.stderr)
	}
}

func TestE2E_RejectsInvalidSSHPort(t *testing.T) {
	result := runCLI(t, "--ssh-port", "0", "alice@host:x")
	if result.exitCode == 0 {
		t.Fatal("expected non-zero exit code")
	}
	if !strings.Contains(result.stderr, "ssh-port must be between") {
		t.Fatalf("unexpected error message:\n%s", result.stderr)
	}
}

func TestE2E_RejectsMixedRemoteDestinations(t *testing.T) {
	result := runCLI(t, "alice@one:x", "alice@two:y")
	if result.exitCode == 0 {
		t.Fatal("expected non-zero exit code")
	}
	if !strings.Contains(result.stderr, "one destination") {
		t.Fatalf("unexpected error message:\n%s", result.stderr)
	}
}

func TestE2E_RejectsBadTabWidths(t *testing.T) {
	result := runCLI(t, "--tab-min-width", "50", "--tab-max-width", "20")
	if result.exitCode == 0 {
		t.Fatal("expected non-zero exit code")
	}
	if !strings.Contains(result.stderr, "tab-min-width") {
		t.Fatalf("unexpected error message:\n%s", result.stderr)
	}
}

func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	cmdArgs := append([]string{"-test.run=^TestCLIHelperProcess$", "--"}, args...)
	cmd := exec.Command(os.Args[0], cmdArgs...)
	cmd.Env = append(os.Environ(), helperEnvKey+"=1")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := cliResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
	}

	if err == nil {
		return result
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("failed to execute helper process: %v", err)
	}

	result.exitCode = exitErr.ExitCode()
	return result
}
