package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabvdev/tabv/internal/source"
	"github.com/tabvdev/tabv/internal/tabline"
	"github.com/tabvdev/tabv/internal/ui"
)

var (
	version = "dev"
)

const defaultSSHPort = 22

// fileTargets is the parsed positional argument list: local paths plus
// remote paths on a single SSH destination.
type fileTargets struct {
	Local          []string
	Remote         []string
	SSHDestination string
}

func main() {
	// Flags
	showVersion := flag.Bool("version", false, "Show version")
	tabMin := flag.Int("tab-min-width", 0, "Minimum tab width in columns (0 = default)")
	tabMax := flag.Int("tab-max-width", 0, "Maximum tab width in columns (0 = default)")
	tabFixed := flag.Int("tab-fixed-overhead", -1, "Columns reserved on the tab line before division (-1 = default)")
	tabPerTab := flag.Int("tab-per-tab-overhead", -1, "Columns reserved inside each tab (-1 = default)")
	sshPort := flag.Int("ssh-port", defaultSSHPort, "SSH port for remote files")
	sshBatch := flag.Bool("ssh-batch", false, "Disable SSH password prompts (key/agent auth only)")
	sshTimeout := flag.Int("ssh-timeout", 15, "SSH connection timeout in seconds (default 15)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tabv - Tabbed terminal file viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tabv [options] [file|user@host:path ...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tabv main.go util.go            Open two files in tabs\n")
		fmt.Fprintf(os.Stderr, "  tabv *.md                       One tab per markdown file\n")
		fmt.Fprintf(os.Stderr, "  tabv alice@10.0.0.2:/var/log/syslog\n")
		fmt.Fprintf(os.Stderr, "  tabv --ssh-port 2222 bob@host:notes.txt bob@host:todo.txt\n")
		fmt.Fprintf(os.Stderr, "  tabv --ssh-batch alice@host:x   Key-based/agent auth only (no password prompt)\n")
		fmt.Fprintf(os.Stderr, "  tabv --tab-max-width 20 *.go    Narrower tabs\n")
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("tabv %s\n", version)
		os.Exit(0)
	}

	if *sshPort < 1 || *sshPort > 65535 {
		fmt.Fprintf(os.Stderr, "Error: ssh-port must be between 1 and 65535\n")
		os.Exit(1)
	}
	if *sshTimeout < 1 {
		fmt.Fprintf(os.Stderr, "Error: ssh-timeout must be >= 1\n")
		os.Exit(1)
	}

	tabCfg, err := buildTabConfig(*tabMin, *tabMax, *tabFixed, *tabPerTab)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	targets, err := resolveTargets(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	remoteCfg := source.Config{
		Target:    targets.SSHDestination,
		Port:      *sshPort,
		BatchMode: *sshBatch,
		Timeout:   time.Duration(*sshTimeout) * time.Second,
	}

	app := ui.NewApp(version, targets.Local, targets.Remote, remoteCfg, tabCfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := app.FatalError(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildTabConfig overlays the CLI overrides on the defaults. The zero/-1
// sentinels mean "keep the default", so flag order never matters.
func buildTabConfig(min, max, fixed, perTab int) (tabline.Config, error) {
	cfg := tabline.DefaultConfig()
	if min > 0 {
		cfg.MinWidth = min
	}
	if max > 0 {
		cfg.MaxWidth = max
	}
	if fixed >= 0 {
		cfg.FixedOverhead = fixed
	}
	if perTab >= 0 {
		cfg.PerTabOverhead = perTab
	}

	if min < 0 {
		return cfg, fmt.Errorf("tab-min-width must be >= 1")
	}
	if cfg.MinWidth > cfg.MaxWidth {
		return cfg, fmt.Errorf("tab-min-width (%d) must not exceed tab-max-width (%d)", cfg.MinWidth, cfg.MaxWidth)
	}
	return cfg, nil
}

// resolveTargets classifies each positional argument as a local path or an
// scp-style user@host:path spec. All remote files must name the same
// destination; they share one SSH session.
func resolveTargets(args []string) (fileTargets, error) {
	var targets fileTargets

	for _, arg := range args {
		// An existing local file wins over remote-looking syntax.
		if pathExists(arg) {
			targets.Local = append(targets.Local, arg)
			continue
		}

		dest, remotePath, isRemote, err := splitRemoteSpec(arg)
		if err != nil {
			return fileTargets{}, err
		}
		if isRemote {
			if targets.SSHDestination != "" && targets.SSHDestination != dest {
				return fileTargets{}, fmt.Errorf("remote files must share one destination: got %q and %q", targets.SSHDestination, dest)
			}
			targets.SSHDestination = dest
			targets.Remote = append(targets.Remote, remotePath)
			continue
		}

		return fileTargets{}, fmt.Errorf("no such file: %s", arg)
	}

	return targets, nil
}

// splitRemoteSpec parses user@host:path. A string without both "@" and a
// ":" after the host is not a remote spec at all; a string that is clearly
// meant as one but malformed is an error.
func splitRemoteSpec(raw string) (dest, path string, isRemote bool, err error) {
	if strings.Count(raw, "@") != 1 {
		return "", "", false, nil
	}

	user, rest, _ := strings.Cut(raw, "@")
	if user == "" {
		return "", "", false, nil
	}
	if strings.HasPrefix(user, "-") || strings.ContainsAny(user, " \t\n\r") {
		return "", "", true, fmt.Errorf("invalid remote target %q", raw)
	}

	var host string
	if strings.HasPrefix(rest, "[") {
		// Bracketed IPv6: user@[::1]:/var/log/syslog
		end := strings.Index(rest, "]")
		if end <= 1 || end == len(rest)-1 || rest[end+1] != ':' {
			return "", "", true, fmt.Errorf("invalid remote target %q: malformed bracketed host", raw)
		}
		// Brackets are CLI syntax only; the dialer adds its own.
		host = rest[1:end]
		path = rest[end+2:]
	} else {
		var ok bool
		host, path, ok = strings.Cut(rest, ":")
		if !ok {
			return "", "", false, nil
		}
	}

	if host == "" || strings.HasPrefix(host, "-") || strings.ContainsAny(host, " \t\n\r") {
		return "", "", true, fmt.Errorf("invalid remote target %q", raw)
	}
	if path == "" {
		return "", "", true, fmt.Errorf("invalid remote target %q: missing remote path", raw)
	}

	return user + "@" + host, path, true, nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
