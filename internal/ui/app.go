package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabvdev/tabv/internal/buffer"
	"github.com/tabvdev/tabv/internal/source"
	"github.com/tabvdev/tabv/internal/tabline"
	"github.com/tabvdev/tabv/internal/ui/components"
	"github.com/tabvdev/tabv/internal/ui/style"
)

// AppState represents the application state.
type AppState int

const (
	StateLoading AppState = iota
	StateViewing
	StateRenaming
	StateHelp
)

// LoadDoneMsg is sent when all files have been read.
type LoadDoneMsg struct {
	Buffers []*buffer.Buffer
	Err     error
}

type tickMsg time.Time

// App is the root Bubble Tea model.
type App struct {
	LocalPaths  []string
	RemotePaths []string
	RemoteCfg   source.Config
	Version     string

	state  AppState
	width  int
	height int

	// buffers and tabs run in parallel while any file is open. When the
	// last tab is closed, tabs holds a single synthetic entry whose label
	// tracks CurrentLabel live.
	buffers []*buffer.Buffer
	tabs    []*tabline.Tab
	current int
	offset  int

	tabCfg      tabline.Config
	showNumbers bool

	renameInput textinput.Model

	loadProgress   source.Progress
	progressMu     sync.Mutex
	latestProgress source.Progress
	loadCancel     context.CancelFunc
	loadCancelMu   sync.Mutex

	theme  style.Theme
	keys   KeyMap
	layout style.Layout

	statusMsg string
	statusErr bool
	fatalErr  error
}

// NewApp creates a new App model. Local paths are read directly; remote
// paths are fetched over SFTP from the target in remoteCfg.
func NewApp(version string, localPaths, remotePaths []string, remoteCfg source.Config, tabCfg tabline.Config) *App {
	return &App{
		LocalPaths:  localPaths,
		RemotePaths: remotePaths,
		RemoteCfg:   remoteCfg,
		Version:     version,
		state:       StateLoading,
		tabCfg:      tabCfg,
		theme:       style.DefaultTheme(),
		keys:        DefaultKeyMap(),
	}
}

// CurrentLabel reports the name of the focused buffer, or a placeholder
// when nothing is open. This is the live label behind the synthetic tab.
func (a *App) CurrentLabel() string {
	if b := a.currentBuffer(); b != nil {
		return b.Name
	}
	return "welcome"
}

func (a *App) setLoadCancel(cancel context.CancelFunc) {
	a.loadCancelMu.Lock()
	a.loadCancel = cancel
	a.loadCancelMu.Unlock()
}

func (a *App) callLoadCancel() {
	a.loadCancelMu.Lock()
	if a.loadCancel != nil {
		a.loadCancel()
	}
	a.loadCancelMu.Unlock()
}

func (a *App) Init() tea.Cmd {
	// Start the load AND the progress ticker simultaneously
	return tea.Batch(a.loadCmd(), a.tickCmd())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = style.NewLayout(msg.Width, msg.Height)
		a.recompute()
		a.clampOffset()
		return a, nil

	case LoadDoneMsg:
		if msg.Err != nil {
			a.fatalErr = msg.Err
			return a, tea.Quit
		}
		a.fatalErr = nil
		a.buffers = msg.Buffers
		a.tabs = make([]*tabline.Tab, len(a.buffers))
		for i, b := range a.buffers {
			a.tabs[i] = &tabline.Tab{Display: tabline.DisplayName{Visible: b.Name}}
		}
		a.current = 0
		a.offset = 0
		a.state = StateViewing
		a.recompute()
		return a, tea.ClearScreen

	case tickMsg:
		if a.state == StateLoading {
			// Read latest progress snapshot
			a.progressMu.Lock()
			a.loadProgress = a.latestProgress
			a.progressMu.Unlock()
			// Keep ticking while loading
			return a, a.tickCmd()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		a.callLoadCancel()
		return a, tea.Quit
	}

	switch a.state {
	case StateLoading:
		if key.Matches(msg, a.keys.Quit) {
			a.callLoadCancel()
			return a, tea.Quit
		}
		return a, nil

	case StateHelp:
		if key.Matches(msg, a.keys.Help) || msg.String() == "esc" {
			a.state = StateViewing
			return a, tea.ClearScreen
		}
		return a, nil

	case StateRenaming:
		return a.handleRenameKey(msg)

	case StateViewing:
		return a.handleViewingKey(msg)
	}

	return a, nil
}

func (a *App) handleViewingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.statusMsg = ""
	a.statusErr = false
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.state = StateHelp
		return a, tea.ClearScreen

	case key.Matches(msg, a.keys.NextTab):
		a.switchTab(a.current + 1)
	case key.Matches(msg, a.keys.PrevTab):
		a.switchTab(a.current - 1)
	case key.Matches(msg, a.keys.GoTab):
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			n := int(s[0] - '1')
			if n < len(a.buffers) {
				a.switchTab(n)
			}
		}

	case key.Matches(msg, a.keys.Rename):
		if len(a.buffers) == 0 {
			a.setStatus("nothing to rename", true)
			return a, nil
		}
		a.renameInput = components.NewRenameInput(tabline.TrueLabel(a.tabs[a.current], a), a.width)
		a.state = StateRenaming
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Close):
		a.closeTab()
		return a, tea.ClearScreen

	case key.Matches(msg, a.keys.SortTabs):
		a.sortTabs()

	case key.Matches(msg, a.keys.ScrollUp):
		a.scroll(-1)
	case key.Matches(msg, a.keys.ScrollDown):
		a.scroll(1)
	case key.Matches(msg, a.keys.PageUp):
		a.scroll(-a.layout.ContentHeight())
	case key.Matches(msg, a.keys.PageDown):
		a.scroll(a.layout.ContentHeight())
	case key.Matches(msg, a.keys.Top):
		a.offset = 0
	case key.Matches(msg, a.keys.Bottom):
		a.offset = a.maxOffset()

	case key.Matches(msg, a.keys.GrowMax):
		a.tabCfg.MaxWidth++
		a.recompute()
		a.setStatus(fmt.Sprintf("tab width: %d-%d", a.tabCfg.MinWidth, a.tabCfg.MaxWidth), false)
	case key.Matches(msg, a.keys.ShrinkMax):
		if a.tabCfg.MaxWidth > a.tabCfg.MinWidth {
			a.tabCfg.MaxWidth--
			a.recompute()
		}
		a.setStatus(fmt.Sprintf("tab width: %d-%d", a.tabCfg.MinWidth, a.tabCfg.MaxWidth), false)
	case key.Matches(msg, a.keys.GrowMin):
		if a.tabCfg.MinWidth < a.tabCfg.MaxWidth {
			a.tabCfg.MinWidth++
			a.recompute()
		}
		a.setStatus(fmt.Sprintf("tab width: %d-%d", a.tabCfg.MinWidth, a.tabCfg.MaxWidth), false)
	case key.Matches(msg, a.keys.ShrinkMin):
		if a.tabCfg.MinWidth > 1 {
			a.tabCfg.MinWidth--
			a.recompute()
		}
		a.setStatus(fmt.Sprintf("tab width: %d-%d", a.tabCfg.MinWidth, a.tabCfg.MaxWidth), false)

	case key.Matches(msg, a.keys.ToggleNumbers):
		a.showNumbers = !a.showNumbers
		a.clampOffset()
	}

	return a, nil
}

func (a *App) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.ConfirmRename):
		a.commitRename(a.renameInput.Value())
		a.state = StateViewing
		return a, tea.ClearScreen

	case key.Matches(msg, a.keys.CancelRename):
		a.state = StateViewing
		return a, tea.ClearScreen
	}

	var cmd tea.Cmd
	a.renameInput, cmd = a.renameInput.Update(msg)
	return a, cmd
}

// commitRename applies a new explicit name to the current tab. An empty
// name clears the rename and the tab reverts to its buffer-derived label.
func (a *App) commitRename(name string) {
	if a.current >= len(a.buffers) {
		return
	}
	tab := a.tabs[a.current]
	name = strings.TrimSpace(name)
	if name == "" {
		tab.ExplicitName = ""
		tab.Display = tabline.DisplayName{Visible: a.buffers[a.current].Name}
		a.setStatus("tab name reset", false)
	} else {
		tab.ExplicitName = name
		// A fresh rename has no marker yet; the raw name sits in the
		// displayed string until the next recomputation pads it.
		tab.Display = tabline.DisplayName{Visible: name}
		a.setStatus(fmt.Sprintf("renamed to %q", name), false)
	}
	a.recompute()
}

func (a *App) switchTab(n int) {
	if len(a.buffers) == 0 {
		return
	}
	if n < 0 {
		n = len(a.buffers) - 1
	}
	if n >= len(a.buffers) {
		n = 0
	}
	if n == a.current {
		return
	}
	a.current = n
	a.offset = 0
	a.recompute()
}

func (a *App) closeTab() {
	if len(a.buffers) == 0 {
		return
	}
	i := a.current
	name := a.buffers[i].Name
	a.buffers = append(a.buffers[:i], a.buffers[i+1:]...)
	a.tabs = append(a.tabs[:i], a.tabs[i+1:]...)
	if a.current >= len(a.buffers) {
		a.current = len(a.buffers) - 1
	}
	if a.current < 0 {
		a.current = 0
	}
	a.offset = 0
	a.recompute()
	a.setStatus(fmt.Sprintf("closed %s", name), false)
}

// sortTabs reorders buffers by name and carries each tab (with any explicit
// rename) along to its buffer's new position. Focus follows the buffer.
func (a *App) sortTabs() {
	if len(a.buffers) < 2 {
		return
	}
	byBuf := make(map[*buffer.Buffer]*tabline.Tab, len(a.buffers))
	for i, b := range a.buffers {
		byBuf[b] = a.tabs[i]
	}
	a.current = buffer.SortBuffers(a.buffers, a.current)
	for i, b := range a.buffers {
		a.tabs[i] = byBuf[b]
	}
	a.recompute()
	a.setStatus("tabs sorted by name", false)
}

// recompute redistributes the terminal width across all tabs. With nothing
// open the result is a single synthetic tab labelled after CurrentLabel.
func (a *App) recompute() {
	if a.width == 0 {
		return
	}
	a.tabs, _ = tabline.Recompute(a.tabs, a.current, a.width, a.tabCfg, a)
}

func (a *App) scroll(delta int) {
	a.offset += delta
	a.clampOffset()
}

func (a *App) clampOffset() {
	if a.offset > a.maxOffset() {
		a.offset = a.maxOffset()
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

func (a *App) maxOffset() int {
	v := &components.Viewer{Layout: a.layout, Buffer: a.currentBuffer()}
	return v.MaxOffset()
}

func (a *App) currentBuffer() *buffer.Buffer {
	if a.current >= 0 && a.current < len(a.buffers) {
		return a.buffers[a.current]
	}
	return nil
}

func (a *App) setStatus(msg string, isErr bool) {
	a.statusMsg = msg
	a.statusErr = isErr
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	switch a.state {
	case StateLoading:
		return components.RenderLoading(a.theme, a.loadProgress, a.width, a.height)

	case StateHelp:
		return components.RenderHelp(a.theme, a.width, a.height)

	case StateRenaming:
		return components.RenderRename(a.theme, a.renameInput, a.width, a.height)

	case StateViewing:
		return a.renderViewing()
	}

	return ""
}

func (a *App) renderViewing() string {
	tabLine := components.RenderTabLine(a.theme, a.tabs, a.displayCurrent(), a.width)

	viewer := &components.Viewer{
		Theme:           a.theme,
		Layout:          a.layout,
		Buffer:          a.currentBuffer(),
		Offset:          a.offset,
		ShowLineNumbers: a.showNumbers,
	}
	content := viewer.Render()

	statusBar := components.RenderStatusBar(a.theme, components.StatusInfo{
		Buffer:     a.currentBuffer(),
		TabCount:   len(a.buffers),
		Offset:     a.offset,
		ViewHeight: a.layout.ContentHeight(),
		Message:    a.statusMsg,
		IsError:    a.statusErr,
	}, a.width)

	return tabLine + "\n" + content + "\n" + statusBar
}

// displayCurrent is the focus index within a.tabs, which diverges from
// a.current only when the synthetic entry stands in for zero buffers.
func (a *App) displayCurrent() int {
	if len(a.buffers) == 0 {
		return 0
	}
	return a.current
}

// loadCmd reads every requested file in a background goroutine, local
// paths first, then remote ones over a single SFTP session. Progress is
// communicated via a.latestProgress (mutex-protected).
func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		a.setLoadCancel(cancel)

		bufs, err := source.LoadLocal(a.LocalPaths)
		if err != nil {
			return LoadDoneMsg{Err: err}
		}

		if len(a.RemotePaths) > 0 {
			progressCh := make(chan source.Progress, 10)

			// Relay progress updates to shared state (read by tickMsg handler)
			go func() {
				for p := range progressCh {
					a.progressMu.Lock()
					a.latestProgress = p
					a.progressMu.Unlock()
				}
			}()

			fetcher := source.NewSFTPFetcher(a.RemoteCfg)
			remote, err := fetcher.Fetch(ctx, a.RemotePaths, progressCh)
			close(progressCh)
			if err != nil {
				return LoadDoneMsg{Err: err}
			}
			bufs = append(bufs, remote...)
		}

		return LoadDoneMsg{Buffers: bufs}
	}
}

func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(60*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// FatalError returns a fatal load error, if any.
func (a *App) FatalError() error { return a.fatalErr }
