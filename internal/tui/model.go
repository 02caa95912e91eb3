// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/service"
	"github.com/MKhiriev/go-remote-config/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tab int

const (
	tabShowcase tab = iota
	tabValues
)

// statusTTL is how long a transient status line stays visible.
const statusTTL = 3 * time.Second

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type showcaseModel struct {
	remote    service.RemoteConfigService
	refresher service.Refresher
	buildInfo models.AppBuildInfo

	spinner       spinner.Model
	tab           tab
	showBuildInfo bool
	status        string
	errMsg        string
	width         int
}

func newShowcaseModel(remote service.RemoteConfigService, refresher service.Refresher, buildInfo models.AppBuildInfo) showcaseModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return showcaseModel{
		remote:    remote,
		refresher: refresher,
		buildInfo: buildInfo,
		spinner:   s,
	}
}

func (m showcaseModel) Init() tea.Cmd {
	cmds := []tea.Cmd{listenResults(m.refresher.Results())}
	// a refresh may already run when the UI starts
	if m.refresher.Busy() {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m showcaseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case refreshResultMsg:
		m.applyResult(msg.result)
		return m, tea.Batch(listenResults(m.refresher.Results()), cmdClearStatus())

	case resultsClosedMsg:
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Copied %d values", msg.count)
		return m, cmdClearStatus()

	case clearStatusMsg:
		if !m.refresher.Busy() {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.refresher.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m showcaseModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.refresh):
		if !m.refresher.Trigger() {
			m.status = "Refresh already in progress"
			return m, nil
		}
		m.status = "Fetching remote config..."
		m.errMsg = ""
		return m, m.spinner.Tick

	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(valueLines(m.remote.Snapshot()))

	case key.Matches(msg, keys.values):
		if m.tab == tabValues {
			m.tab = tabShowcase
		} else {
			m.tab = tabValues
		}

	case key.Matches(msg, keys.esc):
		m.tab = tabShowcase

	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m *showcaseModel) applyResult(res service.RefreshResult) {
	prefix := ""
	if res.Background {
		prefix = "Background refresh: "
	}

	switch {
	case res.Err != nil:
		m.status = ""
		m.errMsg = prefix + humanizeFetchError(res.Err)
	case res.Changed:
		m.errMsg = ""
		m.status = prefix + "new configuration activated"
	default:
		m.errMsg = ""
		m.status = prefix + "configuration is up to date"
	}
}

func (m showcaseModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.tab {
	case tabValues:
		body = renderValues(m.remote.Snapshot(), m.width)
	default:
		body = renderShowcase(m.remote, m.width)
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		m.statusLine(),
		helpLine(),
	))
}

// statusLine shows the spinner while busy, otherwise the fetch state.
func (m showcaseModel) statusLine() string {
	var b strings.Builder

	if m.refresher.Busy() {
		b.WriteString(m.spinner.View())
		b.WriteString(" Refreshing...")
	} else {
		b.WriteString(renderFetchInfo(m.remote.Info()))
	}

	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return b.String()
}

func renderFetchInfo(info models.FetchInfo) string {
	if info.Status == models.FetchNeverFetched {
		return labelStyle.Render("Showing bundled defaults")
	}

	s := fmt.Sprintf("Last fetch: %s", info.Status)
	if !info.LastFetchTime.IsZero() {
		s += " at " + info.LastFetchTime.Format(time.TimeOnly)
	}
	if info.LastErrorKind != "" {
		s += fmt.Sprintf(" (%s)", info.LastErrorKind)
	}
	s += fmt.Sprintf(" · generation %d", info.Generation)
	if info.TemplateVersion > 0 {
		s += fmt.Sprintf(" · template v%d", info.TemplateVersion)
	}
	return labelStyle.Render(s)
}

// listenResults waits for the next refresh completion.
func listenResults(results <-chan service.RefreshResult) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return resultsClosedMsg{}
		}
		return refreshResultMsg{result: res}
	}
}

func cmdCopyToClipboard(lines []string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(strings.Join(lines, "\n")); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{count: len(lines)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
