package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Configuration constants
const (
	// StatusDisplayDuration is how long status messages are shown
	StatusDisplayDuration = 3 * time.Second

	// DefaultPanelHeight is the widget height before the first resize
	DefaultPanelHeight = 12

	// DefaultPanelWidth is the panel width before the first resize
	DefaultPanelWidth = 30

	// MinPanelWidth keeps panels readable on narrow terminals
	MinPanelWidth = 24

	// panelChrome is the vertical space taken by title, summary, status
	// and help lines around the panels
	panelChrome = 9
)

// focusArea identifies which widget receives navigation keys
type focusArea int

const (
	focusBrowser focusArea = iota
	focusPath
	focusRaw
	focusCidr
)

// Model represents the TUI state. It owns the single active dataset; the
// background load pipeline only ever hands data back through loadDoneMsg.
type Model struct {
	cfg Config

	picker    filepicker.Model
	pathInput textinput.Model
	rawTable  table.Model
	cidrTable table.Model
	focus     focusArea

	current   *LoadResult // last successful load, nil before the first
	processed []string    // quoted terraform entries, nil until processed
	loading   bool

	statusMessage string
	statusTime    time.Time
	statusError   bool

	width  int
	height int
}

// NewModel creates the initial TUI state for the given configuration
func NewModel(cfg Config) Model {
	fp := filepicker.New()
	fp.CurrentDirectory = cfg.InputDir
	fp.AllowedTypes = []string{".csv", ".tsv", ".txt", ".log"}
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.Height = DefaultPanelHeight

	ti := textinput.New()
	ti.Placeholder = "Or manual path..."
	ti.CharLimit = 512
	ti.Width = DefaultPanelWidth

	raw := table.New(
		table.WithColumns([]table.Column{{Title: "Valid IPv4", Width: DefaultPanelWidth}}),
		table.WithHeight(DefaultPanelHeight),
	)
	cidr := table.New(
		table.WithColumns([]table.Column{{Title: "Terraform CIDR /32", Width: DefaultPanelWidth}}),
		table.WithHeight(DefaultPanelHeight),
	)

	return Model{
		cfg:       cfg,
		picker:    fp,
		pathInput: ti,
		rawTable:  raw,
		cidrTable: cidr,
		focus:     focusBrowser,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), textinput.Blink)
}

// setStatus records a transient status message and schedules the re-render
// that hides it again
func (m *Model) setStatus(s string) tea.Cmd {
	m.statusMessage = s
	m.statusTime = time.Now()
	m.statusError = false
	return tea.Tick(StatusDisplayDuration, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// setErrorStatus is setStatus with error styling
func (m *Model) setErrorStatus(s string) tea.Cmd {
	cmd := m.setStatus(s)
	m.statusError = true
	return cmd
}

// setFocus moves keyboard focus to the given area
func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f

	m.pathInput.Blur()
	m.rawTable.Blur()
	m.cidrTable.Blur()

	switch f {
	case focusPath:
		return m.pathInput.Focus()
	case focusRaw:
		m.rawTable.Focus()
	case focusCidr:
		m.cidrTable.Focus()
	}
	return nil
}

// nextFocus cycles browser -> path -> raw -> cidr -> browser
func (m *Model) nextFocus() tea.Cmd {
	return m.setFocus((m.focus + 1) % 4)
}

// loadCmd runs the ingestion pipeline off the main loop and reports back
// with a single loadDoneMsg
func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		result, err := loadFile(path)
		return loadDoneMsg{result: result, err: err}
	}
}

// startLoad kicks off a background load for path
func (m Model) startLoad(path string) (tea.Model, tea.Cmd) {
	m.loading = true
	statusCmd := m.setStatus("Loading " + filepath.Base(path) + "...")
	log.Debug("load requested", "path", path)
	return m, tea.Batch(statusCmd, loadCmd(path))
}

// processAction maps the loaded addresses to their Terraform /32 form
func (m Model) processAction() (tea.Model, tea.Cmd) {
	if m.current == nil {
		return m, m.setErrorStatus("Load a file first")
	}

	m.processed = terraformEntries(m.current.IPs)
	rows := make([]table.Row, len(m.processed))
	for i, entry := range m.processed {
		rows[i] = table.Row{entry}
	}
	m.cidrTable.SetRows(rows)

	log.Info("generated cidr entries", "count", len(m.processed))
	return m, m.setStatus(fmt.Sprintf("Generated %d /32 CIDR", len(m.processed)))
}

// copyAction places the Terraform list literal on the clipboard
func (m Model) copyAction() (tea.Model, tea.Cmd) {
	if len(m.processed) == 0 {
		return m, m.setErrorStatus("Nothing processed - press p first")
	}

	ips := m.current.IPs
	return m, func() tea.Msg {
		err := copyTerraformList(ips)
		return clipboardDoneMsg{count: len(ips), err: err}
	}
}

// saveAction writes a JSON snapshot of the current dataset
func (m Model) saveAction() (tea.Model, tea.Cmd) {
	if len(m.processed) == 0 {
		return m, m.setErrorStatus("Nothing processed - press p first")
	}

	outputDir := m.cfg.OutputDir
	sourcePath := m.current.Path
	ips := m.current.IPs
	return m, func() tea.Msg {
		filename, err := saveSnapshot(outputDir, sourcePath, ips, time.Now())
		return snapshotDoneMsg{filename: filename, err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// The path input swallows rune keys, so it gets its own handling
		if m.focus == focusPath {
			switch msg.Type {
			case tea.KeyEnter:
				path := strings.TrimSpace(m.pathInput.Value())
				if path == "" {
					return m, m.setErrorStatus("Enter a path first")
				}
				return m.startLoad(path)
			case tea.KeyTab:
				return m, m.nextFocus()
			case tea.KeyEsc:
				return m, m.setFocus(focusBrowser)
			}
			var cmd tea.Cmd
			m.pathInput, cmd = m.pathInput.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.FocusNext):
			return m, m.nextFocus()

		case key.Matches(msg, keys.Process):
			return m.processAction()

		case key.Matches(msg, keys.Copy):
			return m.copyAction()

		case key.Matches(msg, keys.Save):
			return m.saveAction()

		case key.Matches(msg, keys.Refresh):
			statusCmd := m.setStatus("Browser refreshed")
			return m, tea.Batch(statusCmd, m.picker.Init())
		}

		// Navigation keys go to the focused widget
		switch m.focus {
		case focusBrowser:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			if ok, path := m.picker.DidSelectFile(msg); ok {
				model, load := m.startLoad(path)
				return model, tea.Batch(cmd, load)
			}
			if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
				statusCmd := m.setErrorStatus("Unsupported file type: " + filepath.Base(path))
				return m, tea.Batch(cmd, statusCmd)
			}
			return m, cmd
		case focusRaw:
			var cmd tea.Cmd
			m.rawTable, cmd = m.rawTable.Update(msg)
			return m, cmd
		case focusCidr:
			var cmd tea.Cmd
			m.cidrTable, cmd = m.cidrTable.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case loadDoneMsg:
		m.loading = false
		if msg.err != nil {
			// A failed load leaves the previous dataset untouched
			log.Warn("load failed", "error", msg.err)
			return m, m.setErrorStatus(statusForError(msg.err))
		}

		m.current = msg.result
		m.processed = nil
		m.cidrTable.SetRows(nil)

		rows := make([]table.Row, len(msg.result.IPs))
		for i, ip := range msg.result.IPs {
			rows[i] = table.Row{ip}
		}
		m.rawTable.SetRows(rows)
		m.pathInput.SetValue(msg.result.Path)

		log.Info("loaded file",
			"path", msg.result.Path,
			"count", len(msg.result.IPs),
			"delimiter", string(msg.result.Delimiter),
			"header", msg.result.HasHeader)
		return m, m.setStatus(fmt.Sprintf("Loaded %d valid IPv4", len(msg.result.IPs)))

	case clipboardDoneMsg:
		if msg.err != nil {
			log.Warn("clipboard export failed", "error", msg.err)
			return m, m.setErrorStatus(fmt.Sprintf("Copy error: %v", msg.err))
		}
		log.Info("copied terraform list", "count", msg.count)
		return m, m.setStatus(fmt.Sprintf("Copied %d CIDR to clipboard!", msg.count))

	case snapshotDoneMsg:
		if msg.err != nil {
			log.Warn("snapshot export failed", "error", msg.err)
			return m, m.setErrorStatus(statusForError(msg.err))
		}
		log.Info("saved snapshot", "file", msg.filename)
		return m, m.setStatus("Saved: " + filepath.Join(m.cfg.OutputDir, msg.filename))

	case statusTickMsg:
		// Re-render so an expired status line disappears
		return m, nil
	}

	// Remaining messages are the file picker's internal ones (directory
	// listings and such)
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// layout recomputes widget sizes from the terminal dimensions: browser 40%,
// each table 30%, like the original three-panel split
func (m *Model) layout() {
	if m.width <= 0 {
		return
	}

	browserW := max(MinPanelWidth, m.width*4/10-4)
	tableW := max(MinPanelWidth, m.width*3/10-4)

	panelH := max(6, m.height-panelChrome)

	m.picker.Height = panelH - 4
	m.pathInput.Width = browserW - 4

	m.rawTable.SetColumns([]table.Column{{Title: "Valid IPv4", Width: tableW - 2}})
	m.rawTable.SetHeight(panelH - 1)
	m.cidrTable.SetColumns([]table.Column{{Title: "Terraform CIDR /32", Width: tableW - 2}})
	m.cidrTable.SetHeight(panelH - 1)
}

// panel renders one bordered panel, highlighting it when focused
func (m Model) panel(content string, width int, focused bool) string {
	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	return style.Width(width).Render(content)
}

// View renders the UI
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("tfipnorm — Terraform IPv4 Normalizer"))
	sb.WriteByte('\n')

	// Summary line
	rawCount := 0
	fileName := "-"
	if m.current != nil {
		rawCount = len(m.current.IPs)
		fileName = filepath.Base(m.current.Path)
	}
	summary := fmt.Sprintf("%s %s   %s %s   %s %s",
		summaryLabelStyle.Render("Raw IPs:"),
		summaryStyle.Render(fmt.Sprintf("[%d]", rawCount)),
		summaryLabelStyle.Render("Processed:"),
		summaryStyle.Render(fmt.Sprintf("[%d]", len(m.processed))),
		summaryLabelStyle.Render("File:"),
		summaryStyle.Render(truncateLeft(fileName, 40)),
	)
	sb.WriteString(summary)
	sb.WriteByte('\n')

	browserW := max(MinPanelWidth, m.width*4/10-4)
	tableW := max(MinPanelWidth, m.width*3/10-4)

	browser := panelTitleStyle.Render("Input Browser ("+m.cfg.InputDir+"/)") + "\n" +
		m.picker.View() + "\n" +
		m.pathInput.View() + "\n" +
		hintStyle.Render("CSV/TSV/TXT/LOG auto-detect")

	rawPanel := panelTitleStyle.Render("Raw IPv4 (Valid)") + "\n" + m.rawTable.View()
	cidrPanel := panelTitleStyle.Render("Terraform /32 Ready") + "\n" + m.cidrTable.View()

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.panel(browser, browserW, m.focus == focusBrowser),
		m.panel(rawPanel, tableW, m.focus == focusRaw),
		m.panel(cidrPanel, tableW, m.focus == focusCidr),
	))

	// Status message (shown for the configured duration)
	if m.loading {
		sb.WriteByte('\n')
		sb.WriteString(statusStyle.Render("Loading..."))
	} else if m.statusMessage != "" && time.Since(m.statusTime) < StatusDisplayDuration {
		sb.WriteByte('\n')
		if m.statusError {
			sb.WriteString(errorStatusStyle.Render(m.statusMessage))
		} else {
			sb.WriteString(statusStyle.Render(m.statusMessage))
		}
	}

	help := "tab focus • enter load • p process • c copy tf • s save json • o refresh • q quit"
	sb.WriteByte('\n')
	sb.WriteString(helpStyle.Render(help))

	return sb.String()
}
