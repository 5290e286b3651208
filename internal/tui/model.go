package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"ifc2frag/internal/app"
	"ifc2frag/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseConverting
	PhaseDone
	PhaseError
)

const recentLimit = 5

// Messages for the TUI
type (
	DiscoveredMsg struct {
		Inputs []domain.InputFile
	}
	FileStartedMsg struct {
		Index int
		Total int
		File  domain.InputFile
	}
	FileDoneMsg struct {
		Index  int
		Total  int
		Result domain.ConversionResult
		Counts domain.Counts
	}
	BatchDoneMsg struct {
		Summary    domain.BatchSummary
		ReportPath string
	}
	ErrorMsg struct {
		Err error
	}
	tickMsg time.Time
)

// FromProgress translates a driver event into the matching TUI message.
func FromProgress(ev app.Progress) tea.Msg {
	switch ev.Kind {
	case app.ProgressDiscovered:
		return DiscoveredMsg{Inputs: ev.Inputs}
	case app.ProgressFileStarted:
		return FileStartedMsg{Index: ev.Index, Total: ev.Total, File: ev.File}
	default:
		return FileDoneMsg{Index: ev.Index, Total: ev.Total, Result: ev.Result, Counts: ev.Counts}
	}
}

// Config for the TUI
type Config struct {
	SourceDir string
	TargetDir string
	// Cancel stops the batch after the file currently being converted.
	Cancel func()
}

// Model is the main TUI model
type Model struct {
	config     Config
	Phase      Phase
	spinner    spinner.Model
	progress   progress.Model
	inputs     []domain.InputFile
	current    string
	done       int
	total      int
	counts     domain.Counts
	recent     []domain.ConversionResult
	Summary    domain.BatchSummary
	ReportPath string
	Err        error
	Quitting   bool
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseScanning,
		spinner:  s,
		progress: p,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = max(min(msg.Width-20, 60), 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.Phase == PhaseScanning || m.Phase == PhaseConverting {
				if m.config.Cancel != nil {
					m.config.Cancel()
				}
			}
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case DiscoveredMsg:
		m.inputs = msg.Inputs
		m.total = len(msg.Inputs)
		m.Phase = PhaseConverting
		return m, nil

	case FileStartedMsg:
		m.current = msg.File.Name
		m.total = msg.Total
		return m, nil

	case FileDoneMsg:
		m.done = msg.Index
		m.total = msg.Total
		m.counts = msg.Counts
		m.current = ""
		m.recent = append(m.recent, msg.Result)
		if len(m.recent) > recentLimit {
			m.recent = m.recent[len(m.recent)-recentLimit:]
		}
		return m, nil

	case BatchDoneMsg:
		m.Phase = PhaseDone
		m.Summary = msg.Summary
		m.ReportPath = msg.ReportPath
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseConverting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseConverting {
			var cmds []tea.Cmd
			if m.total > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.done)/float64(m.total)))
			}
			cmds = append(cmds, tickCmd())
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(fmt.Sprintf("%s Looking for IFC files...", m.spinner.View()))
	case PhaseConverting:
		b.WriteString(m.renderExecution())
	case PhaseDone:
		b.WriteString(m.renderRecent())
		b.WriteString("\n")
		b.WriteString(m.renderCompletion())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🏗  ifc2frag")
	subtitle := subtitleStyle.Render("IFC to fragments batch conversion")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dirStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.SourceDir))),
		dirStyle.Render(fmt.Sprintf("%s Target: %s", iconFolder, shortenPath(m.config.TargetDir))),
	)
}

func (m Model) renderExecution() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Converting"))
	b.WriteString("\n\n")

	if m.total == 0 {
		b.WriteString(detailStyle.Render("  No IFC files found"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(detailStyle.Render(fmt.Sprintf("  %d IFC file(s), %.2f MB queued", len(m.inputs), domain.BytesToMB(queuedBytes(m.inputs)))))
	b.WriteString("\n\n")

	percent := float64(m.done) / float64(m.total)
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))

	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.done, m.total)),
		percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))
	b.WriteString(fmt.Sprintf("  %s\n", m.renderCounts()))

	if m.current != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s %s\n",
			m.spinner.View(),
			iconArrow,
			fileNameStyle.Render(m.current),
		))
	}

	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderRecent())
	}

	return b.String()
}

func (m Model) renderCounts() string {
	return fmt.Sprintf("%s  %s  %s",
		successStyle.Render(fmt.Sprintf("%s %d", iconSuccess, m.counts.Successful)),
		errorStyle.Render(fmt.Sprintf("%s %d", iconError, m.counts.Failed)),
		skippedStyle.Render(fmt.Sprintf("%s %d", iconSkipped, m.counts.Skipped)),
	)
}

func (m Model) renderRecent() string {
	var b strings.Builder
	for _, line := range formatResultList(m.recent) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCompletion() string {
	var b strings.Builder
	s := m.Summary

	b.WriteString(sectionStyle.Render("Conversion Complete"))
	b.WriteString("\n\n")

	icon := successStyle.Render(iconSuccess)
	msg := successStyle.Render("Batch finished")
	if s.Failed > 0 {
		icon = warningStyle.Render(iconWarning)
		msg = warningStyle.Render(fmt.Sprintf("Batch finished with %d failure(s)", s.Failed))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n\n", icon, msg))

	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Converted:"), successStyle.Render(fmt.Sprintf("%s %d", iconSuccess, s.Successful))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Failed:"), errorStyle.Render(fmt.Sprintf("%s %d", iconError, s.Failed))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Skipped:"), skippedStyle.Render(fmt.Sprintf("%s %d", iconSkipped, s.Skipped))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Total time:"), statValueStyle.Render(fmt.Sprintf("%.2fs (%.2fs/file)", s.TotalTime, s.AverageTimePerFile))))

	if s.Successful > 0 {
		size := fmt.Sprintf("%.2f MB %s %.2f MB (%.1f%%)", s.TotalInputSizeMB, iconArrow, s.TotalOutputSizeMB, s.OverallCompressionRatio)
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Size:"), statValueStyle.Render(size)))
	}
	if m.ReportPath != "" {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Report:"), pathStyle.Render(shortenPath(m.ReportPath))))
	} else {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Report:"), warningStyle.Render("not saved, see the run log")))
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return errorBoxStyle.Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning, PhaseConverting:
		help = "Press q to stop after the current file"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// formatResultList renders one line per finished file
func formatResultList(results []domain.ConversionResult) []string {
	lines := make([]string, 0, len(results))
	for _, result := range results {
		lines = append(lines, formatResultItem(result))
	}
	return lines
}

func formatResultItem(result domain.ConversionResult) string {
	name := fileNameStyle.Render(result.FileName())
	switch r := result.(type) {
	case domain.Succeeded:
		detail := detailStyle.Render(fmt.Sprintf("%.1f%% in %.1fs", r.CompressionRatio, r.Elapsed.Seconds()))
		return fmt.Sprintf("%s %s  %s", successStyle.Render(iconSuccess), name, detail)
	case domain.Failed:
		return fmt.Sprintf("%s %s  %s", errorStyle.Render(iconError), name, detailStyle.Render(shortReason(r.Reason)))
	default:
		return fmt.Sprintf("%s %s  %s", skippedStyle.Render(iconSkipped), name, detailStyle.Render("already converted"))
	}
}

func shortReason(reason string) string {
	reason = strings.TrimSpace(reason)
	if i := strings.IndexByte(reason, '\n'); i >= 0 {
		reason = reason[:i]
	}
	if len(reason) > 60 {
		reason = reason[:57] + "..."
	}
	return reason
}

func queuedBytes(inputs []domain.InputFile) int64 {
	var total int64
	for _, in := range inputs {
		total += in.SizeBytes
	}
	return total
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
