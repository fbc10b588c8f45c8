// Package tui implements the interactive bit-layout viewer. The input field
// re-invokes fpview.BuildView on every keystroke; BuildView is referentially
// transparent, so rebuilding the whole panel per key is safe and cheap.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/kumab2221/ieee754-viewer/cmd/fpview/ui"
	"github.com/kumab2221/ieee754-viewer/fpview"
)

// Model holds the input field, the selected precision and the most recently
// assembled view. All other state lives in the pure core.
type Model struct {
	input     textinput.Model
	styles    ui.Styles
	precision fpview.Precision
	result    fpview.Result
	logger    *zap.Logger
	width     int
}

func New(prec fpview.Precision, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "type a floating-point literal"
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		input:     ti,
		styles:    ui.DefaultStyles(),
		precision: prec,
		logger:    logger,
	}
	m.result = fpview.BuildView("", m.precision)
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			if m.precision == fpview.Float32 {
				m.precision = fpview.Float64
			} else {
				m.precision = fpview.Float32
			}
			m.result = fpview.BuildView(m.input.Value(), m.precision)
			m.logger.Debug("precision toggled", zap.String("precision", string(m.precision)))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.result = fpview.BuildView(m.input.Value(), m.precision)
	return m, cmd
}

func (m Model) View() string {
	header := m.styles.Title.Render("IEEE 754 viewer") +
		m.styles.Pending.Render("  "+string(m.precision))
	help := m.styles.Pending.Render("tab: toggle width · esc: quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.input.View(),
		"",
		ui.RenderResult(m.styles, m.result),
		"",
		help,
	)
}

// Result returns the currently assembled view.
func (m Model) Result() fpview.Result { return m.result }

// Precision returns the currently selected encoding width.
func (m Model) Precision() fpview.Precision { return m.precision }
