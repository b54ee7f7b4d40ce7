// Package tui is the interactive patient data form. It drives the input
// collector from the keyboard and shows the assessment for the current values.
package tui

import (
	"context"
	"fmt"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/Imm0bilize/heartleaves-core-service/internal/input"
	"github.com/Imm0bilize/heartleaves-core-service/internal/presenter"
	"github.com/Imm0bilize/heartleaves-core-service/internal/ucase"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"strings"
)

// AssessFunc obtains an assessment; the form calls it once per submit.
type AssessFunc func(ctx context.Context, request entities.PredictionRequest) (entities.Assessment, error)

type state int

const (
	stateIdle state = iota
	stateAwaiting
)

type assessedMsg struct {
	assessment entities.Assessment
	err        error
}

type Model struct {
	ctx       context.Context
	assess    AssessFunc
	collector *input.Collector
	fields    []input.Field
	inputs    []textinput.Model
	focus     int

	spinner    spinner.Model
	state      state
	assessment *entities.Assessment
	err        error
	inputErr   error
}

func NewModel(ctx context.Context, collector *input.Collector, assess AssessFunc) Model {
	fields := collector.Fields()

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 10
		ti.Width = 12
		ti.SetValue(f.Text())
		inputs[i] = ti
	}
	inputs[0].Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = presenter.InfoStyle

	return Model{
		ctx:       ctx,
		assess:    assess,
		collector: collector,
		fields:    fields,
		inputs:    inputs,
		spinner:   s,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case assessedMsg:
		m.state = stateIdle
		if msg.err != nil {
			m.err = msg.err
			m.assessment = nil
		} else {
			a := msg.assessment
			m.assessment = &a
			m.err = nil
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateAwaiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "shift+tab":
		m.commit(m.focus)
		m.inputs[m.focus].Blur()
		if msg.String() == "tab" {
			m.focus = (m.focus + 1) % len(m.inputs)
		} else {
			m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
		}
		return m, m.inputs[m.focus].Focus()

	case "up", "down":
		m.commit(m.focus)
		if msg.String() == "up" {
			m.fields[m.focus].Increment()
		} else {
			m.fields[m.focus].Decrement()
		}
		m.inputs[m.focus].SetValue(m.fields[m.focus].Text())
		return m, nil

	case "ctrl+r":
		m.collector.Reset()
		m.syncInputs()
		m.inputErr = nil
		return m, nil

	case "enter":
		if m.state == stateAwaiting {
			return m, nil
		}
		m.commit(m.focus)
		m.state = stateAwaiting
		return m, tea.Batch(m.spinner.Tick, m.request(m.collector.Request()))
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return m, cmd
}

// commit parses the text of input i into its field and rewrites the text with
// the clamped value. Unparsable text is reverted.
func (m *Model) commit(i int) {
	m.inputErr = m.fields[i].Parse(m.inputs[i].Value())
	m.inputs[i].SetValue(m.fields[i].Text())
}

func (m *Model) syncInputs() {
	for i, f := range m.fields {
		m.inputs[i].SetValue(f.Text())
	}
}

func (m Model) request(req entities.PredictionRequest) tea.Cmd {
	ctx, assess := m.ctx, m.assess

	return func() tea.Msg {
		a, err := assess(ctx, req)
		return assessedMsg{assessment: a, err: err}
	}
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(presenter.TitleStyle.Render("HeartLeaves AI: infarction risk predictor") + "\n")
	sb.WriteString(presenter.MutedStyle.Render("Clinical support tool based on machine learning") + "\n")

	sb.WriteString(presenter.HeaderStyle.Render("Patient data") + "\n")
	for i, f := range m.fields {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		sb.WriteString(fmt.Sprintf("%s%-24s %s %s\n",
			cursor, f.Label(), m.inputs[i].View(), presenter.MutedStyle.Render(f.Bounds()+"  "+f.Hint())))
	}

	if m.inputErr != nil {
		sb.WriteString(presenter.WarningStyle.Render(m.inputErr.Error()) + "\n")
	}

	switch {
	case m.state == stateAwaiting:
		sb.WriteString("\n" + m.spinner.View() + " Consulting model...\n")
	case m.err != nil:
		sb.WriteString("\n" + presenter.FailureText(m.err) + "\n")
	case m.assessment != nil:
		sb.WriteString(presenter.Text(*m.assessment) + "\n")
	}

	sb.WriteString("\n" + presenter.MutedStyle.Render(
		"tab/shift+tab: move  up/down: step  enter: calculate risk  ctrl+r: reset  esc: quit"))

	return sb.String()
}

// Run shows the form until the user quits.
func Run(ctx context.Context, uCase *ucase.UseCase) error {
	m := NewModel(ctx, input.NewCollector(), uCase.Assess)

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}
