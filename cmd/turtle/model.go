package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"turtle"
)

type frameMsg struct{ frame frame }

type scriptDoneMsg struct{ err error }

var statusStyle = lipgloss.NewStyle().Reverse(true)

// model shows the frames the script goroutine publishes and forwards input
// to the turtle event loop. It never touches turtles or the surface
// directly; everything it asks of them goes through the loop.
type model struct {
	width  int
	height int

	win  *turtle.Window
	loop *turtle.Loop
	grid *gridSurface

	frame          *frame
	done           bool
	errorMessage   string
	successMessage string
}

func newModel(win *turtle.Window, loop *turtle.Loop, grid *gridSurface) model {
	return model{win: win, loop: loop, grid: grid}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.SetCells(m.width, m.height-1)
		screen := m.win.Screen()
		m.loop.Post(func() {
			if err := screen.Update(); err != nil && !terminated(err) {
				turtle.Logger().Warn("redraw after resize failed", "err", err)
			}
		})
		return m, nil

	case frameMsg:
		m.frame = &msg.frame
		return m, nil

	case scriptDoneMsg:
		m.done = true
		if msg.err != nil && !terminated(msg.err) {
			m.errorMessage = msg.err.Error()
		}
		if !m.win.Running() {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		m.errorMessage, m.successMessage = "", ""
		switch msg.String() {
		case "ctrl+c", "esc":
			m.win.Close()
			return m, tea.Quit
		case "q":
			if m.done {
				m.win.Close()
				return m, tea.Quit
			}
		case "ctrl+y":
			if m.frame == nil {
				return m, nil
			}
			if err := copyFrame(*m.frame); err != nil {
				m.errorMessage = "Copy failed: " + err.Error()
			} else {
				m.successMessage = "Frame copied to clipboard"
			}
			return m, nil
		}
		m.loop.KeyRelease(keyName(msg))
		return m, nil

	case tea.MouseMsg:
		btn := mouseButton(msg)
		if btn == 0 || m.frame == nil || !m.frame.isValidPos(msg.X, msg.Y) {
			return m, nil
		}
		p := m.frame.surfacePoint(msg.X, msg.Y)
		m.loop.Click(btn, p.X, p.Y)
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var result strings.Builder
	if m.frame != nil {
		result.WriteString(m.frame.View())
	} else {
		result.WriteString("starting...")
	}
	result.WriteString("\n")

	var statusLine string
	switch {
	case m.errorMessage != "":
		statusLine = "Error: " + m.errorMessage
	case m.successMessage != "":
		statusLine = m.successMessage
	case m.done:
		statusLine = fmt.Sprintf("%s | done | q=quit, ctrl+y=copy frame", m.win.Title())
	default:
		statusLine = fmt.Sprintf("%s | running | esc=quit, ctrl+y=copy frame", m.win.Title())
	}
	if m.width > 0 && len(statusLine) < m.width {
		statusLine += strings.Repeat(" ", m.width-len(statusLine))
	}
	result.WriteString(statusStyle.Render(statusLine))
	return result.String()
}
