package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/intuition-engine/internal/handlers"
	"github.com/jwebster45206/intuition-engine/pkg/game"
)

// phase tracks which screen the player is on.
type phase int

const (
	phasePicking phase = iota
	phaseCollage
	phaseWorld
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config   *ConsoleConfig
	client   *http.Client
	session  *game.Session
	phase    phase
	cursor   int // highlighted option in the current pair
	collage  *handlers.CollageResponse
	world    *handlers.WorldResponse
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	err      error
	loading  bool
	copied   bool
}

type sessionMsg struct {
	session *game.Session
	err     error
}

type collageMsg struct {
	collage *handlers.CollageResponse
	err     error
}

type worldMsg struct {
	world *handlers.WorldResponse
	err   error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // green
			Bold(true)

	optionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)

	selectedOptionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("205")).
				Padding(1, 3).
				Bold(true)

	poemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("189")) // lavender

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, session *game.Session) ConsoleUI {
	vp := viewport.New(60, 24)
	vp.MouseWheelEnabled = true

	return ConsoleUI{
		config:   cfg,
		client:   client,
		session:  session,
		phase:    phasePicking,
		viewport: vp,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

func (m ConsoleUI) selectPhoto(photoID string) tea.Cmd {
	return func() tea.Msg {
		session, err := selectPhoto(m.client, m.config.APIBaseURL, m.session.ID, photoID)
		return sessionMsg{session: session, err: err}
	}
}

func (m ConsoleUI) loadCollage() tea.Cmd {
	return func() tea.Msg {
		collage, err := getCollage(m.client, m.config.APIBaseURL, m.session.ID)
		return collageMsg{collage: collage, err: err}
	}
}

func (m ConsoleUI) loadWorld() tea.Cmd {
	return func() tea.Msg {
		world, err := getWorld(m.client, m.config.APIBaseURL, m.session.ID)
		return worldMsg{world: world, err: err}
	}
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		m.ready = true
		if m.phase == phaseWorld && m.world != nil {
			m.viewport.SetContent(m.worldContent())
		}
		return m, nil

	case sessionMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.session = msg.session
		m.cursor = 0
		if m.session.Complete {
			m.phase = phaseCollage
			m.loading = true
			return m, m.loadCollage()
		}
		return m, nil

	case collageMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.collage = msg.collage
		return m, nil

	case worldMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.world = msg.world
		m.viewport.SetContent(m.worldContent())
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "left", "h":
			if m.phase == phasePicking && m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "right", "l":
			if m.phase == phasePicking && m.cursor < len(m.session.CurrentOptions)-1 {
				m.cursor++
			}
			return m, nil

		case "enter", " ":
			switch m.phase {
			case phasePicking:
				if m.loading || len(m.session.CurrentOptions) == 0 {
					return m, nil
				}
				m.loading = true
				return m, m.selectPhoto(m.session.CurrentOptions[m.cursor].PhotoID)
			case phaseCollage:
				m.phase = phaseWorld
				m.loading = true
				return m, m.loadWorld()
			}
			return m, nil

		case "c":
			if m.phase == phaseWorld && m.world != nil {
				if err := clipboard.WriteAll(strings.Join(m.world.GeneratedPoem, "\n")); err == nil {
					m.copied = true
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("INTUITION ENGINE") + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}

	switch m.phase {
	case phasePicking:
		m.writePickingView(&b)
	case phaseCollage:
		m.writeCollageView(&b)
	case phaseWorld:
		m.writeWorldView(&b)
	}

	return b.String()
}

func (m ConsoleUI) writePickingView(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("Step %d of %d\n\n",
		game.TotalSteps-m.session.StepsRemaining+1, game.TotalSteps))
	b.WriteString(promptStyle.Render(m.session.CurrentPrompt) + "\n\n")

	if m.loading {
		b.WriteString(loadingStyle.Render("Choosing...") + "\n")
		return
	}

	boxes := make([]string, 0, len(m.session.CurrentOptions))
	for i, option := range m.session.CurrentOptions {
		style := optionStyle
		if i == m.cursor {
			style = selectedOptionStyle
		}
		boxes = append(boxes, style.Render(option.PhotoID))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, boxes...) + "\n\n")
	b.WriteString(helpStyle.Render("←/→ choose the photo your intuition points to • enter to pick • q to quit"))
}

func (m ConsoleUI) writeCollageView(b *strings.Builder) {
	b.WriteString(promptStyle.Render("Your memory collage") + "\n\n")

	if m.loading || m.collage == nil {
		b.WriteString(loadingStyle.Render("Arranging photos...") + "\n")
		return
	}

	for _, item := range m.collage.Items {
		b.WriteString(fmt.Sprintf("  %-24s at (%4.0f, %4.0f)\n", item.PhotoID, item.X, item.Y))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter to step into the world • q to quit"))
}

func (m ConsoleUI) writeWorldView(b *strings.Builder) {
	if m.loading || m.world == nil {
		b.WriteString(loadingStyle.Render("Generating your world...") + "\n")
		return
	}

	b.WriteString(m.viewport.View() + "\n")
	help := "↑/↓ scroll • c to copy the poem • q to quit"
	if m.copied {
		help = "poem copied to clipboard • q to quit"
	}
	b.WriteString(helpStyle.Render(help))
}

func (m ConsoleUI) worldContent() string {
	width := m.viewport.Width - 2
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render("The world your intuition built") + "\n\n")
	b.WriteString(wordwrap.String(m.world.GenerationPrompt, width) + "\n\n")
	b.WriteString(fmt.Sprintf("Dominant color: #%02x%02x%02x\n\n",
		m.world.DominantColor.R, m.world.DominantColor.G, m.world.DominantColor.B))

	b.WriteString(titleStyle.Render("A poem from your choices") + "\n\n")
	for _, line := range m.world.GeneratedPoem {
		b.WriteString(poemStyle.Render(line) + "\n")
	}

	if len(m.world.SelectedPrompts) > 0 {
		b.WriteString("\n" + helpStyle.Render("Woven from: "+strings.Join(m.world.SelectedPrompts, " / ")) + "\n")
	}
	return b.String()
}
