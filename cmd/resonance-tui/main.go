package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/discovery"
	"github.com/auralab/resonance/pkg/logging"
	"github.com/auralab/resonance/pkg/similarity"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginLeft(2).
			MarginTop(1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(1, 2).
			MarginLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true).
			MarginLeft(2)
)

type pane int

const (
	browsePane pane = iota
	similarPane
	journeyPane
)

type keyMap struct {
	Enter key.Binding
	Start key.Binding
	End   key.Binding
	Go    key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "similar tracks"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "journey start"),
	),
	End: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "journey end"),
	),
	Go: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "find journey"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Start, k.End, k.Go, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Start, k.End},
		{k.Go, k.Back, k.Quit},
	}
}

type trackItem struct {
	track  *catalog.Track
	degree int
}

func (i trackItem) Title() string { return i.track.DisplayName() }
func (i trackItem) Description() string {
	return fmt.Sprintf("%s · %d neighbors", i.track.ID, i.degree)
}
func (i trackItem) FilterValue() string { return i.track.DisplayName() + " " + i.track.ID }

type model struct {
	engine *discovery.Engine

	pane         pane
	trackList    list.Model
	similarTable table.Model
	help         help.Model
	keys         keyMap

	similarAnchor string
	journeyPath   []string
	message       string
	messageErr    bool
	width         int
	height        int
}

func initialModel(engine *discovery.Engine) model {
	items := make([]list.Item, 0, engine.Catalog().Len())
	for _, t := range engine.Catalog().Tracks() {
		items = append(items, trackItem{track: t, degree: engine.Graph().Degree(t.ID)})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Catalog"
	l.SetShowHelp(false)

	columns := []table.Column{
		{Title: "Track", Width: 40},
		{Title: "Score", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(12),
	)

	return model{
		engine:       engine,
		pane:         browsePane,
		trackList:    l,
		similarTable: t,
		help:         help.New(),
		keys:         keys,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) selectedTrackID() string {
	if item, ok := m.trackList.SelectedItem().(trackItem); ok {
		return item.track.ID
	}
	return ""
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trackList.SetSize(msg.Width-4, msg.Height-10)
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// While the list filter is active, every key belongs to it.
		if m.pane == browsePane && m.trackList.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.pane = browsePane
			m.message = ""
			m.messageErr = false

		case key.Matches(msg, m.keys.Enter):
			if m.pane == browsePane {
				m.showSimilar(m.selectedTrackID())
			}

		case key.Matches(msg, m.keys.Start):
			if id := m.selectedTrackID(); id != "" {
				m.engine.SetAwaitingStart()
				m.engine.OnTrackClicked(id)
				m.setMessage(fmt.Sprintf("journey start: %s", id), false)
			}

		case key.Matches(msg, m.keys.End):
			if id := m.selectedTrackID(); id != "" {
				m.engine.SetAwaitingEnd()
				m.engine.OnTrackClicked(id)
				m.setMessage(fmt.Sprintf("journey end: %s", id), false)
			}

		case key.Matches(msg, m.keys.Go):
			m.runJourney()
		}
	}

	switch m.pane {
	case browsePane:
		m.trackList, cmd = m.trackList.Update(msg)
	case similarPane:
		m.similarTable, cmd = m.similarTable.Update(msg)
	}
	return m, cmd
}

func (m *model) setMessage(msg string, isErr bool) {
	m.message = msg
	m.messageErr = isErr
}

func (m *model) showSimilar(id string) {
	if id == "" {
		return
	}

	relatives := similarity.Relatives(m.engine.Catalog(), id, 15)
	rows := make([]table.Row, 0, len(relatives))
	for _, rel := range relatives {
		rows = append(rows, table.Row{
			rel.Track.DisplayName(),
			fmt.Sprintf("%.3f", rel.Score),
		})
	}
	m.similarTable.SetRows(rows)
	m.similarAnchor = id
	m.pane = similarPane
}

func (m *model) runJourney() {
	state := m.engine.State()
	if !state.ReadyToFindPath() {
		m.setMessage("select a start (s) and end (e) track first", true)
		return
	}

	path := m.engine.FindSelectedPath()
	if path == nil {
		m.setMessage(fmt.Sprintf("no journey from %s to %s within bounds",
			state.StartTrack, state.EndTrack), true)
		return
	}
	m.journeyPath = path
	m.pane = journeyPane
	m.setMessage(fmt.Sprintf("journey found: %d hops", len(path)-1), false)
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Resonance — track discovery"))
	b.WriteString("\n")

	switch m.pane {
	case browsePane:
		b.WriteString(m.trackList.View())

	case similarPane:
		header := fmt.Sprintf("Tracks similar to %s", m.similarAnchor)
		b.WriteString(panelStyle.Render(header + "\n\n" + m.similarTable.View()))

	case journeyPane:
		var lines []string
		for i, id := range m.journeyPath {
			t := m.engine.Catalog().Get(id)
			name := id
			if t != nil {
				name = t.DisplayName()
			}
			lines = append(lines, fmt.Sprintf("%2d. %s", i+1, name))
		}
		b.WriteString(panelStyle.Render("Musical journey\n\n" + strings.Join(lines, "\n")))
	}

	b.WriteString("\n")
	if m.message != "" {
		if m.messageErr {
			b.WriteString(errorStyle.Render(m.message))
		} else {
			b.WriteString(statusStyle.Render(m.message))
		}
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func main() {
	galaxyPath := flag.String("galaxy", "", "Path to exported galaxy JSON")
	storePath := flag.String("store", "", "Path to catalog snapshot database")
	flag.Parse()

	cat, edges, err := loadCatalog(*galaxyPath, *storePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog load failed: %v\n", err)
		os.Exit(1)
	}

	engine := discovery.NewEngine(nil, nil, logging.NewNopLogger())
	engine.LoadGraph(cat, edges)

	p := tea.NewProgram(initialModel(engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}

func loadCatalog(galaxyPath, storePath string) (*catalog.Catalog, []catalog.Edge, error) {
	if galaxyPath != "" {
		return catalog.LoadGalaxyFile(galaxyPath)
	}
	if storePath != "" {
		store, err := catalog.OpenStore(storePath)
		if err != nil {
			return nil, nil, err
		}
		defer store.Close()
		return store.LoadSnapshot()
	}
	return nil, nil, fmt.Errorf("provide -galaxy or -store")
}
