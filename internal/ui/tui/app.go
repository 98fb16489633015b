package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenHasher
	screenManifests
	screenManifest
)

const (
	itemHasher    = "Live hasher"
	itemManifests = "Manifests"
	itemInit      = "Init workspace here"
	itemQuit      = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type algoItem struct {
	alg djb.Algorithm
}

func (a algoItem) Title() string       { return a.alg.String() }
func (a algoItem) Description() string { return a.alg.Describe() }
func (a algoItem) FilterValue() string { return a.alg.String() }

type manifestItem struct {
	ref domain.ManifestRef
}

func (i manifestItem) Title() string { return i.ref.Name }
func (i manifestItem) Description() string {
	return fmt.Sprintf("%s · %d entries · %s", i.ref.CreatedAt.Format("2006-01-02 15:04:05"), i.ref.Entries, i.ref.File)
}
func (i manifestItem) FilterValue() string { return i.ref.Name }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	workspaceFound bool
	workspaceRoot  string
	cwd            string

	// live hasher
	input     textinput.Model
	saltInput textinput.Model
	saltFocus bool
	algos     list.Model

	manifests list.Model
	preview   string

	toast string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newList(items []list.Item, title string) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	return l
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	menu := newList([]list.Item{
		menuItem{itemHasher, "Type text and watch every djb variant update"},
		menuItem{itemManifests, "Browse manifests saved with `djbhash sum --save`"},
		menuItem{itemInit, "Create djbhash.yaml, manifests/ and .djbhash/ in the current directory"},
		menuItem{itemQuit, "Exit djbhash"},
	}, "djbhash")
	menu.SetFilteringEnabled(true)

	var algoItems []list.Item
	for _, a := range djb.Algorithms() {
		algoItems = append(algoItems, algoItem{alg: a})
	}
	algos := newList(algoItems, "Algorithm")
	algos.SetFilteringEnabled(false)

	manifests := newList(nil, "Manifests")
	manifests.SetFilteringEnabled(true)

	in := textinput.New()
	in.Prompt = "text> "
	in.Placeholder = "type to hash"
	in.CharLimit = 4096

	salt := textinput.New()
	salt.Prompt = "salt> "
	salt.Placeholder = fmt.Sprint(defaultSalt(deps))
	salt.CharLimit = 24

	m := model{
		theme:     t,
		deps:      deps,
		scr:       screenHome,
		menu:      menu,
		input:     in,
		saltInput: salt,
		algos:     algos,
		manifests: manifests,
	}
	m.selectAlgorithm(deps.Defaults.Algorithm)

	wd, err := os.Getwd()
	if err == nil {
		m.cwd = wd
		if deps.WorkspaceLocator != nil {
			root, findErr := deps.WorkspaceLocator.FindRoot(wd)
			if findErr == nil {
				m.workspaceFound = true
				m.workspaceRoot = root
			}
		}
	}

	return m
}

func defaultSalt(deps Deps) uint64 {
	if deps.Defaults.Algorithm == "" && deps.Defaults.Salt == 0 {
		return djb.DefaultSalt
	}
	return deps.Defaults.Salt
}

func (m *model) selectAlgorithm(a djb.Algorithm) {
	for i, it := range m.algos.Items() {
		if ai, ok := it.(algoItem); ok && ai.alg == a {
			m.algos.Select(i)
			return
		}
	}
}

func (m model) selectedAlgorithm() djb.Algorithm {
	if ai, ok := m.algos.SelectedItem().(algoItem); ok {
		return ai.alg
	}
	return djb.AlgX33a
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.algos.SetSize(w/2, len(djb.Algorithms())*3+4)
		m.manifests.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.logError("tui.init_workspace", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized in " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case manifestsLoadedMsg:
		if msg.err != nil {
			m.logError("tui.manifests.load", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, manifestItem{ref: r})
		}
		if len(items) == 0 {
			m.toast = "No manifests yet (djbhash sum --save)"
		}
		return m, m.manifests.SetItems(items)

	case manifestPreviewMsg:
		if msg.err != nil {
			m.logError("tui.manifests.preview", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.preview = msg.preview
		m.scr = screenManifest
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.toast = ""

		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenHasher:
			return m.updateHasher(msg)
		case screenManifests:
			return m.updateManifests(msg)
		case screenManifest:
			switch msg.String() {
			case "esc", "b", "q":
				m.scr = screenManifests
				m.preview = ""
			}
			return m, nil
		}
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenHasher:
		var cmd tea.Cmd
		if m.saltFocus {
			m.saltInput, cmd = m.saltInput.Update(msg)
		} else {
			m.input, cmd = m.input.Update(msg)
		}
		return m, cmd
	case screenManifests:
		var cmd tea.Cmd
		m.manifests, cmd = m.manifests.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.menu.FilterState() == list.Filtering

	switch msg.String() {
	case "q":
		if !filtering {
			return m, tea.Quit
		}
	case "enter":
		if filtering {
			break
		}
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		switch it.title {
		case itemHasher:
			m.scr = screenHasher
			m.saltFocus = false
			m.saltInput.Blur()
			return m, m.input.Focus()
		case itemManifests:
			if !m.workspaceFound {
				m.toast = "Workspace not found (choose \"" + itemInit + "\")"
				return m, nil
			}
			m.scr = screenManifests
			return m, cmdLoadManifests(m.deps, m.workspaceRoot)
		case itemInit:
			if m.workspaceFound {
				m.toast = "Already inside workspace " + m.workspaceRoot
				return m, nil
			}
			return m, cmdInitWorkspaceHere(m.deps, m.cwd)
		case itemQuit:
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateHasher(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenHome
		m.input.Blur()
		m.saltInput.Blur()
		return m, nil
	case "tab", "shift+tab":
		m.saltFocus = !m.saltFocus
		if m.saltFocus {
			m.input.Blur()
			return m, m.saltInput.Focus()
		}
		m.saltInput.Blur()
		return m, m.input.Focus()
	case "up", "down":
		var cmd tea.Cmd
		m.algos, cmd = m.algos.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.saltFocus {
		m.saltInput, cmd = m.saltInput.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) updateManifests(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.manifests.FilterState() == list.Filtering

	switch msg.String() {
	case "esc", "q":
		if !filtering {
			m.scr = screenHome
			return m, nil
		}
	case "enter":
		if filtering {
			break
		}
		it, ok := m.manifests.SelectedItem().(manifestItem)
		if !ok {
			return m, nil
		}
		return m, cmdPreviewManifest(m.deps, m.workspaceRoot, it.ref.ID)
	}

	var cmd tea.Cmd
	m.manifests, cmd = m.manifests.Update(msg)
	return m, cmd
}

func (m model) logError(event string, err error) {
	if m.deps.Logger != nil {
		m.deps.Logger.Error(event, "error", err)
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("djbhash") + "\n" +
		m.theme.Subtitle.Render("Bernstein hashes: x33a, x33x and the PHP variants") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace (manifests unavailable)")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + toast)

	case screenHasher:
		return wrap.Render(header + "\n" + m.hasherView() + toast)

	case screenManifests:
		help := m.theme.Help.Render("enter show • / search • esc back")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.manifests.View()) + "\n" + help + toast)

	case screenManifest:
		help := m.theme.Help.Render("esc/b back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.preview) + "\n" + help + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) hasherView() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.saltInput.View())
	b.WriteString("\n\n")

	salt, err := parseSalt(m.saltInput.Value(), defaultSalt(m.deps))
	if err != nil {
		b.WriteString(m.theme.Error.Render(err.Error()))
	} else {
		b.WriteString(m.renderHashTable(hashAll(m.input.Value(), salt), m.selectedAlgorithm()))
		for _, w := range djb.CheckSalt(m.selectedAlgorithm(), salt) {
			b.WriteString("\n")
			b.WriteString(m.theme.Help.Render("note: " + w))
		}
	}

	help := m.theme.Help.Render("tab switch field • ↑/↓ select algorithm • esc back • ctrl+c quit")
	return m.theme.Card.Render(b.String()) + "\n" + help
}
