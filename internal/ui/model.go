package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"headersearch/internal/catalog"
	"headersearch/internal/config"
	"headersearch/internal/dropdown"
	"headersearch/internal/eventbus"
	"headersearch/internal/search"
	"headersearch/internal/ui/input"
	inputtypes "headersearch/internal/ui/input/types"
	"headersearch/internal/ui/views"
)

// Model is the terminal host for the header search: the search input with
// its dropdown on top and the current page below
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	store      *catalog.Store
	router     *search.Router
	controller *dropdown.Controller
	snap       dropdown.Snapshot

	width       int
	height      int
	help        help.Model
	viewport    viewport.Model
	currentPage string
	status      string
	statusError bool
	inPagerMode bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over store. bus may be nil.
func NewModel(cfg *config.Config, store *catalog.Store, router *search.Router, bus eventbus.EventBus) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if router == nil {
		router = search.NewDefaultRouter()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        store,
		router:       router,
		help:         help.New(),
		viewport:     viewport.New(80, 20),
		renderer:     views.NewRenderer(cfg.UISettings.ShowThumbnails),
		inputHandler: input.New(),
	}

	m.controller = dropdown.NewController(
		search.NewEngine(store, router, bus),
		dropdown.NavigatorFunc(m.navigate),
	)
	m.snap = m.controller.Snapshot()
	m.refreshPage()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m)
		if actions == nil && cmd == nil && m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

		cmds := []tea.Cmd{cmd}
		cmds = append(cmds, m.processActions(actions)...)
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleMouse(msg)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		if ev, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m, m.setStatus(ev.Message, true)
		}
		return m, nil

	case CatalogChangedMsg:
		log.Printf("Catalog file changed: %s", msg.Path)
		return m, m.reloadCatalog(msg.Path)

	case catalogReloadedMsg:
		if msg.err != nil {
			log.Printf("Catalog reload failed: %v", msg.err)
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: "catalog reload failed", Err: msg.err})
			}
			return m, m.setStatus(fmt.Sprintf("Error al recargar el catálogo: %v", msg.err), true)
		}
		m.setStore(msg.store)
		machines, products := msg.store.Len()
		if m.bus != nil {
			m.bus.Publish(eventbus.CatalogReloadedEvent{Path: msg.path, Machines: machines, Products: products})
		}
		return m, m.setStatus(fmt.Sprintf("Catálogo recargado: %d máquinas, %d productos", machines, products), false)

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed for %s: %v", msg.destination, msg.err)
			return m, m.setStatus(fmt.Sprintf("No se pudo abrir el visor: %v", msg.err), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil
	}

	return m, nil
}

// processActions runs input actions in order
func (m *Model) processActions(actions []inputtypes.Action) []tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.DropdownAction:
		return m.dispatch(a.Event)

	case inputtypes.UpdateTextAction:
		return m.dispatch(dropdown.QueryChanged{Text: a.Text})

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case inputtypes.ReloadCatalogAction:
		return m.reloadCatalog("")

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		log.Printf("Unhandled action: %s", action.Type())
		return nil
	}
}

// dispatch sends ev to the dropdown controller and applies its effects to
// the input and page
func (m *Model) dispatch(ev dropdown.Event) tea.Cmd {
	query := m.snap.Query
	m.snap = m.controller.Dispatch(ev)

	var cmds []tea.Cmd

	_, isCancel := ev.(dropdown.Cancel)

	switch {
	case m.snap.Committed != nil:
		res := *m.snap.Committed
		m.inputHandler.SetText("")
		actions, cmd := m.inputHandler.SetMode(inputtypes.ModeNormal, m)
		cmds = append(cmds, cmd)
		cmds = append(cmds, m.processActions(actions)...)
		if m.bus != nil {
			m.bus.Publish(eventbus.ResultCommittedEvent{Query: query, Result: res})
		}
		cmds = append(cmds, m.setStatus(fmt.Sprintf("%s › %s", res.Category.Label(), res.Title), false))
		if m.config.UISettings.OpenPagesInPager && m.program != nil {
			cmds = append(cmds, m.openPager())
		}

	case isCancel:
		m.inputHandler.SetText("")
		if m.snap.Blur {
			actions, cmd := m.inputHandler.SetMode(inputtypes.ModeNormal, m)
			cmds = append(cmds, cmd)
			cmds = append(cmds, m.processActions(actions)...)
		}
		if m.bus != nil {
			m.bus.Publish(eventbus.DropdownCancelledEvent{Query: query, Blurred: m.snap.Blur})
		}
	}

	return tea.Batch(cmds...)
}

// handleMouse maps a click on the input, a dropdown row or anywhere else to
// the matching dropdown event
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
		return nil
	}

	if msg.Y == views.InputLine {
		actions, cmd := m.inputHandler.SetMode(inputtypes.ModeSearch, m)
		return tea.Batch(append([]tea.Cmd{cmd}, m.processActions(actions)...)...)
	}

	if m.snap.IsOpen {
		line := msg.Y - views.DropdownTop
		if line >= 0 && line < views.DropdownHeight(m.snap.Results) {
			if idx := views.RowAt(m.snap.Results, line); idx >= 0 {
				return m.dispatch(dropdown.PointerSelect{Index: idx})
			}
			// Headings and the closing rule are part of the search area
			return nil
		}
	}

	cmd := m.dispatch(dropdown.OutsideInteraction{})
	actions, modeCmd := m.inputHandler.SetMode(inputtypes.ModeNormal, m)
	return tea.Batch(append([]tea.Cmd{cmd, modeCmd}, m.processActions(actions)...)...)
}

// navigate is the dropdown's navigation bridge
func (m *Model) navigate(destination string) {
	log.Printf("Navigating to %s", destination)
	m.currentPage = destination
	m.refreshPage()
	m.viewport.GotoTop()
}

func (m *Model) refreshPage() {
	m.viewport.SetContent(m.pageContent())
}

func (m *Model) pageContent() string {
	return m.renderer.Pages().Render(m.currentPage, m.router.Targets(), m.store)
}

// setStore rebuilds the engine and controller over a new catalog. Any open
// dropdown is dropped; a focused input stays focused.
func (m *Model) setStore(store *catalog.Store) {
	m.store = store
	m.controller = dropdown.NewController(
		search.NewEngine(store, m.router, m.bus),
		dropdown.NavigatorFunc(m.navigate),
	)
	m.inputHandler.SetText("")
	m.snap = m.controller.Snapshot()
	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		m.snap = m.controller.FocusGained()
	}
	m.refreshPage()
}

// reloadCatalog returns a command that reads the configured catalog files
func (m *Model) reloadCatalog(path string) tea.Cmd {
	machinesPath := m.config.Catalog.Machines
	productsPath := m.config.Catalog.Products
	return func() tea.Msg {
		store, err := catalog.Load(machinesPath, productsPath)
		return catalogReloadedMsg{path: path, store: store, err: err}
	}
}

// openPager returns a command that shows the current page using ov pager
func (m *Model) openPager() tea.Cmd {
	destination := m.currentPage
	content := m.pageContent()
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{destination: destination, err: fmt.Errorf("program not set")}
		}

		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{destination: destination, err: err}
	}
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.status = text
	m.statusError = isError
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	if m.config.UISettings.MaxWidth > 0 && width > m.config.UISettings.MaxWidth {
		width = m.config.UISettings.MaxWidth
	}
	m.viewport.Width = width
	m.viewport.Height = max(1, height-views.DropdownTop-views.FooterLines)
	m.inputHandler.TextInput().Width = max(10, width-12)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	width := m.width
	if m.config.UISettings.MaxWidth > 0 && width > m.config.UISettings.MaxWidth {
		width = m.config.UISettings.MaxWidth
	}

	status, isError := m.status, m.statusError
	if status == "" {
		status = m.searchStatus()
	}

	return m.renderer.Render(views.ViewState{
		Width:        width,
		Height:       m.height,
		Targets:      m.router.Targets(),
		CurrentPage:  m.currentPage,
		InputView:    m.inputHandler.TextInput().View(),
		InputFocused: m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		Results:      m.snap.Results,
		IsOpen:       m.snap.IsOpen,
		FocusedIndex: m.snap.FocusedIndex,
		Body:         m.viewport.View(),
		Status:       status,
		StatusError:  isError,
		HelpView:     m.help.View(m.inputHandler.Keys()),
	})
}

func (m *Model) searchStatus() string {
	switch {
	case m.snap.IsOpen && len(m.snap.Results) == 1:
		return "1 resultado"
	case m.snap.IsOpen:
		return fmt.Sprintf("%d resultados", len(m.snap.Results))
	case m.snap.Query != "" && len(m.snap.Results) == 0 && m.inputHandler.CurrentMode() == inputtypes.ModeSearch:
		return fmt.Sprintf("Sin resultados para %q", m.snap.Query)
	default:
		return ""
	}
}

// DropdownOpen reports whether the result list is showing
func (m *Model) DropdownOpen() bool {
	return m.snap.IsOpen
}

// Query returns the current search text
func (m *Model) Query() string {
	return m.snap.Query
}

// CurrentPage returns the destination currently displayed
func (m *Model) CurrentPage() string {
	return m.currentPage
}

// Snapshot returns the dropdown state, for tests and status output
func (m *Model) Snapshot() dropdown.Snapshot {
	return m.snap
}

// Store returns the catalog being searched
func (m *Model) Store() *catalog.Store {
	return m.store
}
