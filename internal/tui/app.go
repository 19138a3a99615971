package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cintel/penguins/internal/chart"
	"github.com/cintel/penguins/internal/dashboard"
	"github.com/cintel/penguins/internal/dataset"
	"github.com/cintel/penguins/internal/logging"
	"github.com/cintel/penguins/internal/tui/components"
	"github.com/cintel/penguins/internal/tui/styles"
)

// Page selects which cards fill the main area.
type Page int

const (
	// PageTables shows the data table and data grid.
	PageTables Page = iota
	// PageCharts shows the two histograms and the scatterplot.
	PageCharts
)

// String returns the page name.
func (p Page) String() string {
	if p == PageCharts {
		return "Charts"
	}
	return "Tables"
}

const (
	// DefaultTitle is used when Options.Title is empty.
	DefaultTitle = "Penguins Dashboard"
	// DefaultRepoURL is the link shown under the sidebar controls.
	DefaultRepoURL = "https://github.com/cintel/penguins"

	sidebarWidth  = 40
	defaultWidth  = 140
	defaultHeight = 44
)

// Options configure the TUI.
type Options struct {
	Title   string
	RepoURL string
	// WatchPath, when set, is a config file whose edits are re-applied to
	// the running dashboard.
	WatchPath string
	Logger    *logging.Logger
}

// Model is the main Bubble Tea model. It is the dashboard's Renderer: the
// dashboard's effects push new values into the widgets.
type Model struct {
	dash *dashboard.Dashboard
	opts Options

	header      *components.Header
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay

	attribute   *components.Selectize
	plotlyBins  *components.NumberInput
	seabornBins *components.Slider
	species     *components.CheckGroup
	islands     *components.CheckGroup
	controls    []components.Control
	focus       int

	dataTable        *components.DataTable
	dataGrid         *components.DataTable
	plotlyHistogram  *components.HistogramView
	seabornHistogram *components.HistogramView
	scatter          *components.ScatterView

	page      Page
	width     int
	height    int
	quitting  bool
	lastFlush []string
}

// New builds the dashboard over data and renders it once.
func New(data *dataset.Dataset, sel dashboard.Selection, opts Options) (*Model, error) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.RepoURL == "" {
		opts.RepoURL = DefaultRepoURL
	}

	m := &Model{
		opts:        opts,
		header:      components.NewHeader(opts.Title),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(),

		attribute: components.NewSelectize(dashboard.ControlAttribute,
			"Choose Plotly attribute", dashboard.Attributes),
		plotlyBins: components.NewNumberInput(dashboard.ControlPlotlyBins,
			"Plotly Bin Count", sel.PlotlyBins, 1, dashboard.MaxPlotlyBins),
		seabornBins: components.NewSlider(dashboard.ControlSeabornBins,
			"Seaborn Bin Count", dashboard.MinSeabornBins, dashboard.MaxSeabornBins, sel.SeabornBins),
		species: components.NewCheckGroup(dashboard.ControlSpecies,
			"Species", dashboard.AllSpecies, sel.Species),
		islands: components.NewCheckGroup(dashboard.ControlIslands,
			"Islands", dashboard.AllIslands, sel.Islands),

		dataTable: components.NewDataTable("Penguin Data Table"),
		dataGrid:  components.NewDataTable("Penguin Data Grid"),
		plotlyHistogram: components.NewHistogramView("Species Plotly Histogram",
			"", "count", components.Stacked),
		seabornHistogram: components.NewHistogramView("Seaborn Histogram",
			"Species Seaborn Histogram", "Measurement", components.Dodged),
		scatter: components.NewScatterView("Species Plotly Scatterplot"),

		width:  defaultWidth,
		height: defaultHeight,
	}
	m.controls = []components.Control{m.attribute, m.plotlyBins, m.seabornBins, m.species, m.islands}

	d, err := dashboard.New(data, sel, m)
	if err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		d.SetLogger(opts.Logger)
	}
	m.dash = d

	m.syncControls(d.Selection())
	m.header.SetSource(data.Source())
	m.header.SetPage(m.page.String())
	m.controls[m.focus].Focus()
	m.updateStatus()
	m.layout()
	m.flush()

	return m, nil
}

// Dashboard returns the reactive dashboard behind the model.
func (m *Model) Dashboard() *dashboard.Dashboard {
	return m.dash
}

// Page returns the visible page.
func (m *Model) Page() Page {
	return m.page
}

// Focused returns the name of the focused control.
func (m *Model) Focused() string {
	return m.controls[m.focus].ID()
}

// LastFlush returns the outputs re-rendered by the most recent change.
func (m *Model) LastFlush() []string {
	return m.lastFlush
}

// RenderDataTable implements dashboard.Renderer.
func (m *Model) RenderDataTable(data *dataset.Dataset) {
	m.dataTable.SetData(data)
}

// RenderDataGrid implements dashboard.Renderer.
func (m *Model) RenderDataGrid(view *dataset.Dataset) {
	m.dataGrid.SetData(view)
	m.header.SetRows(m.dataTable.Len(), view.Len())
}

// RenderPlotlyHistogram implements dashboard.Renderer.
func (m *Model) RenderPlotlyHistogram(h *chart.Histogram, err error) {
	m.plotlyHistogram.SetHistogram(h, err)
	m.reportRenderError(err)
}

// RenderSeabornHistogram implements dashboard.Renderer.
func (m *Model) RenderSeabornHistogram(h *chart.Histogram, err error) {
	m.seabornHistogram.SetHistogram(h, err)
	m.reportRenderError(err)
}

// RenderScatter implements dashboard.Renderer.
func (m *Model) RenderScatter(s *chart.Scatter, err error) {
	m.scatter.SetScatter(s, err)
	m.reportRenderError(err)
}

func (m *Model) reportRenderError(err error) {
	if err != nil {
		m.statusBar.SetError(err.Error())
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.opts.Title)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The help overlay takes every key while open.
	if m.helpOverlay.IsVisible() {
		if key, ok := msg.(tea.KeyMsg); ok {
			if key.Type == tea.KeyCtrlC {
				m.quitting = true
				return m, tea.Quit
			}
			return m, m.helpOverlay.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case SelectionMsg:
		m.applySelection(msg)

	case ErrorMsg:
		m.statusBar.SetError(msg.Error())

	case components.HelpClosedMsg:
		// Nothing to restore.
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m, m.moveFocus(1)
	case "shift+tab":
		return m, m.moveFocus(-1)
	}

	ctrl := m.controls[m.focus]
	if c, ok := ctrl.(components.KeyCapturer); ok && c.Captures(msg) {
		return m, m.updateControl(ctrl, msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		focused := m.controls[m.focus]
		m.helpOverlay.SetFocused(focused.ID(), focused.Shortcuts())
		m.helpOverlay.Toggle()
		return m, nil
	case "1":
		m.setPage(PageTables)
		return m, nil
	case "2":
		m.setPage(PageCharts)
		return m, nil
	case "up":
		m.scrollSecond(-1)
		return m, nil
	case "down":
		m.scrollSecond(1)
		return m, nil
	case "k":
		m.scrollFirst(-1)
		return m, nil
	case "j":
		m.scrollFirst(1)
		return m, nil
	}

	return m, m.updateControl(ctrl, msg)
}

// updateControl lets the focused control handle msg and pushes the
// resulting values into the dashboard.
func (m *Model) updateControl(ctrl components.Control, msg tea.Msg) tea.Cmd {
	cmd := ctrl.Update(msg)
	m.commit()
	return cmd
}

// commit copies every control value into the dashboard and flushes.
// Inputs set to their current value do not invalidate anything.
func (m *Model) commit() {
	m.statusBar.SetError("")
	m.statusBar.SetMessage("")

	if err := m.dash.SetAttribute(m.attribute.Value()); err != nil {
		m.statusBar.SetError(err.Error())
	}
	if err := m.dash.SetPlotlyBins(m.plotlyBins.Value()); err != nil {
		m.statusBar.SetError(err.Error())
	}
	m.seabornBins.SetValue(m.dash.SetSeabornBins(m.seabornBins.Value()))
	m.dash.SetSpecies(m.species.Selected())
	m.dash.SetIslands(m.islands.Selected())

	if msg := m.plotlyBins.Err(); msg != "" {
		m.statusBar.SetError(msg)
	}
	m.flush()
}

func (m *Model) flush() {
	m.lastFlush = m.dash.Flush()
}

// applySelection sets every control from an outside selection.
func (m *Model) applySelection(msg SelectionMsg) {
	if err := m.dash.Apply(msg.Selection); err != nil {
		m.statusBar.SetError(err.Error())
		return
	}
	m.syncControls(m.dash.Selection())
	m.statusBar.SetError("")
	if msg.Source != "" {
		m.statusBar.SetMessage("reloaded " + msg.Source)
	}
	m.flush()
}

func (m *Model) syncControls(sel dashboard.Selection) {
	m.attribute.SetValue(sel.Attribute)
	m.plotlyBins.SetValue(sel.PlotlyBins)
	m.seabornBins.SetValue(sel.SeabornBins)
	m.species.SetSelected(sel.Species)
	m.islands.SetSelected(sel.Islands)
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.controls[m.focus].Blur()
	n := len(m.controls)
	m.focus = ((m.focus+delta)%n + n) % n
	cmd := m.controls[m.focus].Focus()
	m.updateStatus()
	return cmd
}

func (m *Model) updateStatus() {
	ctrl := m.controls[m.focus]
	m.statusBar.SetFocused(ctrl.ID())
	m.statusBar.SetShortcuts(ctrl.Shortcuts())
}

func (m *Model) setPage(p Page) {
	m.page = p
	m.header.SetPage(p.String())
}

// scrollFirst scrolls the data table or the plotly histogram.
func (m *Model) scrollFirst(delta int) {
	if m.page == PageTables {
		m.dataTable.Scroll(delta)
	} else {
		m.plotlyHistogram.Scroll(delta)
	}
}

// scrollSecond scrolls the data grid or the seaborn histogram.
func (m *Model) scrollSecond(delta int) {
	if m.page == PageTables {
		m.dataGrid.Scroll(delta)
	} else {
		m.seabornHistogram.Scroll(delta)
	}
}

// layout sizes every card to the terminal.
func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.helpOverlay.SetSize(min(m.width, 60), min(m.height, 24))
	m.seabornBins.SetWidth(sidebarWidth - 10)

	mainWidth := max(m.width-sidebarWidth, 40)
	mainHeight := max(m.height-2, 12)

	half := mainHeight / 2
	m.dataTable.SetSize(mainWidth, half)
	m.dataGrid.SetSize(mainWidth, mainHeight-half)

	m.plotlyHistogram.SetSize(mainWidth/2, half)
	m.seabornHistogram.SetSize(mainWidth-mainWidth/2, half)
	m.scatter.SetSize(mainWidth, mainHeight-half)
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var main string
	if m.page == PageTables {
		main = lipgloss.JoinVertical(lipgloss.Left,
			m.dataTable.View(),
			m.dataGrid.View(),
		)
	} else {
		main = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top,
				m.plotlyHistogram.View(),
				m.seabornHistogram.View(),
			),
			m.scatter.View(),
		)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), main)
	view := lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.statusBar.View())

	if m.helpOverlay.IsVisible() {
		return m.renderOverlay(m.helpOverlay.View())
	}
	return view
}

func (m *Model) sidebarView() string {
	var b strings.Builder
	b.WriteString(styles.SidebarTitleStyle.Render("Sidebar"))
	b.WriteString("\n\n")
	for _, c := range m.controls {
		b.WriteString(c.View())
		b.WriteString("\n\n")
	}
	b.WriteString(styles.RuleStyle.Render(strings.Repeat("─", sidebarWidth-4)))
	b.WriteString("\n")
	b.WriteString(styles.LinkStyle.Render(m.opts.RepoURL))

	return styles.SidebarStyle.Width(sidebarWidth - 2).Render(b.String())
}

// renderOverlay centers an overlay on the screen.
func (m *Model) renderOverlay(overlay string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}
