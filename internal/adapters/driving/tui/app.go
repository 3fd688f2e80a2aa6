package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/render"
)

// App is the collection explorer following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *Styles

	// keymap holds the keybindings.
	keymap *KeyMap

	// input captures the free-text query.
	input textinput.Model

	// collections holds the tab bar entries in canonical order.
	collections []domain.CollectionInfo

	// active indexes the collection searches run against.
	active int

	// results holds the current search results.
	results []domain.SearchResult

	// selected is the currently selected result.
	selected int

	// rec is the recommendation overlay; nil means hidden.
	rec *domain.DesignRecommendation

	// focusInput is true while typing, false while navigating results.
	focusInput bool

	// status is the message shown in the status line.
	status string

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the explorer with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "Describe the landing page..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	// Seed the tab bar from the canonical collection list; document
	// counts arrive once loading completes.
	seed := make([]domain.CollectionInfo, 0, len(domain.Collections()))
	for _, c := range domain.Collections() {
		seed = append(seed, domain.CollectionInfo{Name: c, Description: c.Description()})
	}

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      DefaultStyles(),
		keymap:      DefaultKeyMap(),
		input:       ti,
		collections: seed,
		focusInput:  true,
		status:      "Ready",
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("atelier - Design Explorer"),
		textinput.Blink,
	}
	if a.ports.Collections != nil {
		cmds = append(cmds, a.loadCollections())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case CollectionsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		if len(msg.Collections) > 0 {
			a.collections = msg.Collections
			if a.active >= len(a.collections) {
				a.active = 0
			}
		}
		return a, nil

	case SearchCompleted:
		a.handleSearchCompleted(msg)
		return a, nil

	case RecommendationReady:
		if msg.Err != nil {
			a.err = msg.Err
			a.status = "Ready"
			return a, nil
		}
		a.err = nil
		a.rec = msg.Recommendation
		a.status = "Recommendation ready"
		return a, nil

	case ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	// Remaining messages feed the text input (cursor blink and the like).
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// ctrl+c always quits, even mid-typing.
	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	// The recommendation overlay swallows keys until dismissed.
	if a.rec != nil {
		if Matches(keyStr, a.keymap.Back) {
			a.rec = nil
			return a, nil
		}
		if Matches(keyStr, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	// Tab cycles the active collection in both modes.
	if Matches(keyStr, a.keymap.Cycle) {
		a.active = (a.active + 1) % len(a.collections)
		return a, nil
	}

	// Esc quits from the explorer.
	if msg.Type == tea.KeyEsc {
		return a, tea.Quit
	}

	// Enter submits the current query against the active collection.
	if msg.Type == tea.KeyEnter {
		query := strings.TrimSpace(a.input.Value())
		if query == "" {
			return a, nil
		}
		a.status = "Searching..."
		a.focusInput = false
		a.input.Blur()
		return a, a.performSearch(query)
	}

	// Input mode: all other keys go to the input.
	if a.focusInput {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	// Results mode.
	switch {
	case Matches(keyStr, a.keymap.Up):
		a.moveUp()
	case Matches(keyStr, a.keymap.Down):
		a.moveDown()
	case Matches(keyStr, a.keymap.Recommend):
		query := strings.TrimSpace(a.input.Value())
		if query == "" {
			return a, nil
		}
		a.status = "Generating recommendation..."
		return a, a.generateRecommendation(query)
	case Matches(keyStr, a.keymap.NewQuery):
		a.focusInput = true
		a.input.SetValue("")
		return a, a.input.Focus()
	case Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit
	}

	return a, nil
}

// handleSearchCompleted processes search results.
func (a *App) handleSearchCompleted(msg SearchCompleted) {
	if msg.Err != nil {
		a.err = msg.Err
		a.status = "Ready"
		return
	}

	a.err = nil
	a.results = msg.Results
	a.selected = 0
	a.focusInput = false
	a.input.Blur()

	if len(msg.Results) == 0 {
		a.status = "No results"
		return
	}
	a.status = fmt.Sprintf("%d results", len(msg.Results))
}

// performSearch runs a search against the active collection.
func (a *App) performSearch(query string) tea.Cmd {
	collection := a.collections[a.active].Name
	return func() tea.Msg {
		results, err := a.ports.Search.Search(a.ctx, collection, query, 0)
		return SearchCompleted{Results: results, Err: err}
	}
}

// generateRecommendation composes a recommendation for the query.
func (a *App) generateRecommendation(query string) tea.Cmd {
	return func() tea.Msg {
		rec, err := a.ports.Recommend.Generate(a.ctx, query, "")
		return RecommendationReady{Recommendation: rec, Err: err}
	}
}

// loadCollections fetches the collection inventory.
func (a *App) loadCollections() tea.Cmd {
	return func() tea.Msg {
		infos, err := a.ports.Collections.Collections(a.ctx)
		return CollectionsLoaded{Collections: infos, Err: err}
	}
}

// View implements tea.Model.
// It renders the explorer as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.rec != nil {
		return a.viewRecommendation()
	}

	sections := make([]string, 0, 12)

	sections = append(sections, a.styles.Title.Render("Atelier"), "")
	sections = append(sections, a.viewTabs(), "")
	sections = append(sections, a.viewInput(), "")

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	sections = append(sections, a.viewResults())
	sections = append(sections, "", a.statusLine())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewTabs renders the collection tab bar.
func (a *App) viewTabs() string {
	tabs := make([]string, 0, len(a.collections))
	for i, info := range a.collections {
		label := " " + string(info.Name) + " "
		if info.Count > 0 {
			label = fmt.Sprintf(" %s (%d) ", info.Name, info.Count)
		}
		if i == a.active {
			tabs = append(tabs, a.styles.Selected.Render(label))
		} else {
			tabs = append(tabs, a.styles.Normal.Render(label))
		}
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

// viewInput renders the query input.
func (a *App) viewInput() string {
	label := a.styles.Title.Render("Search: ")
	field := a.styles.InputField.Render(a.input.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// viewResults renders the result list and the detail pane.
func (a *App) viewResults() string {
	if len(a.results) == 0 {
		if a.status == "No results" {
			return a.styles.Muted.Render("No results")
		}
		return a.styles.Muted.Render("Type a query and press enter to search")
	}

	lines := make([]string, 0, len(a.results)+8)

	header := a.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(a.results)))
	lines = append(lines, header, "")

	for i := range a.results {
		lines = append(lines, a.renderResult(i, &a.results[i]))
	}

	if detail := a.viewDetail(); detail != "" {
		lines = append(lines, "", detail)
	}

	return strings.Join(lines, "\n")
}

// renderResult formats a single search result line.
func (a *App) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == a.selected {
		indicator = "> "
	}

	name := result.Document.Get(result.Collection.IdentityField())
	if name == "" {
		name = "(unnamed)"
	}

	maxNameLen := a.width - 12
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	score := fmt.Sprintf("%.2f", result.Score)

	if index == a.selected {
		return a.styles.Selected.Render(fmt.Sprintf("%s%-30s  %s", indicator, name, score))
	}
	return a.styles.Normal.Render(fmt.Sprintf("%s%-30s  ", indicator, name)) +
		a.styles.Muted.Render(score)
}

// viewDetail renders the selected document's output fields.
func (a *App) viewDetail() string {
	result := a.SelectedResult()
	if result == nil {
		return ""
	}

	identity := result.Collection.IdentityField()
	schema := domain.SchemaFor(result.Collection)

	lines := make([]string, 0, len(schema.Output)+1)
	lines = append(lines, a.styles.Subtitle.Render("Detail"))

	maxValueLen := a.width - 20
	if maxValueLen < 20 {
		maxValueLen = 20
	}

	for _, field := range schema.Output {
		if field == identity {
			continue
		}
		value := result.Document.Get(field)
		if value == "" {
			continue
		}
		if len(value) > maxValueLen {
			value = value[:maxValueLen-3] + "..."
		}
		lines = append(lines, a.styles.Muted.Render(fmt.Sprintf("  %s: %s", field, value)))
	}

	return strings.Join(lines, "\n")
}

// viewRecommendation renders the recommendation overlay.
func (a *App) viewRecommendation() string {
	block := render.Styled(*a.rec, nil)
	framed := a.styles.Border.Padding(0, 2).Render(block)
	hints := a.styles.Help.Render("esc back • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, framed, "", hints)
}

// statusLine renders the status message and key hints.
func (a *App) statusLine() string {
	parts := make([]string, 0, 8)
	for _, b := range a.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return a.styles.StatusBar.Render(a.status) + "  " +
		a.styles.Help.Render(strings.Join(parts, " • "))
}

// moveUp moves the selection up.
func (a *App) moveUp() {
	if a.selected > 0 {
		a.selected--
	}
}

// moveDown moves the selection down.
func (a *App) moveDown() {
	if a.selected < len(a.results)-1 {
		a.selected++
	}
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.input.Value()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.results
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.selected
}

// SelectedResult returns the currently selected result, or nil if none.
func (a *App) SelectedResult() *domain.SearchResult {
	if len(a.results) == 0 || a.selected < 0 || a.selected >= len(a.results) {
		return nil
	}
	return &a.results[a.selected]
}

// ActiveCollection returns the collection searches run against.
func (a *App) ActiveCollection() domain.Collection {
	return a.collections[a.active].Name
}

// Collections returns the tab bar entries.
func (a *App) Collections() []domain.CollectionInfo {
	return a.collections
}

// Recommendation returns the displayed recommendation, or nil.
func (a *App) Recommendation() *domain.DesignRecommendation {
	return a.rec
}

// InputFocused returns whether the input has focus.
func (a *App) InputFocused() bool {
	return a.focusInput
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	inputWidth := width - 14
	if inputWidth < 20 {
		inputWidth = 20
	}
	a.input.Width = inputWidth
}
