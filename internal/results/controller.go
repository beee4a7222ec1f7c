// Package results holds the view-side state machine for a recommendation
// result set: two program pools with independent sort, filter and pagination
// state, plus row expansion for the detail view.
package results

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dovydas-v/uniguide/internal/ranking"
	"github.com/dovydas-v/uniguide/internal/types"
)

// State is the lifecycle state of a result set.
type State string

// Controller states.
const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateEmpty   State = "empty"
	StateError   State = "error"
)

// Tab identifies which candidate pool is active in the view.
type Tab string

// Result tabs.
const (
	TabStrict  Tab = "strict"
	TabRelaxed Tab = "relaxed"
)

// DefaultPageSize is the page window used when the caller does not choose one.
const DefaultPageSize = 10

// PoolState is the interactive state of a single pool. Tab switches never
// reset it; each pool keeps its own sort, search and page.
type PoolState struct {
	SortField ranking.SortField `json:"sort_field"`
	SortOrder ranking.SortOrder `json:"sort_order"`
	Search    string            `json:"search"`
	Page      int               `json:"page"`
}

// ViewState is the full serializable UI state of the results view. It is a
// plain struct so the state machine can be exercised without any rendering
// environment.
type ViewState struct {
	ActiveTab Tab               `json:"active_tab"`
	Strict    PoolState         `json:"strict"`
	Relaxed   PoolState         `json:"relaxed"`
	Expanded  map[uuid.UUID]bool `json:"expanded"`
	PageSize  int               `json:"page_size"`
}

func defaultPoolState() PoolState {
	return PoolState{
		SortField: ranking.SortRelevance,
		SortOrder: ranking.Descending,
		Page:      1,
	}
}

// Page is one visible window of a pool.
type Page struct {
	Programs []*types.Program `json:"programs"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Controller drives a result set through loading, ready, empty and error
// states. All methods are synchronous; the only asynchronous boundary is the
// provider fetch, whose outcome is delivered via SetResponse or SetError.
type Controller struct {
	state   State
	err     error
	prefs   *types.Preferences
	strict  []*types.Program
	relaxed []*types.Program
	view    ViewState
	closed  bool
}

// NewController creates a controller in the loading state. The preferences
// may be nil (results page reloaded without a form submission); ranking then
// degrades to provider-order passthrough with zeroed scores.
func NewController(prefs *types.Preferences) *Controller {
	return &Controller{
		state: StateLoading,
		prefs: prefs,
		view: ViewState{
			ActiveTab: TabStrict,
			Strict:    defaultPoolState(),
			Relaxed:   defaultPoolState(),
			Expanded:  make(map[uuid.UUID]bool),
			PageSize:  DefaultPageSize,
		},
	}
}

// SetResponse consumes the provider payload and runs the scoring pass over
// both pools. A response arriving after Close is discarded, so a user
// navigating away mid-fetch never sees a stale state update.
func (c *Controller) SetResponse(resp *types.RecommendationResponse) {
	if c.closed {
		return
	}
	if resp == nil {
		c.SetError(errors.New("provider returned no payload"))
		return
	}

	c.strict = ranking.Rank(resp.StrictPrograms, c.prefs)
	c.relaxed = ranking.Rank(resp.RelaxedPrograms, c.prefs)

	if len(c.strict) == 0 && len(c.relaxed) == 0 {
		c.state = StateEmpty
		return
	}
	c.state = StateReady
	c.err = nil
}

// SetError moves the controller to the error state. The failed attempt is
// terminal; any retry is initiated by the surrounding page, not here.
func (c *Controller) SetError(err error) {
	if c.closed {
		return
	}
	c.state = StateError
	c.err = err
}

// Close marks the view as navigated away. Later responses are ignored.
func (c *Controller) Close() {
	c.closed = true
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Err returns the provider error, if the controller is in the error state.
func (c *Controller) Err() error { return c.err }

// View returns a copy of the serializable view state.
func (c *Controller) View() ViewState {
	view := c.view
	view.Expanded = make(map[uuid.UUID]bool, len(c.view.Expanded))
	for id, on := range c.view.Expanded {
		view.Expanded[id] = on
	}
	return view
}

// HasRelaxed reports whether the relaxed tab should be shown at all.
func (c *Controller) HasRelaxed() bool { return len(c.relaxed) > 0 }

// SwitchTab activates a pool. Switching to a hidden relaxed tab is a no-op;
// switching never re-triggers scoring and never touches the other pool's
// sort or filter state.
func (c *Controller) SwitchTab(tab Tab) {
	if tab == TabRelaxed && !c.HasRelaxed() {
		return
	}
	if tab == TabStrict || tab == TabRelaxed {
		c.view.ActiveTab = tab
	}
}

// Resort changes the sort of the active pool only and resets its page.
func (c *Controller) Resort(field ranking.SortField, order ranking.SortOrder) {
	pool := c.activePool()
	pool.SortField = field
	pool.SortOrder = order
	pool.Page = 1
}

// Search changes the filter term of the active pool only and resets its page.
func (c *Controller) Search(term string) {
	pool := c.activePool()
	pool.Search = term
	pool.Page = 1
}

// SetPage moves the active pool to the given 1-based page.
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.activePool().Page = page
}

// SetPageSize changes the page window for both pools.
func (c *Controller) SetPageSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}
	c.view.PageSize = size
}

// ToggleRow expands or collapses one row of the detail view. Expansion is
// purely local state and independent per row.
func (c *Controller) ToggleRow(id uuid.UUID) {
	if c.view.Expanded[id] {
		delete(c.view.Expanded, id)
		return
	}
	c.view.Expanded[id] = true
}

// Expanded reports whether a row is currently expanded.
func (c *Controller) Expanded(id uuid.UUID) bool {
	return c.view.Expanded[id]
}

// Visible returns the current window of the active pool: its ranked base
// order run through the pool's filter, sort and pagination state.
func (c *Controller) Visible() Page {
	pool := *c.activePool()
	base := c.strict
	if c.view.ActiveTab == TabRelaxed {
		base = c.relaxed
	}

	filtered := ranking.FilterPrograms(base, pool.Search)
	sorted := ranking.SortPrograms(filtered, pool.SortField, pool.SortOrder)

	size := c.view.PageSize
	start := (pool.Page - 1) * size
	if start > len(sorted) {
		start = len(sorted)
	}
	end := start + size
	if end > len(sorted) {
		end = len(sorted)
	}

	return Page{
		Programs: sorted[start:end],
		Total:    len(sorted),
		Page:     pool.Page,
		PageSize: size,
	}
}

func (c *Controller) activePool() *PoolState {
	if c.view.ActiveTab == TabRelaxed {
		return &c.view.Relaxed
	}
	return &c.view.Strict
}
