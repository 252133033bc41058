package searchclient

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/kcvvelewijt/clubsite-api/internal/services/search"
)

// State is the controller's display state
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrSearchFailed is the generic user-facing failure message. Cancellations
// never surface a message at all.
const ErrSearchFailed = "Something went wrong, please try again."

// Snapshot is an immutable view of the controller's display state. Results
// holds the type-filtered view; TotalCount counts the unfiltered response.
type Snapshot struct {
	State        State
	Query        string
	Filter       search.TypeFilter
	Results      []search.SearchResult
	TotalCount   int
	ErrorMessage string
}

// Searcher is the request capability the controller drives
type Searcher interface {
	Search(ctx context.Context, query string, filter search.TypeFilter) (*search.Response, error)
}

// Controller manages the search request lifecycle. Exactly one logical
// request is current at any time: submitting a new one cancels its
// predecessor, and a superseded request's resolution never mutates displayed
// state regardless of resolution order.
type Controller struct {
	searcher Searcher
	urlState URLState
	onChange func(Snapshot)

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	state    State
	query    string
	filter   search.TypeFilter
	response *search.Response
	errMsg   string
	wg       sync.WaitGroup
}

// NewController creates a Controller. If the URL state carries a valid q
// parameter the controller submits it immediately, restoring the search from
// a shared or reloaded URL. The onChange callback is invoked on every state
// transition while the controller's lock is held, so it must not call back
// into the controller.
func NewController(searcher Searcher, urlState URLState, onChange func(Snapshot)) *Controller {
	c := &Controller{
		searcher: searcher,
		urlState: urlState,
		onChange: onChange,
		state:    StateIdle,
	}

	if urlState != nil {
		values := urlState.Read()
		if filter, err := search.ParseTypeFilter(values.Get("type")); err == nil {
			c.filter = filter
		}
		c.Submit(values.Get("q"))
	}

	return c
}

// Submit issues a new search for rawQuery. Queries failing normalization are
// dropped at the validation boundary: no request is issued and displayed
// state is untouched.
func (c *Controller) Submit(rawQuery string) {
	query, err := search.NormalizeQuery(rawQuery)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelInFlight()
	c.seq++
	seq := c.seq

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.query = query
	c.state = StateLoading
	c.errMsg = ""
	c.writeURLLocked()
	c.notifyLocked()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		// Always fetch unfiltered so the type filter can re-derive the
		// displayed subset without another request.
		resp, err := c.searcher.Search(ctx, query, search.FilterAll)
		c.resolve(seq, resp, err)
	}()
}

// SetTypeFilter narrows the displayed results to one content type ("" for
// all). It re-filters the last unfiltered response and rewrites the URL; no
// request is issued.
func (c *Controller) SetTypeFilter(raw string) error {
	filter, err := search.ParseTypeFilter(raw)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = filter
	if c.query != "" {
		c.writeURLLocked()
	}
	c.notifyLocked()
	return nil
}

// Clear cancels any in-flight request and returns to Idle
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelInFlight()
	c.seq++
	c.state = StateIdle
	c.query = ""
	c.response = nil
	c.errMsg = ""
	if c.urlState != nil {
		c.urlState.Write(url.Values{})
	}
	c.notifyLocked()
}

// Close cancels any outstanding request and waits for it to settle. The
// controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancelInFlight()
	c.seq++
	c.mu.Unlock()

	c.wg.Wait()
}

// Snapshot returns the current display state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// resolve applies the outcome of request seq, unless it has been superseded
func (c *Controller) resolve(seq uint64, resp *search.Response, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A stale resolution, in either direction, never touches display state
	if seq != c.seq {
		return
	}

	if err != nil {
		// Cancellation is identified by the signal's origin, not message text
		if errors.Is(err, context.Canceled) {
			return
		}
		c.state = StateError
		c.errMsg = ErrSearchFailed
		c.response = nil
		c.notifyLocked()
		return
	}

	c.state = StateSuccess
	c.response = resp
	c.notifyLocked()
}

func (c *Controller) cancelInFlight() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) writeURLLocked() {
	if c.urlState == nil {
		return
	}
	values := url.Values{}
	values.Set("q", c.query)
	if c.filter != search.FilterAll {
		values.Set("type", c.filter.Param())
	}
	c.urlState.Write(values)
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:        c.state,
		Query:        c.query,
		Filter:       c.filter,
		ErrorMessage: c.errMsg,
	}
	if c.response != nil {
		snap.TotalCount = c.response.Count
		snap.Results = filterResults(c.response.Results, c.filter)
	}
	return snap
}

func (c *Controller) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.snapshotLocked())
	}
}

func filterResults(results []search.SearchResult, filter search.TypeFilter) []search.SearchResult {
	filtered := make([]search.SearchResult, 0, len(results))
	for _, result := range results {
		if filter.Includes(result.Type) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}
