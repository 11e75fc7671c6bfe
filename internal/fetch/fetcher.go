// Package fetch provides a single-shot cancellable GET helper with a small
// state machine: Idle -> Loading -> Success | Error. Changing the URL or the
// enabled flag cancels any in-flight request and restarts from Loading.
// Cancellation never surfaces as an error state.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

type State struct {
	Status Status
	Data   json.RawMessage
	Err    error
}

type Fetcher struct {
	httpClient *http.Client

	mu           sync.Mutex
	url          string
	enabled      bool
	state        State
	cancel       context.CancelFunc
	generation   uint64
	listeners    map[int]func(State)
	nextListener int

	wg sync.WaitGroup
}

type Option func(*Fetcher)

func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) { f.httpClient = hc }
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		enabled:    true,
		state:      State{Status: StatusIdle},
		listeners:  map[int]func(State){},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetURL changes the request target. Setting the same URL again is a no-op;
// an empty URL cancels any in-flight request and resets to Idle.
func (f *Fetcher) SetURL(url string) {
	f.mu.Lock()
	if f.url == url {
		f.mu.Unlock()
		return
	}
	f.url = url
	f.restartLocked()
}

// SetEnabled gates fetching. While disabled no request is ever issued and
// the state rests at Idle.
func (f *Fetcher) SetEnabled(enabled bool) {
	f.mu.Lock()
	if f.enabled == enabled {
		f.mu.Unlock()
		return
	}
	f.enabled = enabled
	f.restartLocked()
}

func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Subscribe registers a listener invoked synchronously on every transition.
// The returned func removes it.
func (f *Fetcher) Subscribe(fn func(State)) func() {
	f.mu.Lock()
	id := f.nextListener
	f.nextListener++
	f.listeners[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	}
}

// Close cancels any in-flight request and waits for the worker to exit.
func (f *Fetcher) Close() {
	f.mu.Lock()
	f.generation++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mu.Unlock()
	f.wg.Wait()
}

// restartLocked is called with f.mu held and releases it.
func (f *Fetcher) restartLocked() {
	f.generation++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}

	if !f.enabled || f.url == "" {
		f.setStateLocked(State{Status: StatusIdle})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.wg.Add(1)
	go f.run(ctx, f.url, f.generation)

	f.setStateLocked(State{Status: StatusLoading})
}

func (f *Fetcher) run(ctx context.Context, url string, generation uint64) {
	defer f.wg.Done()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.complete(generation, State{Status: StatusError, Err: err})
		return
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		// A request torn down by a dependency change or Close is not a
		// failure; the superseding state is already in place.
		if errors.Is(err, context.Canceled) {
			return
		}
		f.complete(generation, State{Status: StatusError, Err: err})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		f.complete(generation, State{
			Status: StatusError,
			Err:    fmt.Errorf("request failed with status %d", resp.StatusCode),
		})
		return
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		f.complete(generation, State{Status: StatusError, Err: err})
		return
	}

	f.complete(generation, State{Status: StatusSuccess, Data: data})
}

// complete applies a terminal state unless a newer generation superseded
// this request.
func (f *Fetcher) complete(generation uint64, state State) {
	f.mu.Lock()
	if generation != f.generation {
		f.mu.Unlock()
		return
	}
	f.cancel = nil
	f.setStateLocked(state)
}

// setStateLocked stores the state, releases f.mu and notifies listeners.
func (f *Fetcher) setStateLocked(state State) {
	f.state = state
	notify := make([]func(State), 0, len(f.listeners))
	for _, fn := range f.listeners {
		notify = append(notify, fn)
	}
	f.mu.Unlock()

	for _, fn := range notify {
		fn(state)
	}
}
