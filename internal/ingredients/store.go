package ingredients

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// DefaultDebounce is the quiet window before a suggestion lookup is
// issued. Sized against the suggestion endpoint's latency budget.
const DefaultDebounce = 300 * time.Millisecond

const persistTimeout = 5 * time.Second

// MaxSubmitted caps how many ingredients can be added. Enforced on the
// dispatch loop, so concurrent adds cannot overshoot it. Restoring a
// longer persisted list is allowed and never truncated.
const MaxSubmitted = 20

// Suggester resolves a free-text query to at most ten ingredient names.
type Suggester interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

// Persister receives the full ingredient list after every change to it.
type Persister interface {
	SaveIngredients(ctx context.Context, names []string) error
}

// Config tunes the store's side effects.
type Config struct {
	// Debounce is the quiet window for suggestion lookups.
	// Defaults to DefaultDebounce.
	Debounce time.Duration
}

func (c *Config) defaults() {
	if c.Debounce <= 0 {
		c.Debounce = DefaultDebounce
	}
}

// Store is the ingredient state container. A single goroutine applies
// every dispatched action through the reducer, so state transitions are
// strictly ordered; reads take a snapshot.
//
// Two side effects run outside the reducer: LoadSuggestions triggers a
// debounced lookup where a newer query supersedes any in-flight one
// (the stale result is cancelled and discarded, never merged), and any
// change to the submitted list is persisted wholesale.
type Store struct {
	mu    sync.RWMutex
	state State

	suggester Suggester
	persister Persister
	debounce  time.Duration

	actions chan Action
	results chan lookupResult
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

type lookupResult struct {
	gen         uint64
	suggestions []string
	err         error
}

// New creates the store and starts its dispatch loop.
func New(suggester Suggester, persister Persister, cfg Config) *Store {
	cfg.defaults()
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		suggester: suggester,
		persister: persister,
		debounce:  cfg.Debounce,
		actions:   make(chan Action, 64),
		results:   make(chan lookupResult),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

// Dispatch queues an action for the reducer. Returns after the action
// is accepted, not after it is applied; Snapshot observes the result
// once the loop has processed it.
func (s *Store) Dispatch(a Action) {
	select {
	case s.actions <- a:
	case <-s.done:
	}
}

// Snapshot returns a copy of the current state. The slices are never
// nil so the state serializes with empty arrays, not nulls.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Submitted = slices.Clone(st.Submitted)
	st.Suggestions = slices.Clone(st.Suggestions)
	if st.Submitted == nil {
		st.Submitted = []string{}
	}
	if st.Suggestions == nil {
		st.Suggestions = []string{}
	}
	return st
}

// Close stops the dispatch loop and cancels any in-flight lookup.
func (s *Store) Close() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

func (s *Store) run(ctx context.Context) {
	defer close(s.done)

	var (
		debounce     *time.Timer
		debounceC    <-chan time.Time
		pendingQuery string
		gen          uint64
		cancelLookup context.CancelFunc
	)
	defer func() {
		if cancelLookup != nil {
			cancelLookup()
		}
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case a := <-s.actions:
			if add, ok := a.(AddIngredient); ok && s.full() {
				slog.Debug("ingredient limit reached, dropping add", "name", add.Name)
				continue
			}
			s.apply(a)
			switch a := a.(type) {
			case LoadSuggestions:
				pendingQuery = a.Query
				if debounce == nil {
					debounce = time.NewTimer(s.debounce)
				} else {
					if !debounce.Stop() {
						select {
						case <-debounce.C:
						default:
						}
					}
					debounce.Reset(s.debounce)
				}
				debounceC = debounce.C

			case AddIngredient, RemoveIngredient, ClearIngredients, LoadFromStorageSuccess:
				s.persist(ctx)
			}

		case <-debounceC:
			debounceC = nil
			gen++
			if cancelLookup != nil {
				cancelLookup()
			}
			lctx, cancel := context.WithCancel(ctx)
			cancelLookup = cancel
			go s.lookup(lctx, gen, pendingQuery)

		case res := <-s.results:
			if res.gen != gen {
				continue // superseded lookup, discard
			}
			if res.err != nil {
				s.apply(LoadSuggestionsFailure{Error: res.err.Error()})
			} else {
				s.apply(LoadSuggestionsSuccess{Suggestions: res.suggestions})
			}
		}
	}
}

func (s *Store) full() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Submitted) >= MaxSubmitted
}

func (s *Store) apply(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	s.mu.Unlock()
}

func (s *Store) lookup(ctx context.Context, gen uint64, query string) {
	suggestions, err := s.suggester.Suggest(ctx, query)
	select {
	case s.results <- lookupResult{gen: gen, suggestions: suggestions, err: err}:
	case <-ctx.Done():
	}
}

// persist writes the submitted list through the storage gateway. It
// runs on the dispatch loop so writes land in state order; failures are
// logged, never surfaced into the pure state.
func (s *Store) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	s.mu.RLock()
	submitted := slices.Clone(s.state.Submitted)
	s.mu.RUnlock()

	pctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()
	if err := s.persister.SaveIngredients(pctx, submitted); err != nil {
		slog.Error("ingredients: persist", "error", err)
	}
}
