package ingredients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSuggester struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]string
	err     error

	// block, when set, makes Suggest wait until the query's channel is
	// closed (or the context is cancelled).
	block map[string]chan struct{}
}

func (f *fakeSuggester) Suggest(ctx context.Context, query string) ([]string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	gate := f.block[query]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

func (f *fakeSuggester) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

type fakePersister struct {
	mu      sync.Mutex
	history [][]string
}

func (f *fakePersister) SaveIngredients(_ context.Context, names []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = append(f.history, slices.Clone(names))
	return nil
}

func (f *fakePersister) last() ([]string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.history) == 0 {
		return nil, false
	}
	return slices.Clone(f.history[len(f.history)-1]), true
}

func TestStoreDebounceCollapsesRapidQueries(t *testing.T) {
	sug := &fakeSuggester{results: map[string][]string{
		"ab": {"abalone"},
	}}
	s := New(sug, nil, Config{Debounce: 30 * time.Millisecond})
	defer s.Close()

	s.Dispatch(LoadSuggestions{Query: "a"})
	s.Dispatch(LoadSuggestions{Query: "ab"})

	require.Eventually(t, func() bool {
		return slices.Equal(s.Snapshot().Suggestions, []string{"abalone"})
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"ab"}, sug.callList(),
		"only the latest query within the debounce window may be issued")
	assert.False(t, s.Snapshot().Loading)
}

func TestStoreSwitchLatestDiscardsStaleResult(t *testing.T) {
	gateA := make(chan struct{})
	gateB := make(chan struct{})
	sug := &fakeSuggester{
		results: map[string][]string{"a": {"stale"}, "b": {"fresh"}},
		block:   map[string]chan struct{}{"a": gateA, "b": gateB},
	}
	s := New(sug, nil, Config{Debounce: 10 * time.Millisecond})
	defer s.Close()

	s.Dispatch(LoadSuggestions{Query: "a"})
	require.Eventually(t, func() bool {
		return slices.Contains(sug.callList(), "a")
	}, time.Second, time.Millisecond, "first lookup must be in flight")

	s.Dispatch(LoadSuggestions{Query: "b"})
	require.Eventually(t, func() bool {
		return slices.Contains(sug.callList(), "b")
	}, time.Second, time.Millisecond, "second lookup must supersede the first")

	close(gateB)
	require.Eventually(t, func() bool {
		return slices.Equal(s.Snapshot().Suggestions, []string{"fresh"})
	}, time.Second, time.Millisecond)

	// Release the stale lookup; its result must not overwrite the
	// newer one even though it finishes later.
	close(gateA)
	time.Sleep(50 * time.Millisecond)
	st := s.Snapshot()
	assert.Equal(t, []string{"fresh"}, st.Suggestions)
	assert.Empty(t, st.Error)
}

func TestStoreSuggestionFailure(t *testing.T) {
	sug := &fakeSuggester{err: errors.New("endpoint unreachable")}
	s := New(sug, nil, Config{Debounce: 5 * time.Millisecond})
	defer s.Close()

	s.Dispatch(LoadSuggestions{Query: "a"})

	require.Eventually(t, func() bool {
		st := s.Snapshot()
		return st.Error == "endpoint unreachable" && !st.Loading
	}, time.Second, time.Millisecond)
	assert.Empty(t, s.Snapshot().Suggestions)
}

func TestStorePersistsOnEveryChange(t *testing.T) {
	p := &fakePersister{}
	s := New(&fakeSuggester{}, p, Config{})
	defer s.Close()

	s.Dispatch(AddIngredient{Name: "x"})
	s.Dispatch(AddIngredient{Name: "y"})
	s.Dispatch(RemoveIngredient{Name: "x"})

	require.Eventually(t, func() bool {
		last, ok := p.last()
		return ok && slices.Equal(last, []string{"y"})
	}, time.Second, time.Millisecond)

	p.mu.Lock()
	defer p.mu.Unlock()
	require.Len(t, p.history, 3, "each change persists the full list")
	assert.Equal(t, []string{"x"}, p.history[0])
	assert.Equal(t, []string{"x", "y"}, p.history[1])
}

func TestStoreRestoreFromStorage(t *testing.T) {
	p := &fakePersister{}
	s := New(&fakeSuggester{}, p, Config{})
	defer s.Close()

	s.Dispatch(LoadFromStorageSuccess{Ingredients: []string{"tomato", "basil"}})

	require.Eventually(t, func() bool {
		return slices.Equal(s.Snapshot().Submitted, []string{"tomato", "basil"})
	}, time.Second, time.Millisecond)
}

func TestStoreDispatchAfterClose(t *testing.T) {
	s := New(&fakeSuggester{}, nil, Config{})
	s.Close()

	done := make(chan struct{})
	go func() {
		s.Dispatch(AddIngredient{Name: "x"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked after Close")
	}
}

func TestStoreSnapshotSlicesNeverNil(t *testing.T) {
	s := New(&fakeSuggester{}, nil, Config{})
	defer s.Close()

	st := s.Snapshot()
	require.NotNil(t, st.Submitted)
	require.NotNil(t, st.Suggestions)

	b, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"submitted_ingredients":[]`)
	assert.Contains(t, string(b), `"suggestions":[]`)

	s.Dispatch(AddIngredient{Name: "basil"})
	require.Eventually(t, func() bool {
		return len(s.Snapshot().Submitted) == 1
	}, time.Second, time.Millisecond)

	s.Dispatch(ClearIngredients{})
	require.Eventually(t, func() bool {
		return len(s.Snapshot().Submitted) == 0
	}, time.Second, time.Millisecond)
	assert.NotNil(t, s.Snapshot().Submitted)
}

func TestStoreAddCappedAtMaxSubmitted(t *testing.T) {
	s := New(&fakeSuggester{}, &fakePersister{}, Config{})
	defer s.Close()

	full := make([]string, MaxSubmitted)
	for i := range full {
		full[i] = fmt.Sprintf("ing-%02d", i)
	}
	s.Dispatch(LoadFromStorageSuccess{Ingredients: full})
	s.Dispatch(AddIngredient{Name: "overflow"})
	// The remove lands after the dropped add, so the final length
	// proves the overflow never entered the list.
	s.Dispatch(RemoveIngredient{Name: "ing-00"})

	require.Eventually(t, func() bool {
		return len(s.Snapshot().Submitted) == MaxSubmitted-1
	}, time.Second, time.Millisecond)
	assert.NotContains(t, s.Snapshot().Submitted, "overflow")
}

func TestStoreRestoreBeyondCapNotTruncated(t *testing.T) {
	s := New(&fakeSuggester{}, nil, Config{})
	defer s.Close()

	long := make([]string, MaxSubmitted+5)
	for i := range long {
		long[i] = fmt.Sprintf("ing-%02d", i)
	}
	s.Dispatch(LoadFromStorageSuccess{Ingredients: long})
	require.Eventually(t, func() bool {
		return len(s.Snapshot().Submitted) == MaxSubmitted+5
	}, time.Second, time.Millisecond)
}
