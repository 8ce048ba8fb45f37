// Package search is the demo search run when the field is activated: a
// fuzzy match of the field's text over a fixed corpus.
package search

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/go-drift/searchfield/pkg/task"
)

// ErrNoSearch is returned by Finish when no search is waiting.
var ErrNoSearch = errors.New("search: no search running")

// Result is one ranked match.
type Result struct {
	Target   string
	Distance int
}

// Listener ranks Corpus against Query on every activation. It does not
// signal completion itself: the finished search parks its Completion until
// Finish is called, so scripted runs decide when the field collapses.
type Listener struct {
	Corpus []string
	// Query returns the text to search for. It is called on the search goroutine.
	Query  func() string
	Logger *slog.Logger

	mu      sync.Mutex
	results []Result
	pending chan *task.Completion
}

// NewListener creates a listener over corpus.
func NewListener(corpus []string, query func() string, logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Listener{
		Corpus:  corpus,
		Query:   query,
		Logger:  logger,
		pending: make(chan *task.Completion, 1),
	}
}

// OnActivated implements searchfield.Listener.
func (l *Listener) OnActivated(ctx context.Context, done *task.Completion) {
	query := ""
	if l.Query != nil {
		query = l.Query()
	}
	results, err := Rank(ctx, query, l.Corpus)
	if err != nil {
		l.Logger.Debug("search cancelled", "query", query, "err", err)
		return
	}
	l.mu.Lock()
	l.results = results
	l.mu.Unlock()
	l.Logger.Info("search finished", "query", query, "matches", len(results))

	select {
	case l.pending <- done:
	case <-ctx.Done():
	}
}

// OnCancelled implements searchfield.Listener.
func (l *Listener) OnCancelled() {
	l.Logger.Info("search cancelled by user")
}

// Results returns the matches of the last finished search.
func (l *Listener) Results() []Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Result, len(l.results))
	copy(out, l.results)
	return out
}

// Finish waits up to timeout for a finished search and signals its
// completion to the field.
func (l *Listener) Finish(timeout time.Duration) error {
	select {
	case done := <-l.pending:
		done.Done()
		return nil
	case <-time.After(timeout):
		return ErrNoSearch
	}
}

// Rank fuzzy-matches query against corpus, best match first. An empty
// query matches everything. Cancellation is checked between targets.
func Rank(ctx context.Context, query string, corpus []string) ([]Result, error) {
	var ranks fuzzy.Ranks
	for i, target := range corpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if d := fuzzy.RankMatchFold(query, target); d >= 0 {
			ranks = append(ranks, fuzzy.Rank{Source: query, Target: target, Distance: d, OriginalIndex: i})
		}
	}
	sort.Stable(ranks)
	results := make([]Result, len(ranks))
	for i, r := range ranks {
		results[i] = Result{Target: r.Target, Distance: r.Distance}
	}
	return results, nil
}
