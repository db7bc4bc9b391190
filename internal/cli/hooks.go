package cli

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polycube/pkg/observability"
)

// heartbeatInterval is how often a long search reports that it is alive.
const heartbeatInterval = 10 * time.Second

// searchLogger logs solver events through the logger attached to the
// search context. It logs the start and end of every search, each new
// solution at debug level, and a heartbeat every heartbeatInterval while
// solutions keep arriving.
//
// It is safe for concurrent use.
type searchLogger struct {
	fallback *log.Logger

	mu   sync.Mutex
	runs map[string]*runState
	now  func() time.Time
}

type runState struct {
	start, lastLog time.Time
	found          int
}

// newSearchLogger returns hooks that log to the context logger, or to
// fallback when the context carries none.
func newSearchLogger(fallback *log.Logger) *searchLogger {
	return &searchLogger{
		fallback: fallback,
		runs:     make(map[string]*runState),
		now:      time.Now,
	}
}

// Register installs l as the global search and cache hooks.
func (l *searchLogger) Register() {
	observability.SetSearchHooks(l)
	observability.SetCacheHooks(l)
}

func (l *searchLogger) logger(ctx context.Context) *log.Logger {
	if ctx != nil {
		if lg, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return lg
		}
	}
	return l.fallback
}

// OnSearchStart implements observability.SearchHooks.
func (l *searchLogger) OnSearchStart(ctx context.Context, runID string, targetSize, pieces int) {
	now := l.now()
	l.mu.Lock()
	l.runs[runID] = &runState{start: now, lastLog: now}
	l.mu.Unlock()
	l.logger(ctx).Debug("Search started", "run", shortID(runID), "target", targetSize, "pieces", pieces)
}

// OnSolution implements observability.SearchHooks.
func (l *searchLogger) OnSolution(ctx context.Context, runID string, found int) {
	lg := l.logger(ctx)
	lg.Debug("Solution found", "run", shortID(runID), "total", found)

	now := l.now()
	l.mu.Lock()
	st, ok := l.runs[runID]
	beat := false
	if ok {
		st.found = found
		if now.Sub(st.lastLog) >= heartbeatInterval {
			st.lastLog = now
			beat = true
		}
	}
	l.mu.Unlock()

	if beat {
		lg.Infof("Searching... %v elapsed, %d solutions so far", now.Sub(st.start).Truncate(time.Second), found)
	}
}

// OnSearchComplete implements observability.SearchHooks.
func (l *searchLogger) OnSearchComplete(ctx context.Context, runID string, solutions int, stats observability.SearchStats, d time.Duration, err error) {
	l.mu.Lock()
	delete(l.runs, runID)
	l.mu.Unlock()

	lg := l.logger(ctx)
	if err != nil {
		lg.Warn("Search aborted", "run", shortID(runID), "solutions", solutions, "err", err)
		return
	}
	lg.Debug("Search complete",
		"run", shortID(runID),
		"solutions", solutions,
		"nodes", stats.Nodes,
		"memo_hits", stats.MemoHits,
		"memo_misses", stats.MemoMisses,
		"took", d.Round(time.Millisecond))
}

// OnCacheHit implements observability.CacheHooks. Hits show up in the
// search stats instead.
func (l *searchLogger) OnCacheHit(context.Context, string) {}

// OnCacheMiss implements observability.CacheHooks.
func (l *searchLogger) OnCacheMiss(context.Context, string) {}

// OnCacheSet implements observability.CacheHooks.
func (l *searchLogger) OnCacheSet(ctx context.Context, keyType string, size int) {
	l.logger(ctx).Debug("Memo stored", "type", keyType, "entries", size)
}

// active returns the number of searches in flight.
func (l *searchLogger) active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.runs)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
