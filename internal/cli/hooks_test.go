package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polycube/pkg/observability"
	"github.com/matzehuels/polycube/pkg/polycube"
	"github.com/matzehuels/polycube/pkg/shapes"
)

func TestSearchLoggerLifecycle(t *testing.T) {
	var buf bytes.Buffer
	l := newSearchLogger(newLogger(&buf, log.DebugLevel))
	ctx := context.Background()

	l.OnSearchStart(ctx, "0123456789abcdef", 8, 2)
	if l.active() != 1 {
		t.Fatalf("active = %d, want 1", l.active())
	}
	l.OnSolution(ctx, "0123456789abcdef", 1)
	l.OnSearchComplete(ctx, "0123456789abcdef", 1, observability.SearchStats{Nodes: 12}, time.Millisecond, nil)
	if l.active() != 0 {
		t.Errorf("active = %d after completion, want 0", l.active())
	}

	out := buf.String()
	for _, want := range []string{"Search started", "Solution found", "Search complete", "run=01234567", "nodes=12"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestSearchLoggerHeartbeat(t *testing.T) {
	var buf bytes.Buffer
	l := newSearchLogger(newLogger(&buf, log.InfoLevel))
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	ctx := context.Background()

	l.OnSearchStart(ctx, "run", 64, 16)
	l.OnSolution(ctx, "run", 1)
	if strings.Contains(buf.String(), "Searching") {
		t.Fatal("heartbeat logged too early")
	}

	clock = clock.Add(heartbeatInterval)
	l.OnSolution(ctx, "run", 2)
	if !strings.Contains(buf.String(), "Searching... 10s elapsed, 2 solutions so far") {
		t.Errorf("missing heartbeat:\n%s", buf.String())
	}
}

func TestSearchLoggerAborted(t *testing.T) {
	var buf bytes.Buffer
	l := newSearchLogger(newLogger(&buf, log.InfoLevel))
	l.OnSearchStart(context.Background(), "run", 8, 2)
	l.OnSearchComplete(context.Background(), "run", 0, observability.SearchStats{}, time.Second, stderrors.New("boom"))
	if !strings.Contains(buf.String(), "Search aborted") {
		t.Errorf("abort not logged:\n%s", buf.String())
	}
}

func TestSearchLoggerUsesContextLogger(t *testing.T) {
	var fallback, scoped bytes.Buffer
	l := newSearchLogger(newLogger(&fallback, log.DebugLevel))
	ctx := withLogger(context.Background(), newLogger(&scoped, log.DebugLevel))

	l.OnCacheSet(ctx, "placements", 6)
	if fallback.Len() != 0 {
		t.Error("fallback logger should be unused when ctx carries one")
	}
	if !strings.Contains(scoped.String(), "Memo stored") {
		t.Errorf("scoped log = %q", scoped.String())
	}
}

func TestSearchLoggerRegistered(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)
	newSearchLogger(logger).Register()

	cube2, _ := shapes.Lookup("cube2")
	o, _ := shapes.Lookup("O")
	s := &polycube.Solver{Workers: 1}
	ctx := withLogger(context.Background(), logger)
	if _, err := s.Solve(ctx, cube2, []*polycube.Block{o, o.Copy()}); err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "Solution found"); got != 3 {
		t.Errorf("logged %d solutions, want 3:\n%s", got, out)
	}
	if !strings.Contains(out, "solutions=3") {
		t.Errorf("completion line missing:\n%s", out)
	}
}
