package counter

import (
	"errors"
	"math"
	"testing"
)

func intp(v int) *int { return &v }

func mustSet(t *testing.T, e *Engine, numID string, level, pos, value int) {
	t.Helper()
	if err := e.SetCounter(numID, level, pos, value, ""); err != nil {
		t.Fatalf("SetCounter(%s,%d,%d,%d): %v", numID, level, pos, value, err)
	}
}

func mustCalc(t *testing.T, e *Engine, numID string, level, pos int) int {
	t.Helper()
	v, err := e.CalculateCounter(numID, level, pos)
	if err != nil {
		t.Fatalf("CalculateCounter(%s,%d,%d): %v", numID, level, pos, err)
	}
	return v
}

func TestCalculateCounter_NoPriorReturnsStart(t *testing.T) {
	e := New()
	if err := e.SetStartSettings("1", 0, 5, nil, false); err != nil {
		t.Fatal(err)
	}
	if got := mustCalc(t, e, "1", 0, 10); got != 5 {
		t.Errorf("expected configured start 5, got %d", got)
	}
	// No settings at all: Word's default start is 1.
	if got := mustCalc(t, e, "2", 0, 0); got != 1 {
		t.Errorf("expected default start 1, got %d", got)
	}
}

func TestCalculateCounter_SimpleIncrement(t *testing.T) {
	e := New()
	mustSet(t, e, "1", 0, 0, 1)
	mustSet(t, e, "1", 0, 3, 2)
	if got := mustCalc(t, e, "1", 0, 7); got != 3 {
		t.Errorf("expected 3 after positions 0 and 3, got %d", got)
	}
}

func TestCalculateCounter_RestartNeverAlwaysIncrements(t *testing.T) {
	e := New()
	if err := e.SetStartSettings("1", 1, 1, intp(RestartNever), false); err != nil {
		t.Fatal(err)
	}
	mustSet(t, e, "1", 1, 0, 1)
	// Level 0 fires between the two level-1 positions.
	mustSet(t, e, "1", 0, 5, 1)
	if got := mustCalc(t, e, "1", 1, 10); got != 2 {
		t.Errorf("restart=0 must ignore intervening lower levels, got %d", got)
	}
	// And with no prior record it still counts from start.
	if got := mustCalc(t, e, "3", 1, 0); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestCalculateCounter_UnsetRestartRestartsOnAnyLowerLevel(t *testing.T) {
	e := New()
	if err := e.SetStartSettings("1", 1, 1, nil, false); err != nil {
		t.Fatal(err)
	}
	mustSet(t, e, "1", 1, 0, 1)
	mustSet(t, e, "1", 1, 1, 2)
	mustSet(t, e, "1", 0, 2, 1)
	if got := mustCalc(t, e, "1", 1, 3); got != 1 {
		t.Errorf("expected restart to 1 after level 0 intervened, got %d", got)
	}
}

func TestCalculateCounter_RestartThreshold(t *testing.T) {
	e := New()
	// Level 3 restarts only when level <= 1 intervenes.
	if err := e.SetStartSettings("1", 3, 1, intp(1), false); err != nil {
		t.Fatal(err)
	}
	mustSet(t, e, "1", 3, 0, 4)

	// Level 2 intervenes: above the threshold, keep counting.
	mustSet(t, e, "1", 2, 1, 1)
	if got := mustCalc(t, e, "1", 3, 2); got != 5 {
		t.Errorf("expected 5 (level 2 is above restart threshold), got %d", got)
	}

	// Level 1 intervenes: at the threshold, restart.
	mustSet(t, e, "1", 1, 3, 1)
	mustSet(t, e, "1", 3, 4, mustCalc(t, e, "1", 3, 4))
	if got, ok := e.Counter("1", 3, 4); !ok || got != 1 {
		t.Errorf("expected restart to 1 after level 1 intervened, got %d (ok=%v)", got, ok)
	}
}

func TestCalculateCounter_NoLowerLevelBetween(t *testing.T) {
	e := New()
	mustSet(t, e, "1", 1, 0, 1)
	mustSet(t, e, "1", 0, 10, 1) // after the query window
	if got := mustCalc(t, e, "1", 1, 5); got != 2 {
		t.Errorf("level 0 at position 10 is not between 0 and 5; expected 2, got %d", got)
	}
}

func TestCounter_ExactLookupOnly(t *testing.T) {
	e := New()
	mustSet(t, e, "1", 0, 4, 7)
	if v, ok := e.Counter("1", 0, 4); !ok || v != 7 {
		t.Errorf("expected exact hit 7, got %d (ok=%v)", v, ok)
	}
	if _, ok := e.Counter("1", 0, 5); ok {
		t.Error("expected miss at a position never set")
	}
}

func TestValidation(t *testing.T) {
	e := New()
	if err := e.SetCounter("", 0, 0, 1, ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for empty numId, got %v", err)
	}
	if err := e.SetCounter("1", -1, 0, 1, ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for negative level, got %v", err)
	}
	if err := e.SetStartSettings("1", -2, 1, nil, false); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for negative level, got %v", err)
	}
	if _, err := e.CalculateCounter("1", 0, -3); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for negative position, got %v", err)
	}
}

func TestOverflow(t *testing.T) {
	e := New()
	mustSet(t, e, "1", 0, 0, math.MaxInt)
	if _, err := e.CalculateCounter("1", 0, 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestAncestorsPath(t *testing.T) {
	e := New()
	mustSet(t, e, "1", 0, 0, 2)
	mustSet(t, e, "1", 1, 1, 3)
	mustSet(t, e, "1", 2, 2, 1)

	path, err := e.AncestorsPath("1", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 2 || path[0] != 2 || path[1] != 3 {
		t.Errorf("expected [2 3], got %v", path)
	}
}

func TestAncestorsPath_FallsBackToStart(t *testing.T) {
	e := New()
	if err := e.SetStartSettings("1", 0, 4, nil, false); err != nil {
		t.Fatal(err)
	}
	path, err := e.AncestorsPath("1", 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 2 || path[0] != 4 || path[1] != 1 {
		t.Errorf("expected [4 1] from start settings, got %v", path)
	}
}

func TestCalculatePath_AppendsOnlyExplicitCounter(t *testing.T) {
	e := New()
	mustSet(t, e, "1", 0, 0, 2)
	mustSet(t, e, "1", 1, 3, 5)

	path, err := e.CalculatePath("1", 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 2 || path[0] != 2 || path[1] != 5 {
		t.Errorf("expected [2 5], got %v", path)
	}

	// No explicit counter at position 4: ancestors only.
	path, err = e.CalculatePath("1", 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 || path[0] != 2 {
		t.Errorf("expected [2], got %v", path)
	}
}

func TestCacheInvalidationOnSetCounter(t *testing.T) {
	e := New()
	e.EnableCache()
	mustSet(t, e, "1", 0, 0, 1)

	path, err := e.AncestorsPath("1", 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 || path[0] != 1 {
		t.Fatalf("expected [1], got %v", path)
	}

	// A later explicit counter must evict the cached path.
	mustSet(t, e, "1", 0, 2, 9)
	path, err = e.AncestorsPath("1", 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 || path[0] != 9 {
		t.Errorf("expected recomputed [9], got %v", path)
	}
}

func TestCacheToggleClearsCountersNotStarts(t *testing.T) {
	e := New()
	if err := e.SetStartSettings("1", 0, 7, nil, true); err != nil {
		t.Fatal(err)
	}
	mustSet(t, e, "1", 0, 0, 7)

	e.EnableCache()
	if _, ok := e.Counter("1", 0, 0); ok {
		t.Error("expected counters cleared when cache is toggled")
	}
	if got := e.StartSettings("1", 0); got.Start != 7 || !got.StartOverridden {
		t.Errorf("expected start settings preserved, got %+v", got)
	}
}

func TestClearAllState(t *testing.T) {
	e := New()
	if err := e.SetStartSettings("1", 0, 7, intp(2), false); err != nil {
		t.Fatal(err)
	}
	mustSet(t, e, "1", 0, 0, 7)

	e.ClearAllState()
	if got := e.StartSettings("1", 0); got.Start != 1 || got.Restart != nil {
		t.Errorf("expected defaults after reset, got %+v", got)
	}
	if _, ok := e.Counter("1", 0, 0); ok {
		t.Error("expected counters cleared")
	}
}
