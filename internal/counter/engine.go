// Package counter tracks the running list-numbering counters for one
// document: explicit counter values recorded during a single forward pass in
// document order, start/restart configuration per (numId, level), and the
// derived values Word would display at any position.
//
// The engine is deliberately the opposite of the cascade resolvers: it is
// mutable, order-dependent state and must be driven sequentially. One engine
// per document load.
package counter

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalid marks caller errors: empty numId, negative level or
	// position.
	ErrInvalid = errors.New("invalid counter argument")
	// ErrOverflow is returned when incrementing a counter past the largest
	// representable value. Wrapping silently would corrupt numbers shown to
	// end users.
	ErrOverflow = errors.New("counter overflow")
)

// RestartNever is the w:lvlRestart value meaning the level never restarts.
const RestartNever = 0

// StartSettings configures one (numId, level): where counting starts and at
// which lower level the counter restarts.
type StartSettings struct {
	Start           int
	Restart         *int // nil means unset: restart whenever a lower level intervenes
	StartOverridden bool // true when a lvlOverride startOverride supplied Start
}

// defaultStart is Word's start value when no settings were recorded.
const defaultStart = 1

type levelState struct {
	positions []int // ascending; counters are recorded in document order
	values    map[int]int
}

type listState struct {
	abstractID string
	levels     map[int]*levelState
}

type pathKey struct {
	numID string
	level int
	pos   int
}

// Engine is the numbering counter state machine. Not safe for concurrent
// use; drive it with a single forward pass over document order.
type Engine struct {
	starts map[string]map[int]StartSettings
	lists  map[string]*listState

	cacheEnabled bool
	pathCache    map[pathKey][]int
}

// New returns an empty engine with path caching disabled.
func New() *Engine {
	return &Engine{
		starts: make(map[string]map[int]StartSettings),
		lists:  make(map[string]*listState),
	}
}

func validate(numID string, level, pos int) error {
	if numID == "" {
		return fmt.Errorf("numId must be a non-empty string: %w", ErrInvalid)
	}
	if level < 0 {
		return fmt.Errorf("level %d must be non-negative: %w", level, ErrInvalid)
	}
	if pos < 0 {
		return fmt.Errorf("position %d must be non-negative: %w", pos, ErrInvalid)
	}
	return nil
}

// SetStartSettings records the start and restart configuration for one
// (numId, level).
func (e *Engine) SetStartSettings(numID string, level, start int, restart *int, startOverridden bool) error {
	if err := validate(numID, level, 0); err != nil {
		return err
	}
	levels := e.starts[numID]
	if levels == nil {
		levels = make(map[int]StartSettings)
		e.starts[numID] = levels
	}
	levels[level] = StartSettings{Start: start, Restart: restart, StartOverridden: startOverridden}
	return nil
}

// StartSettings returns the configuration for (numId, level), falling back
// to Word's defaults (start 1, restart unset).
func (e *Engine) StartSettings(numID string, level int) StartSettings {
	if levels, ok := e.starts[numID]; ok {
		if s, ok := levels[level]; ok {
			return s
		}
	}
	return StartSettings{Start: defaultStart}
}

// SetCounter records the explicit counter value at pos. Any cached ancestor
// paths for numId are invalidated: a new counter can change the nearest-prior
// result for every later position.
func (e *Engine) SetCounter(numID string, level, pos, value int, abstractID string) error {
	if err := validate(numID, level, pos); err != nil {
		return err
	}
	list := e.lists[numID]
	if list == nil {
		list = &listState{levels: make(map[int]*levelState)}
		e.lists[numID] = list
	}
	if abstractID != "" {
		list.abstractID = abstractID
	}
	ls := list.levels[level]
	if ls == nil {
		ls = &levelState{values: make(map[int]int)}
		list.levels[level] = ls
	}
	if _, exists := ls.values[pos]; !exists {
		i := sort.SearchInts(ls.positions, pos)
		ls.positions = append(ls.positions, 0)
		copy(ls.positions[i+1:], ls.positions[i:])
		ls.positions[i] = pos
	}
	ls.values[pos] = value

	for key := range e.pathCache {
		if key.numID == numID {
			delete(e.pathCache, key)
		}
	}
	return nil
}

// Counter returns the explicitly recorded value at exactly pos. The second
// result is false when nothing was recorded there.
func (e *Engine) Counter(numID string, level, pos int) (int, bool) {
	list := e.lists[numID]
	if list == nil {
		return 0, false
	}
	ls := list.levels[level]
	if ls == nil {
		return 0, false
	}
	v, ok := ls.values[pos]
	return v, ok
}

// previousAt finds the recorded counter at the nearest position strictly
// before pos on the given level.
func (e *Engine) previousAt(numID string, level, pos int) (prevPos, prevVal int, ok bool) {
	list := e.lists[numID]
	if list == nil {
		return 0, 0, false
	}
	ls := list.levels[level]
	if ls == nil || len(ls.positions) == 0 {
		return 0, 0, false
	}
	i := sort.SearchInts(ls.positions, pos)
	if i == 0 {
		return 0, 0, false
	}
	p := ls.positions[i-1]
	return p, ls.values[p], true
}

// lowerLevelUsed scans every level below the given one for a recorded
// position strictly between from and to, returning the minimum such level.
func (e *Engine) lowerLevelUsed(numID string, level, from, to int) (minLevel int, used bool) {
	list := e.lists[numID]
	if list == nil {
		return 0, false
	}
	for lv := 0; lv < level; lv++ {
		ls := list.levels[lv]
		if ls == nil {
			continue
		}
		i := sort.SearchInts(ls.positions, from+1)
		if i < len(ls.positions) && ls.positions[i] < to {
			return lv, true
		}
	}
	return 0, false
}

// CalculateCounter derives the counter Word would display at pos when no
// explicit value was recorded there.
func (e *Engine) CalculateCounter(numID string, level, pos int) (int, error) {
	if err := validate(numID, level, pos); err != nil {
		return 0, err
	}
	settings := e.StartSettings(numID, level)
	prevPos, prevVal, found := e.previousAt(numID, level, pos)

	// A "never restart" level counts straight through everything.
	if settings.Restart != nil && *settings.Restart == RestartNever {
		if !found {
			prevVal = settings.Start - 1
		}
		return increment(prevVal)
	}
	if !found {
		return settings.Start, nil
	}
	minLevel, used := e.lowerLevelUsed(numID, level, prevPos, pos)
	if !used {
		return increment(prevVal)
	}
	// A lower level intervened. Without an explicit restart level the
	// counter always restarts; otherwise only when the intervening level is
	// at or below the restart threshold.
	if settings.Restart == nil {
		return settings.Start, nil
	}
	if minLevel <= *settings.Restart {
		return settings.Start, nil
	}
	return increment(prevVal)
}

func increment(v int) (int, error) {
	if v >= math.MaxInt {
		return 0, fmt.Errorf("incrementing counter %d: %w", v, ErrOverflow)
	}
	return v + 1, nil
}

// AncestorsPath returns, for each level 0..level-1, the most recently
// recorded counter before pos, or that level's configured start when none was
// recorded. Used to build multi-level labels like "2.3.1".
func (e *Engine) AncestorsPath(numID string, level, pos int) ([]int, error) {
	if err := validate(numID, level, pos); err != nil {
		return nil, err
	}
	key := pathKey{numID: numID, level: level, pos: pos}
	if e.cacheEnabled {
		if cached, ok := e.pathCache[key]; ok {
			out := make([]int, len(cached))
			copy(out, cached)
			return out, nil
		}
	}
	path := make([]int, 0, level)
	for lv := 0; lv < level; lv++ {
		if _, v, ok := e.previousAt(numID, lv, pos); ok {
			path = append(path, v)
		} else {
			path = append(path, e.StartSettings(numID, lv).Start)
		}
	}
	if e.cacheEnabled {
		stored := make([]int, len(path))
		copy(stored, path)
		e.pathCache[key] = stored
	}
	return path, nil
}

// CalculatePath returns the ancestors path plus the explicitly recorded
// counter at pos when one exists. A position with no recorded counter yields
// the ancestors path alone.
func (e *Engine) CalculatePath(numID string, level, pos int) ([]int, error) {
	path, err := e.AncestorsPath(numID, level, pos)
	if err != nil {
		return nil, err
	}
	if v, ok := e.Counter(numID, level, pos); ok {
		path = append(path, v)
	}
	return path, nil
}

// EnableCache turns on ancestor-path caching. Toggling clears counters and
// cached paths but keeps start settings.
func (e *Engine) EnableCache() {
	e.clearCache()
	e.cacheEnabled = true
	e.pathCache = make(map[pathKey][]int)
}

// DisableCache turns caching off, clearing counters and cached paths.
func (e *Engine) DisableCache() {
	e.clearCache()
	e.cacheEnabled = false
}

// clearCache drops counters, cached paths and bookkeeping but keeps start
// settings.
func (e *Engine) clearCache() {
	e.lists = make(map[string]*listState)
	e.pathCache = nil
}

// ClearAllState resets everything, start settings included.
func (e *Engine) ClearAllState() {
	e.starts = make(map[string]map[int]StartSettings)
	e.lists = make(map[string]*listState)
	e.pathCache = nil
	e.cacheEnabled = false
}
