package dnd

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/ordering"
)

// Listener observes the state after each command that changed it
type Listener func(state State)

// Engine holds the optimistic local lists for a set of scopes. All commands are
// applied under one lock, and each produces at most one listener notification.
type Engine struct {
	mu         sync.Mutex
	lists      Lists
	snapshot   Lists
	gesture    *Gesture
	stale      map[ordering.Scope]bool
	listeners  map[int]Listener
	nextID     int
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewEngine creates an idle engine whose local lists and snapshot both start as initial
func NewEngine(initial Lists, dispatcher Dispatcher, logger *zap.Logger) *Engine {
	if initial == nil {
		initial = Lists{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		lists:      initial.Clone(),
		snapshot:   initial.Clone(),
		stale:      make(map[ordering.Scope]bool),
		listeners:  make(map[int]Listener),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Subscribe registers l and returns a function that removes it
func (e *Engine) Subscribe(l Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = l
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
	}
}

// State returns a deep copy of the current state
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	state := State{
		Lists:    e.lists.Clone(),
		Snapshot: e.snapshot.Clone(),
	}
	if e.gesture != nil {
		g := *e.gesture
		state.Gesture = &g
	}
	return state
}

// Apply runs one command. A rejected command leaves the state untouched.
func (e *Engine) Apply(cmd Command) error {
	e.mu.Lock()

	var (
		event *FinalizeEvent
		err   error
	)
	switch c := cmd.(type) {
	case Consider:
		err = e.consider(c)
	case Finalize:
		event, err = e.finalize(c)
	case Cancel:
		err = e.cancel()
	case *Consider:
		err = e.consider(*c)
	case *Finalize:
		event, err = e.finalize(*c)
	case *Cancel:
		err = e.cancel()
	default:
		err = fmt.Errorf("dnd: unknown command %T", cmd)
	}
	if err != nil {
		e.mu.Unlock()
		return err
	}

	state := e.stateLocked()
	listeners := make([]Listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		listeners = append(listeners, l)
	}
	e.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
	if event != nil && e.dispatcher != nil {
		e.dispatcher.Dispatch(*event)
	}
	return nil
}

// Resync replaces the persisted snapshot for the given scopes. Local lists follow
// immediately when no gesture is active; otherwise they are replaced when the
// gesture ends, unless the gesture's own finalize supersedes them.
func (e *Engine) Resync(lists Lists) {
	e.mu.Lock()

	for scope, items := range lists {
		e.snapshot[scope] = append([]Item(nil), items...)
		if e.gesture == nil {
			e.lists[scope] = append([]Item(nil), items...)
		} else {
			e.stale[scope] = true
		}
	}
	deferred := e.gesture != nil

	state := e.stateLocked()
	listeners := make([]Listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		listeners = append(listeners, l)
	}
	e.mu.Unlock()

	if deferred {
		e.logger.Debug("Resync deferred until gesture ends", zap.Int("scopes", len(lists)))
		return
	}
	for _, l := range listeners {
		l(state)
	}
}

func (e *Engine) begin(itemID uuid.UUID) error {
	if itemID == uuid.Nil {
		return ErrNoItem
	}
	if e.gesture != nil {
		if e.gesture.ItemID != itemID {
			return ErrGestureInProgress
		}
		return nil
	}
	origin, ok := e.snapshot.Locate(itemID)
	if !ok {
		if origin, ok = e.lists.Locate(itemID); !ok {
			return ErrUnknownItem
		}
	}
	e.gesture = &Gesture{ItemID: itemID, Origin: origin}
	return nil
}

// merge builds the next local lists from candidates. When the item is a candidate
// in several scopes, the one that is not its current local scope wins, and the
// item is removed from every other list in the same transition.
func (e *Engine) merge(itemID uuid.UUID, candidates Lists) (Lists, error) {
	for scope := range candidates {
		if _, ok := e.lists[scope]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScope, scope)
		}
		if err := ordering.ValidateOrder(candidates.IDs(scope)); err != nil {
			return nil, err
		}
	}

	current, hasCurrent := e.lists.Locate(itemID)

	var holders []ordering.Scope
	for scope, items := range candidates {
		if indexOf(items, itemID) >= 0 {
			holders = append(holders, scope)
		}
	}

	var (
		owner    ordering.Scope
		hasOwner bool
	)
	switch {
	case len(holders) == 1:
		owner, hasOwner = holders[0], true
	case len(holders) > 1:
		for _, scope := range holders {
			if hasCurrent && scope == current {
				continue
			}
			if hasOwner {
				return nil, ErrAmbiguousDrop
			}
			owner, hasOwner = scope, true
		}
	}

	next := e.lists.Clone()
	for scope, items := range candidates {
		next[scope] = append([]Item(nil), items...)
	}
	if hasOwner {
		for scope, items := range next {
			if scope != owner && indexOf(items, itemID) >= 0 {
				next[scope] = without(items, itemID)
			}
		}
	}
	return next, nil
}

func (e *Engine) consider(c Consider) error {
	hadGesture := e.gesture != nil
	if err := e.begin(c.ItemID); err != nil {
		return err
	}
	next, err := e.merge(c.ItemID, c.Candidates)
	if err != nil {
		if !hadGesture {
			e.gesture = nil
		}
		return err
	}
	e.lists = next
	return nil
}

func (e *Engine) finalize(c Finalize) (*FinalizeEvent, error) {
	if c.Trigger == TriggerDroppedOutside {
		if c.ItemID == uuid.Nil {
			return nil, ErrNoItem
		}
		if e.gesture != nil && e.gesture.ItemID != c.ItemID {
			return nil, ErrGestureInProgress
		}
		return nil, e.cancel()
	}

	hadGesture := e.gesture != nil
	if err := e.begin(c.ItemID); err != nil {
		return nil, err
	}
	next, err := e.merge(c.ItemID, c.Candidates)
	if err != nil {
		if !hadGesture {
			e.gesture = nil
		}
		return nil, err
	}
	destination, ok := next.Locate(c.ItemID)
	if !ok {
		if !hadGesture {
			e.gesture = nil
		}
		return nil, ErrItemLost
	}

	origin := e.gesture.Origin
	event := &FinalizeEvent{
		ItemID:           c.ItemID,
		ItemKind:         itemKindOf(destination),
		SourceScope:      origin,
		DestinationScope: destination,
		Orders:           map[ordering.Scope][]uuid.UUID{destination: next.IDs(destination)},
		Trigger:          TriggerDroppedIntoZone,
		Source:           c.Source,
	}
	if event.Source == "" {
		event.Source = SourcePointer
	}
	if origin != destination {
		event.Trigger = TriggerDroppedIntoAnother
		event.Orders[origin] = next.IDs(origin)
	}
	if c.Trigger != "" && c.Trigger != event.Trigger {
		e.logger.Debug("Finalize trigger reclassified",
			zap.String("reported", string(c.Trigger)),
			zap.String("derived", string(event.Trigger)),
		)
	}

	for scope := range e.stale {
		if _, written := event.Orders[scope]; !written {
			next[scope] = append([]Item(nil), e.snapshot[scope]...)
		}
	}
	for scope := range event.Orders {
		e.snapshot[scope] = append([]Item(nil), next[scope]...)
	}
	e.lists = next
	e.gesture = nil
	e.stale = make(map[ordering.Scope]bool)
	return event, nil
}

func (e *Engine) cancel() error {
	if e.gesture == nil {
		return nil
	}
	e.lists = e.snapshot.Clone()
	e.gesture = nil
	e.stale = make(map[ordering.Scope]bool)
	return nil
}
