package stn

import (
	"sort"

	"github.com/haldane-labs/nysm-stn/internal/apsp"
	"github.com/haldane-labs/nysm-stn/internal/interval"
	"github.com/haldane-labs/nysm-stn/internal/ir"
)

// Recorder receives a MutationRecord for every state change a Schedule
// makes, in the order they occur. A recorder failure never rolls back
// the mutation: the audit log is derived from the Schedule, not the
// other way around.
type Recorder interface {
	Record(rec ir.MutationRecord) error
}

// nopRecorder discards every record. Used when a Schedule is built
// without a Recorder.
type nopRecorder struct{}

func (nopRecorder) Record(ir.MutationRecord) error { return nil }

// Schedule is a Simple Temporal Network: a set of Events linked by
// signed delay edges, plus the derived all-pairs distance matrix, the
// admissible execution window of every Event, and the Events already
// committed to a concrete time.
//
// A Schedule is single-writer: it is safe to share a *Schedule across
// goroutines only if the caller serializes access.
type Schedule struct {
	id    string
	clock clock

	nextEvent int64
	events    map[Event]bool
	hasRoot   bool
	rootEvent Event

	edges        map[apsp.Edge]float64
	dispatchable apsp.Matrix
	windows      map[Event]interval.Interval
	commitments  map[Event]float64
	dirty        bool

	recorder Recorder
}

// NewSchedule creates an empty Schedule identified by id. A nil
// recorder is replaced with one that discards every record.
func NewSchedule(id string, recorder Recorder) *Schedule {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Schedule{
		id:          id,
		events:      make(map[Event]bool),
		edges:       make(map[apsp.Edge]float64),
		windows:     make(map[Event]interval.Interval),
		commitments: make(map[Event]float64),
		dirty:       true,
		recorder:    recorder,
	}
}

func (s *Schedule) record(rec ir.MutationRecord) error {
	rec.ScheduleID = s.id
	rec.Seq = s.clock.next()
	return s.recorder.Record(rec)
}

// createEvent allocates a new Event with an unbounded execution window
// and marks the Schedule dirty. It does not record a mutation on its
// own: CreateEvent records create_event for a bare event, and
// AddEpisode records a single add_episode covering both of its events.
func (s *Schedule) createEvent() Event {
	e := Event(s.nextEvent)
	s.nextEvent++
	s.events[e] = true
	s.windows[e] = interval.Unbounded()
	if !s.hasRoot {
		s.hasRoot = true
		s.rootEvent = e
	}
	s.dirty = true
	return e
}

// CreateEvent allocates a bare Event not attached to any Episode and
// records a create_event mutation.
func (s *Schedule) CreateEvent() (Event, error) {
	e := s.createEvent()
	if err := s.record(ir.MutationRecord{Kind: ir.KindCreateEvent, EventA: int64(e)}); err != nil {
		return e, err
	}
	return e, nil
}

// AddEpisode creates a new Episode whose duration is constrained to
// dur. With no argument the duration defaults to [0, 0] (instantaneous).
func (s *Schedule) AddEpisode(dur ...interval.Interval) (Episode, error) {
	d := interval.New(0, 0)
	if len(dur) > 0 {
		d = dur[0]
	}
	if d.Lower() > d.Upper() {
		return Episode{}, &InvalidInterval{Lo: d.Lower(), Hi: d.Upper()}
	}

	start := s.createEvent()
	end := s.createEvent()
	s.edges[apsp.Edge{From: int64(start), To: int64(end)}] = d.Upper()
	s.edges[apsp.Edge{From: int64(end), To: int64(start)}] = -d.Lower()
	s.dirty = true

	ep := Episode{Start: start, End: end}
	err := s.record(ir.MutationRecord{
		Kind:      ir.KindAddEpisode,
		EventA:    int64(start),
		EventB:    int64(end),
		Lo:        d.Lower(),
		Hi:        d.Upper(),
		HasBounds: true,
	})
	return ep, err
}

// FreeEpisode removes an Episode's two Events and every edge touching
// them from the Schedule. Any constraint referencing a freed Event
// becomes unreachable; a subsequent Interval/EventDistance query
// against a freed Event returns UnknownEvent.
func (s *Schedule) FreeEpisode(ep Episode) error {
	if !s.events[ep.Start] || !s.events[ep.End] {
		return &UnknownEpisode{Episode: ep}
	}
	for _, e := range []Event{ep.Start, ep.End} {
		delete(s.events, e)
		delete(s.windows, e)
		delete(s.commitments, e)
	}
	for edge := range s.edges {
		if Event(edge.From) == ep.Start || Event(edge.From) == ep.End ||
			Event(edge.To) == ep.Start || Event(edge.To) == ep.End {
			delete(s.edges, edge)
		}
	}
	s.dirty = true
	return s.record(ir.MutationRecord{Kind: ir.KindFreeEpisode, EventA: int64(ep.Start), EventB: int64(ep.End)})
}

// GetDuration returns the currently admissible duration Interval of an
// Episode: the explicit duration until other constraints tighten it,
// then the tighter derived value. Compile runs first if the Schedule is
// dirty.
func (s *Schedule) GetDuration(ep Episode) (interval.Interval, error) {
	if !s.events[ep.Start] || !s.events[ep.End] {
		return interval.Interval{}, &UnknownEpisode{Episode: ep}
	}
	if err := s.Compile(); err != nil {
		return interval.Interval{}, err
	}
	return s.interval(ep.Start, ep.End)
}

func (s *Schedule) edgeOrZero(from, to Event) float64 {
	if w, ok := s.edges[apsp.Edge{From: int64(from), To: int64(to)}]; ok {
		return w
	}
	return 0
}

// AddConstraint installs a binary delay constraint between two
// existing Events: target must occur within iv (default [0, 0]) of
// source. Both signed edges are installed unconditionally, replacing
// whatever was there before: the last call wins, so a later call can
// widen as well as narrow a prior bound (call Interval first and Union
// the result yourself if you want to combine with what is already
// implied).
func (s *Schedule) AddConstraint(source, target Event, iv ...interval.Interval) error {
	if !s.events[source] {
		return &UnknownEvent{Event: source, Verb: "add constraint"}
	}
	if !s.events[target] {
		return &UnknownEvent{Event: target, Verb: "add constraint"}
	}
	d := interval.New(0, 0)
	if len(iv) > 0 {
		d = iv[0]
	}
	if d.Lower() > d.Upper() {
		return &InvalidInterval{Lo: d.Lower(), Hi: d.Upper()}
	}

	s.edges[apsp.Edge{From: int64(source), To: int64(target)}] = d.Upper()
	s.edges[apsp.Edge{From: int64(target), To: int64(source)}] = -d.Lower()
	s.dirty = true

	return s.record(ir.MutationRecord{
		Kind:      ir.KindAddConstraint,
		EventA:    int64(source),
		EventB:    int64(target),
		Lo:        d.Lower(),
		Hi:        d.Upper(),
		HasBounds: true,
	})
}

// Compile runs the all-pairs-shortest-paths kernel over the raw
// constraint graph and rebuilds the dispatchable graph from the
// result. It is a no-op if nothing has changed since the last Compile.
//
// dirty is cleared before commitments are reapplied, because
// commitEvent calls Compile internally; clearing first breaks that
// recursion instead of looping forever.
func (s *Schedule) Compile() error {
	if !s.dirty {
		return nil
	}

	nodes := make([]int64, 0, len(s.events))
	for e := range s.events {
		nodes = append(nodes, int64(e))
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	m, err := apsp.FloydWarshall(nodes, s.edges)
	if err != nil {
		return err
	}
	s.dispatchable = m
	s.dirty = false

	commitments := make(map[Event]float64, len(s.commitments))
	for e, t := range s.commitments {
		commitments[e] = t
	}
	for e, t := range commitments {
		if err := s.commitEvent(e, t); err != nil {
			return err
		}
	}
	return nil
}

// updateSchedule tightens the execution window of every dispatchable
// neighbor of event that has not itself been committed, given event's
// own (now-fixed) window.
func (s *Schedule) updateSchedule(event Event) error {
	if err := s.Compile(); err != nil {
		return err
	}
	eventWindow, ok := s.windows[event]
	if !ok {
		return &UnknownEvent{Event: event, Verb: "propagate"}
	}

	for _, other := range s.neighbors(event) {
		if _, committed := s.commitments[other]; committed {
			continue
		}
		gap, err := s.interval(event, other)
		if err != nil {
			continue
		}
		neighborWindow, ok := s.windows[other]
		if !ok {
			continue
		}
		tightened := neighborWindow.Union(eventWindow.Add(gap))
		s.windows[other] = tightened
	}
	return nil
}

// neighbors returns every event reachable from event in the
// dispatchable graph, in ascending order for determinism.
func (s *Schedule) neighbors(event Event) []Event {
	var out []Event
	row, ok := s.dispatchable[int64(event)]
	if !ok {
		return out
	}
	for v := range row {
		if v == int64(event) {
			continue
		}
		out = append(out, Event(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Events returns every live event, in ascending id order.
func (s *Schedule) Events() []Event {
	out := make([]Event, 0, len(s.events))
	for e := range s.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CommitEvent fixes event to a concrete time, narrowing its window to
// [time, time], then propagates the resulting tightening to every
// uncommitted dispatchable neighbor.
func (s *Schedule) CommitEvent(event Event, time float64) error {
	if !s.events[event] {
		return &UnknownEvent{Event: event, Verb: "commit"}
	}
	if err := s.commitEvent(event, time); err != nil {
		return err
	}
	return s.record(ir.MutationRecord{Kind: ir.KindCommitEvent, EventA: int64(event), CommitTime: time})
}

func (s *Schedule) commitEvent(event Event, time float64) error {
	s.commitments[event] = time
	s.windows[event] = interval.New(time, time)
	return s.updateSchedule(event)
}

// CompleteEpisode commits an Episode's end Event to time, marking the
// activity finished.
func (s *Schedule) CompleteEpisode(ep Episode, time float64) error {
	if !s.events[ep.Start] || !s.events[ep.End] {
		return &UnknownEpisode{Episode: ep}
	}
	return s.CommitEvent(ep.End, time)
}

// Window returns the current admissible execution Interval of event.
func (s *Schedule) Window(event Event) (interval.Interval, error) {
	w, ok := s.windows[event]
	if !ok {
		return interval.Interval{}, &UnknownEvent{Event: event, Verb: "window"}
	}
	return w, nil
}

// Interval returns the dispatchable-graph delay Interval from source
// to target: target occurs within [lo, hi] of source. Compile runs
// first if the Schedule is dirty.
func (s *Schedule) Interval(source, target Event) (interval.Interval, error) {
	if !s.events[source] {
		return interval.Interval{}, &UnknownEvent{Event: source, Verb: "interval"}
	}
	if !s.events[target] {
		return interval.Interval{}, &UnknownEvent{Event: target, Verb: "interval"}
	}
	if err := s.Compile(); err != nil {
		return interval.Interval{}, err
	}
	return s.interval(source, target)
}

// interval is Interval without the dirty check or event-existence
// check, for internal callers that have already run Compile. A
// direction with no path is unbounded (interval.HUGE), so two events
// with no path either way yield [-HUGE, +HUGE].
func (s *Schedule) interval(source, target Event) (interval.Interval, error) {
	upper := s.dispatchable.Get(int64(source), int64(target))
	lower := s.dispatchable.Get(int64(target), int64(source))
	return interval.New(-lower, upper), nil
}

// EventDistance returns the raw signed shortest-path distance from
// source to target in the dispatchable graph (positive means target
// may trail source by up to that much; it is not an Interval).
func (s *Schedule) EventDistance(source, target Event) (float64, error) {
	if !s.events[source] {
		return 0, &UnknownEvent{Event: source, Verb: "event distance"}
	}
	if !s.events[target] {
		return 0, &UnknownEvent{Event: target, Verb: "event distance"}
	}
	if err := s.Compile(); err != nil {
		return 0, err
	}
	d, ok := s.dispatchable[int64(source)][int64(target)]
	if !ok {
		return 0, &UnknownEvent{Event: target, Verb: "event distance (no path)"}
	}
	return d, nil
}

// Root returns the first Event ever created in this Schedule. Every
// other Event's window is ultimately expressed relative to it once
// Compile has run.
func (s *Schedule) Root() (Event, error) {
	if !s.hasRoot || !s.events[s.rootEvent] {
		return 0, &EmptySchedule{}
	}
	return s.rootEvent, nil
}
