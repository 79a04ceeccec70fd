// Package dataset owns the named value sequences a chart can display.
//
// A [Store] commits to one of two shapes on the first successful
// [Store.AddData] call:
//
//   - single-set: the input was a flat [Sequence]; it is stored under
//     [SingleSetID] and no other dataset can ever be added.
//   - multi-set: the input was a [Keyed] collection; further keyed
//     collections may add more datasets, switchable with [Store.Activate].
//
// Input of the opposite shape is silently ignored once the store has
// committed. All datasets share the cardinality of the first one.
package dataset

import (
	"maps"
	"slices"

	"github.com/matzehuels/barfly/pkg/errors"
)

// SingleSetID is the key under which a single-set chart stores its data.
const SingleSetID = "1"

// Shape is the store's committed input shape.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeSingle
	ShapeMulti
)

func (s Shape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Set is one named dataset of a keyed input.
type Set struct {
	ID     string
	Values []float64
}

type inputKind int

const (
	kindNone inputKind = iota
	kindSequence
	kindKeyed
)

// Input is the argument of [Store.AddData]: either a flat sequence or a keyed
// collection of sequences. The zero value carries no data.
type Input struct {
	kind   inputKind
	values []float64
	sets   []Set
}

// Sequence returns a flat single-set input.
func Sequence(values ...float64) Input {
	return Input{kind: kindSequence, values: values}
}

// Keyed returns a keyed input. Datasets are added in argument order.
func Keyed(sets ...Set) Input {
	return Input{kind: kindKeyed, sets: sets}
}

// KeyedMap returns a keyed input from m, ordered by key.
func KeyedMap(m map[string][]float64) Input {
	sets := make([]Set, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		sets = append(sets, Set{ID: id, Values: m[id]})
	}
	return Keyed(sets...)
}

// IsZero reports whether the input carries no data.
func (in Input) IsZero() bool { return in.kind == kindNone }

// IsSequence reports whether the input is a flat sequence.
func (in Input) IsSequence() bool { return in.kind == kindSequence }

// IsKeyed reports whether the input is a keyed collection.
func (in Input) IsKeyed() bool { return in.kind == kindKeyed }

// Values returns the flat values of a sequence input.
func (in Input) Values() []float64 { return in.values }

// Sets returns the datasets of a keyed input.
func (in Input) Sets() []Set { return in.sets }

// Listener receives dataset lifecycle notifications.
type Listener interface {
	OnAdded(id string)
	OnActivated(id string)
}

// Observer is told about every dataset accepted by the store.
// [scale.Resolver] satisfies it.
type Observer interface {
	Observe(values []float64)
}

// Option configures a [Store].
type Option func(*Store)

// WithListener registers l for added/activated notifications.
func WithListener(l Listener) Option { return func(s *Store) { s.listener = l } }

// WithObserver registers o to observe every accepted dataset.
func WithObserver(o Observer) Option { return func(s *Store) { s.observer = o } }

// Store holds a chart's datasets and its active selection.
type Store struct {
	shape       Shape
	sets        map[string][]float64
	order       []string
	active      string
	cardinality int
	listener    Listener
	observer    Observer
}

// NewStore returns an empty store with no committed shape.
func NewStore(opts ...Option) *Store {
	s := &Store{sets: make(map[string][]float64), cardinality: -1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddData adds the datasets carried by in and returns the ids that were
// added. Input whose shape conflicts with the committed shape is ignored
// without error. A dataset whose length differs from the store's
// cardinality, or whose id is invalid or already present, is rejected with
// an error; datasets before it in the same input remain added.
func (s *Store) AddData(in Input) ([]string, error) {
	switch in.kind {
	case kindSequence:
		if s.shape != ShapeUnknown {
			return nil, nil
		}
		if err := s.checkLength(SingleSetID, in.values); err != nil {
			return nil, err
		}
		s.shape = ShapeSingle
		s.add(SingleSetID, in.values)
		return []string{SingleSetID}, nil

	case kindKeyed:
		if s.shape == ShapeSingle {
			return nil, nil
		}
		s.shape = ShapeMulti
		var added []string
		for _, set := range in.sets {
			if err := s.validate(set); err != nil {
				return added, err
			}
			s.add(set.ID, set.Values)
			added = append(added, set.ID)
		}
		return added, nil
	}
	return nil, nil
}

// Validate reports the error AddData would return for in on an empty store,
// without keeping anything or notifying anyone.
func Validate(in Input) error {
	_, err := NewStore().AddData(in)
	return err
}

func (s *Store) validate(set Set) error {
	if err := errors.ValidateDatasetID(set.ID); err != nil {
		return err
	}
	if _, exists := s.sets[set.ID]; exists {
		return errors.New(errors.ErrCodeDuplicateSet, "dataset %q already exists", set.ID)
	}
	return s.checkLength(set.ID, set.Values)
}

func (s *Store) checkLength(id string, values []float64) error {
	if s.cardinality >= 0 && len(values) != s.cardinality {
		return errors.New(errors.ErrCodeLengthMismatch,
			"dataset %q has %d values, want %d", id, len(values), s.cardinality)
	}
	return nil
}

func (s *Store) add(id string, values []float64) {
	s.sets[id] = slices.Clone(values)
	s.order = append(s.order, id)
	if s.cardinality < 0 {
		s.cardinality = len(values)
	}
	if s.active == "" {
		s.SetActive(id)
	}
	if s.observer != nil {
		s.observer.Observe(values)
	}
	if s.listener != nil {
		s.listener.OnAdded(id)
	}
}

// Activate makes id the active dataset. It fails unless the store is in
// multi-set mode, id exists and id is not already active.
func (s *Store) Activate(id string) (string, bool) {
	if s.shape != ShapeMulti {
		return "", false
	}
	return s.SetActive(id)
}

// SetActive makes id active regardless of shape. It fails when id is unknown
// or already active. This is the path used for a chart's initial selection.
func (s *Store) SetActive(id string) (string, bool) {
	if _, ok := s.sets[id]; !ok || s.active == id {
		return "", false
	}
	s.active = id
	if s.listener != nil {
		s.listener.OnActivated(id)
	}
	return id, true
}

// Active returns the active dataset id, if any.
func (s *Store) Active() (string, bool) { return s.active, s.active != "" }

// ActiveValues returns the values of the active dataset, or nil.
func (s *Store) ActiveValues() []float64 {
	if s.active == "" {
		return nil
	}
	return s.sets[s.active]
}

// Values returns the values stored under id.
func (s *Store) Values(id string) ([]float64, bool) {
	v, ok := s.sets[id]
	return v, ok
}

// IDs returns all dataset ids in insertion order.
func (s *Store) IDs() []string { return slices.Clone(s.order) }

// Shape returns the committed shape.
func (s *Store) Shape() Shape { return s.shape }

// Multiset reports whether the store committed to multi-set mode.
func (s *Store) Multiset() bool { return s.shape == ShapeMulti }

// Len returns the number of datasets.
func (s *Store) Len() int { return len(s.order) }

// Cardinality returns the shared dataset length, or -1 before any dataset
// has been added.
func (s *Store) Cardinality() int { return s.cardinality }
