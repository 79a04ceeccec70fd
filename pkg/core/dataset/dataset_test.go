package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/barfly/pkg/errors"
)

type recorder struct {
	events []string
}

func (r *recorder) OnAdded(id string)     { r.events = append(r.events, "added:"+id) }
func (r *recorder) OnActivated(id string) { r.events = append(r.events, "activated:"+id) }

type observer struct {
	seen [][]float64
}

func (o *observer) Observe(values []float64) { o.seen = append(o.seen, values) }

func TestAddDataSingleSet(t *testing.T) {
	rec := &recorder{}
	s := NewStore(WithListener(rec))

	added, err := s.AddData(Sequence(1, 2, 3, 4))
	if err != nil {
		t.Fatalf("AddData error: %v", err)
	}
	if diff := cmp.Diff([]string{SingleSetID}, added); diff != "" {
		t.Errorf("added ids mismatch (-want +got):\n%s", diff)
	}
	if s.Shape() != ShapeSingle {
		t.Errorf("Shape() = %v, want %v", s.Shape(), ShapeSingle)
	}
	if id, ok := s.Active(); !ok || id != SingleSetID {
		t.Errorf("Active() = %q, %v; want %q, true", id, ok, SingleSetID)
	}
	want := []string{"activated:1", "added:1"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestAddDataMultiSet(t *testing.T) {
	rec := &recorder{}
	obs := &observer{}
	s := NewStore(WithListener(rec), WithObserver(obs))

	added, err := s.AddData(Keyed(
		Set{ID: "a", Values: []float64{1, 2}},
		Set{ID: "b", Values: []float64{3, 4}},
	))
	if err != nil {
		t.Fatalf("AddData error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, added); diff != "" {
		t.Errorf("added mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, s.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
	if id, _ := s.Active(); id != "a" {
		t.Errorf("Active() = %q, want first added set %q", id, "a")
	}
	if len(obs.seen) != 2 {
		t.Errorf("observer saw %d datasets, want 2", len(obs.seen))
	}
	want := []string{"activated:a", "added:a", "added:b"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeCommitment(t *testing.T) {
	tests := []struct {
		name      string
		first     Input
		second    Input
		wantShape Shape
		wantIDs   []string
	}{
		{
			name:      "keyed after sequence is ignored",
			first:     Sequence(5, 5, 5),
			second:    Keyed(Set{ID: "x", Values: []float64{1, 2, 3}}),
			wantShape: ShapeSingle,
			wantIDs:   []string{SingleSetID},
		},
		{
			name:      "sequence after sequence is ignored",
			first:     Sequence(5, 5, 5),
			second:    Sequence(100),
			wantShape: ShapeSingle,
			wantIDs:   []string{SingleSetID},
		},
		{
			name:      "sequence after keyed is ignored",
			first:     Keyed(Set{ID: "a", Values: []float64{1}}),
			second:    Sequence(9),
			wantShape: ShapeMulti,
			wantIDs:   []string{"a"},
		},
		{
			name:      "keyed after keyed is accepted",
			first:     Keyed(Set{ID: "a", Values: []float64{1}}),
			second:    Keyed(Set{ID: "b", Values: []float64{2}}),
			wantShape: ShapeMulti,
			wantIDs:   []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			s := NewStore(WithListener(rec))
			if _, err := s.AddData(tt.first); err != nil {
				t.Fatalf("first AddData error: %v", err)
			}
			before := len(rec.events)

			added, err := s.AddData(tt.second)
			if err != nil {
				t.Fatalf("second AddData error: %v", err)
			}
			if s.Shape() != tt.wantShape {
				t.Errorf("Shape() = %v, want %v", s.Shape(), tt.wantShape)
			}
			if diff := cmp.Diff(tt.wantIDs, s.IDs()); diff != "" {
				t.Errorf("IDs mismatch (-want +got):\n%s", diff)
			}
			if len(tt.wantIDs) == 1 {
				if len(added) != 0 {
					t.Errorf("ignored input reported added ids %v", added)
				}
				if len(rec.events) != before {
					t.Errorf("ignored input emitted events %v", rec.events[before:])
				}
			}
		})
	}
}

func TestActivate(t *testing.T) {
	rec := &recorder{}
	s := NewStore(WithListener(rec))
	s.AddData(KeyedMap(map[string][]float64{"b": {3, 4}, "a": {1, 2}}))

	if id, _ := s.Active(); id != "a" {
		t.Fatalf("Active() = %q, want %q (KeyedMap sorts keys)", id, "a")
	}

	if id, ok := s.Activate("b"); !ok || id != "b" {
		t.Errorf("Activate(b) = %q, %v; want b, true", id, ok)
	}

	before := len(rec.events)
	if _, ok := s.Activate("b"); ok {
		t.Error("Activate on the active id should fail")
	}
	if _, ok := s.Activate("missing"); ok {
		t.Error("Activate on an unknown id should fail")
	}
	if len(rec.events) != before {
		t.Errorf("failed activations emitted events %v", rec.events[before:])
	}

	values := s.ActiveValues()
	if diff := cmp.Diff([]float64{3, 4}, values); diff != "" {
		t.Errorf("ActiveValues mismatch (-want +got):\n%s", diff)
	}
}

func TestActivateSingleSetFails(t *testing.T) {
	s := NewStore()
	s.AddData(Sequence(1, 2))
	if _, ok := s.Activate(SingleSetID); ok {
		t.Error("Activate should fail outside multi-set mode")
	}
}

func TestSetActiveBypassesShape(t *testing.T) {
	s := NewStore()
	s.AddData(Keyed(Set{ID: "a", Values: []float64{1}}, Set{ID: "b", Values: []float64{2}}))
	if _, ok := s.SetActive("b"); !ok {
		t.Error("SetActive(b) should succeed")
	}
	if _, ok := s.SetActive("b"); ok {
		t.Error("SetActive on the active id should fail")
	}
}

func TestLengthMismatch(t *testing.T) {
	rec := &recorder{}
	s := NewStore(WithListener(rec))

	added, err := s.AddData(Keyed(
		Set{ID: "a", Values: []float64{1, 2}},
		Set{ID: "b", Values: []float64{1, 2, 3}},
		Set{ID: "c", Values: []float64{3, 4}},
	))
	if !errors.Is(err, errors.ErrCodeLengthMismatch) {
		t.Fatalf("AddData error = %v, want %s", err, errors.ErrCodeLengthMismatch)
	}
	if diff := cmp.Diff([]string{"a"}, added); diff != "" {
		t.Errorf("added mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.Values("b"); ok {
		t.Error("rejected dataset should not be stored")
	}
	if s.Cardinality() != 2 {
		t.Errorf("Cardinality() = %d, want 2", s.Cardinality())
	}
}

func TestDuplicateAndInvalidIDs(t *testing.T) {
	s := NewStore()
	s.AddData(Keyed(Set{ID: "a", Values: []float64{1}}))

	_, err := s.AddData(Keyed(Set{ID: "a", Values: []float64{9}}))
	if !errors.Is(err, errors.ErrCodeDuplicateSet) {
		t.Errorf("duplicate error = %v, want %s", err, errors.ErrCodeDuplicateSet)
	}
	if v, _ := s.Values("a"); v[0] != 1 {
		t.Errorf("duplicate add replaced values: %v", v)
	}

	_, err = s.AddData(Keyed(Set{ID: "", Values: []float64{9}}))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty id error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestStoredValuesAreCopied(t *testing.T) {
	values := []float64{1, 2, 3}
	s := NewStore()
	s.AddData(Sequence(values...))
	values[0] = 99

	if got, _ := s.Values(SingleSetID); got[0] != 1 {
		t.Errorf("stored values changed with caller slice: %v", got)
	}
}

func TestZeroInput(t *testing.T) {
	s := NewStore()
	added, err := s.AddData(Input{})
	if err != nil || added != nil || s.Shape() != ShapeUnknown {
		t.Errorf("zero input should be a no-op, got %v, %v, %v", added, err, s.Shape())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		code errors.Code
	}{
		{"empty", Input{}, ""},
		{"sequence", Sequence(1, 2), ""},
		{"keyed", Keyed(Set{ID: "a", Values: []float64{1}}, Set{ID: "b", Values: []float64{2}}), ""},
		{"length mismatch", Keyed(Set{ID: "a", Values: []float64{1, 2}}, Set{ID: "b", Values: []float64{2}}), errors.ErrCodeLengthMismatch},
		{"duplicate", Keyed(Set{ID: "a", Values: []float64{1}}, Set{ID: "a", Values: []float64{2}}), errors.ErrCodeDuplicateSet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Validate() = %v, want code %q", err, tt.code)
			}
		})
	}
}
