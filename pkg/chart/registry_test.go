package chart

import (
	"testing"

	"github.com/matzehuels/barfly/pkg/core/dataset"
	"github.com/matzehuels/barfly/pkg/core/surface"
)

func TestRegistryAttachIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	canvas := surface.NewCanvas(0, 0)

	first, created, err := reg.Attach(canvas, Options{Data: dataset.Sequence(1, 2, 3)}, staticSettings())
	if err != nil || !created {
		t.Fatalf("first Attach() = (%v, %v), want created", created, err)
	}
	second, created, err := reg.Attach(canvas, Options{Data: dataset.Sequence(9)}, staticSettings())
	if err != nil || created {
		t.Fatalf("second Attach() = (%v, %v), want existing chart", created, err)
	}
	if first != second {
		t.Error("second Attach() returned a different chart")
	}
	if canvas.Bars() != 3 {
		t.Errorf("Bars() = %d, want 3", canvas.Bars())
	}

	got, ok := reg.Lookup(canvas)
	if !ok || got != first {
		t.Error("Lookup() did not return the attached chart")
	}
	if _, ok := reg.Lookup(surface.NewCanvas(0, 0)); ok {
		t.Error("Lookup() found a chart for an unattached container")
	}

	if !reg.Detach(canvas) {
		t.Fatal("Detach() = false, want true")
	}
	if reg.Detach(canvas) {
		t.Error("second Detach() = true, want false")
	}
	if reg.Len() != 0 || canvas.Bars() != 0 {
		t.Errorf("after Detach: Len() = %d, Bars() = %d", reg.Len(), canvas.Bars())
	}
}

func TestRegistryAttachError(t *testing.T) {
	reg := NewRegistry()
	canvas := surface.NewCanvas(0, 0)
	_, _, err := reg.Attach(canvas, Options{
		Data: dataset.Keyed(
			dataset.Set{ID: "a", Values: []float64{1}},
			dataset.Set{ID: "a", Values: []float64{2}},
		),
	}, staticSettings())
	if err == nil {
		t.Fatal("Attach() with duplicate ids should fail")
	}
	if _, ok := reg.Lookup(canvas); ok {
		t.Error("failed Attach() registered a chart")
	}
}
