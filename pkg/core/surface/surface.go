// Package surface defines the host element abstraction a chart draws into.
//
// A chart never touches a concrete UI toolkit. It talks to a [Container]
// holding bar [Element] handles; hosts adapt their own elements to these
// interfaces. [Canvas] is the in-memory implementation used by the renderers
// and the CLI.
package surface

import "github.com/matzehuels/barfly/pkg/core/style"

// Element is one bar placeholder inside a container.
type Element interface {
	// AddClass tags the element.
	AddClass(names ...string)
	// ApplyStyle merges st into the element's current style.
	ApplyStyle(st style.Style)
	// SetBox positions the element. Width is the content width in pixels.
	SetBox(left, bottom, width int)
	// SetHeight sets the content height in pixels.
	SetHeight(h int)
	// Height returns the current content height.
	Height() int
}

// Container is the host element a chart is attached to.
type Container interface {
	AddClass(names ...string)
	ApplyStyle(st style.Style)

	// Size returns the content box size.
	Size() (width, height int)
	// SetSize sets the content box size.
	SetSize(width, height int)
	// InnerSize returns the content box plus padding.
	InnerSize() (width, height int)

	// AppendBars creates n bar elements at the end of the container.
	AppendBars(n int) []Element
	// RemoveBars removes every bar element.
	RemoveBars()
}
