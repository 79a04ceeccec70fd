package chart_test

import (
	"fmt"

	"github.com/matzehuels/barfly/pkg/chart"
	"github.com/matzehuels/barfly/pkg/config"
	"github.com/matzehuels/barfly/pkg/core/dataset"
	"github.com/matzehuels/barfly/pkg/core/surface"
)

func Example() {
	settings := config.Default()
	settings.Animation = nil

	canvas := surface.NewCanvas(300, 100)
	c, err := chart.New(canvas, chart.Options{
		Data: dataset.Keyed(
			dataset.Set{ID: "2023", Values: []float64{3, 5, 2}},
			dataset.Set{ID: "2024", Values: []float64{4, 1, 6}},
		),
		Listener: chart.ListenerFuncs{
			Drawn: func(id string, animated bool) { fmt.Println("drawn", id) },
		},
	}, settings)
	if err != nil {
		panic(err)
	}

	c.Activate("2024")
	for _, b := range c.Geometry() {
		fmt.Printf("left=%d width=%d height=%d\n", b.Left, b.Width, b.Height)
	}
	// Output:
	// drawn 2023
	// drawn 2024
	// left=0 width=98 height=58
	// left=100 width=98 height=0
	// left=200 width=98 height=98
}
