// Package scene computes the view state of the leverage scatter plot.
//
// Everything here is a pure function of a sample, its fit and the chart
// dimensions: pixel positions, colours, line segments and label text. Drawing
// the result is left to the caller, so the same state can drive an SVG
// renderer, a terminal plot or a JSON dump.
//
// Coordinates follow the usual chart convention: x grows to the right from
// the left margin and y grows downwards from the top margin, so the y scale
// maps the data domain onto [BoundedHeight, 0].
//
//	dims, _ := scene.NewDimensions(560, 560)
//	state, err := scene.Compute(sample, model, dims)
//	...
//	overlay, err := scene.ComputeFrame(state, frame)
package scene
