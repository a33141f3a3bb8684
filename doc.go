// Package polydraw rasterizes polygons bounded by straight lines and
// circular arcs into anti-aliased pixel coverage, using an integer
// coordinate sweep-line algorithm rather than supersampling: every
// pixel's coverage is the exact, analytically computed area of the
// polygon fragment overlapping it.
//
// # Overview
//
// A Scene (see the scene sub-package) describes what to draw in 64-bit
// signed sub-pixel coordinates: points, segments, circles, colors, and
// polygons built from typed edges. A Rasterizer owns all working state
// (intersection tables, edge pools, active sets) and renders a Scene onto
// anything implementing Frame.
//
// # Algorithm
//
// Rendering sweeps twice: once over Y to split every polygon at each
// horizontal pixel-grid line (producing "upper" and "lower" fragments),
// then over X to split the lower fragments at each vertical pixel-grid
// line (producing "final" fragments, one set per pixel). A pixel's color
// is the area-weighted average of the colors of the final fragments
// covering it, computed analytically via the shoelace formula with a
// floating-point correction for arc segments.
//
// # Coordinate system
//
// Coordinates are fixed-point: one on-screen pixel spans 1000 sub-pixel
// units (DivPerPixel), origin at the top-left, X increasing right, Y
// increasing down.
//
// Rasterizer is not safe for concurrent use by multiple goroutines
// against the same instance; render independent scenes with independent
// Rasterizers, or synchronize external calls.
package polydraw
