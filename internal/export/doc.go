// Package export writes plots and results to files.
//
// SVG output is produced by replaying a [viz.Scene] onto an [SVG] surface.
// PNG output goes through gonum/plot from a [Figure] in domain coordinates.
// JSON output serializes a [Report].
package export
