// Package viz maps function samples onto drawing surfaces.
//
//   - [Viewport] and [Mapper]: the domain window and its affine mapping onto a
//     padded [Frame]
//   - [Scene]: a recorded list of drawing instructions (polylines, polygons,
//     text) that can be replayed onto any [Surface]
//   - [Canvas]: a Braille-based terminal surface for high-fidelity rendering
//
// # Coordinates
//
// Surface coordinates grow right and down, with the origin at the top-left
// corner of the frame. The mapper never clamps: points outside the viewport
// map outside the padded area and it is up to the surface to clip them.
package viz
