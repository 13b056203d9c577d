// Package tui is the terminal viewer for accumulation sessions.
//
// The viewer uses the Bubble Tea framework:
//
//   - [Model]: drives one animate.Session from tick messages and draws it
//     on a Braille canvas
//   - [Menu]: picks an animation preset and starts a Model
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume the sweep
//	R     - Restart from a
//	T     - Cycle color themes
//	S     - Save an SVG snapshot
//	?     - Show help overlay
//	Q     - Quit
package tui
