// Package viz renders a [phasor.Signal] in the terminal.
//
//   - [SpacePlot], [TimePlot]: asciigraph charts of v(z) and v(t)
//   - [Canvas]: Braille-based pixel canvas
//   - [PhasorDiagram], [WaveCanvas]: phasor circle and waveform rasters
//   - [LiveModel]: Bubble Tea program animating the time cursor
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from t = 0
//	←/→   - Move the location cursor
//	+/-   - Scale magnitude
//	[/]   - Rotate phase
//	Q     - Quit
package viz
