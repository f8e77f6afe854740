// Package analysis provides frequency-domain tools for sampled waveforms.
//
//   - [PowerSpectrum]: magnitude of the non-negative FFT bins
//   - [DominantFrequency]: strongest non-DC frequency of a series
//
// Transforms use github.com/mjibson/go-dsp/fft, which handles arbitrary
// lengths via Bluestein's algorithm.
package analysis
