// Package fontscale picks a text size that makes a single value fill the
// space left beside the parameter list.
package fontscale

import (
	"math"
	"unicode/utf8"

	"fyne.io/fyne/v2"
)

const (
	MinTextLength = 7
	Fill          = 0.9
	Tolerance     = 1
)

// Measurer returns the rendered size of text at the given point size
type Measurer func(text string, size float32) fyne.Size

type Scaler struct {
	Measure Measurer

	// Space reserved around the value
	ButtonWidth  float32
	ButtonOffset float32
	HeightOffset float32
}

// Pad widens short text symmetrically so one or two characters are not
// blown up to fill the whole screen.
func Pad(text string, min int) string {
	for utf8.RuneCountInString(text) < min {
		text = " " + text + " "
	}
	return text
}

// Next returns the size text should be drawn at inside area, and whether it
// differs enough from current to be worth applying.
func (s Scaler) Next(current float32, text string, area fyne.Size) (float32, bool) {
	availWidth := area.Width - s.ButtonWidth - s.ButtonOffset
	availHeight := area.Height - s.HeightOffset
	if availWidth <= 0 || availHeight <= 0 || current <= 0 {
		return current, false
	}

	measured := s.Measure(Pad(text, MinTextLength), current)
	widthFactor := float64(measured.Width / availWidth)
	heightFactor := float64(measured.Height / availHeight)

	factor := math.Max(widthFactor, heightFactor) / Fill
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return current, false
	}

	next := float32(math.Floor(float64(current) / factor))
	if next <= 0 || similar(current, next) {
		return current, false
	}
	return next, true
}

func similar(a, b float32) bool {
	return math.Abs(float64(a-b)) <= Tolerance
}
