package fontscale

import (
	"testing"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

// monospace: each rune is half the point size wide, lines are 1.2x tall
func monospace(text string, size float32) fyne.Size {
	return fyne.NewSize(size*float32(utf8.RuneCountInString(text))*0.5, size*1.2)
}

func testScaler() Scaler {
	return Scaler{
		Measure:      monospace,
		ButtonWidth:  150,
		ButtonOffset: 20,
		HeightOffset: 50,
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "   ab   ", Pad("ab", MinTextLength))
	assert.Equal(t, "1234567", Pad("1234567", MinTextLength))
	assert.Equal(t, "        ", Pad("", MinTextLength))
	assert.Equal(t, " ° ", Pad("°", 2))
}

func TestScaler_GrowsToFillWidth(t *testing.T) {
	s := testScaler()
	area := fyne.NewSize(270, 250) // 100 wide, 200 tall once reserved space is removed

	size, changed := s.Next(10, "1234567", area)

	assert.True(t, changed)
	assert.Equal(t, float32(25), size)
}

func TestScaler_ConvergesAfterOneStep(t *testing.T) {
	s := testScaler()
	area := fyne.NewSize(270, 250)

	size, _ := s.Next(10, "1234567", area)
	again, changed := s.Next(size, "1234567", area)

	assert.False(t, changed)
	assert.Equal(t, size, again)
}

func TestScaler_HeightBound(t *testing.T) {
	s := testScaler()
	// Wide area, short height: height factor wins
	area := fyne.NewSize(5000, 100)

	size, changed := s.Next(10, "1", area)

	assert.True(t, changed)
	// 12 tall in 50 available: factor 0.24/0.9, 10/0.2667 = 37.5
	assert.Equal(t, float32(37), size)
}

func TestScaler_ShrinksOverflowingText(t *testing.T) {
	s := testScaler()
	area := fyne.NewSize(270, 250)

	size, changed := s.Next(100, "1234567", area)

	assert.True(t, changed)
	assert.Less(t, size, float32(100))
}

func TestScaler_DegenerateAreaKeepsSize(t *testing.T) {
	s := testScaler()

	size, changed := s.Next(18, "42", fyne.NewSize(100, 40))
	assert.False(t, changed)
	assert.Equal(t, float32(18), size)

	s.Measure = func(string, float32) fyne.Size { return fyne.Size{} }
	size, changed = s.Next(18, "42", fyne.NewSize(800, 600))
	assert.False(t, changed)
	assert.Equal(t, float32(18), size)
}
