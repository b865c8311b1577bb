package registry

import (
	"testing"

	"monitorscreen/internal/telemetry"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_ObserveAddsEachNameOnce(t *testing.T) {
	r := New()

	assert.True(t, r.Observe(telemetry.Message{Name: "rpm", Value: "1"}))
	assert.False(t, r.Observe(telemetry.Message{Name: "rpm", Value: "2", Time: "t2"}))
	assert.True(t, r.Observe(telemetry.Message{Name: "temp", Value: "20"}))

	assert.Equal(t, []string{"rpm", "temp"}, r.Names())
	assert.Equal(t, 2, r.Len())

	last, ok := r.Last("rpm")
	assert.True(t, ok)
	assert.Equal(t, Entry{Name: "rpm", Value: "2", Time: "t2"}, last)
}

func TestRegistry_IgnoresUnnamedMessages(t *testing.T) {
	r := New()

	assert.False(t, r.Observe(telemetry.Message{Value: "orphan"}))
	assert.Zero(t, r.Len())
}

func TestRegistry_SelectReturnsLastReading(t *testing.T) {
	r := New()
	r.Observe(telemetry.Message{Name: "rpm", Value: "3200", Time: "12:00"})

	entry := r.Select("rpm")

	assert.Equal(t, "rpm", r.Selected())
	assert.Equal(t, "3200", entry.Value)
	assert.Equal(t, "12:00", entry.Time)

	unknown := r.Select("missing")
	assert.Equal(t, Entry{Name: "missing"}, unknown)
}

func TestRegistry_ShouldDisplay(t *testing.T) {
	r := New()

	// Nothing known yet: everything shows
	assert.True(t, r.ShouldDisplay("rpm"))

	r.Observe(telemetry.Message{Name: "rpm"})
	assert.True(t, r.ShouldDisplay("rpm"), "single parameter always displays")

	r.Observe(telemetry.Message{Name: "temp"})
	assert.False(t, r.ShouldDisplay("rpm"))
	assert.False(t, r.ShouldDisplay("temp"))
	assert.True(t, r.ShouldDisplay(""), "unnamed readings match the empty selection")

	r.Select("temp")
	assert.True(t, r.ShouldDisplay("temp"))
	assert.False(t, r.ShouldDisplay("rpm"))
	assert.False(t, r.ShouldDisplay(""))
}

func TestRegistry_NamesIsACopy(t *testing.T) {
	r := New()
	r.Observe(telemetry.Message{Name: "rpm"})

	names := r.Names()
	names[0] = "changed"

	assert.Equal(t, []string{"rpm"}, r.Names())
}
