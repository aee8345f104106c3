package orbitview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeModule_AdvancesPerFrame(t *testing.T) {
	start := time.Unix(1000, 0)
	now := start
	clock := func() time.Time { return now }

	app := NewAppBuilder().UseModule(TimeModule{Now: clock}).Build()
	tm, ok := Resource[Time](app)
	require.True(t, ok)
	assert.Zero(t, tm.Frame)

	now = start.Add(16 * time.Millisecond)
	app.Step()
	assert.Equal(t, uint64(1), tm.Frame)
	assert.Equal(t, 16*time.Millisecond, tm.Dt)
	assert.Equal(t, now.UnixNano(), tm.TimeNanos())

	now = now.Add(17 * time.Millisecond)
	app.Step()
	assert.Equal(t, uint64(2), tm.Frame)
	assert.Equal(t, 17*time.Millisecond, tm.Dt)
}
