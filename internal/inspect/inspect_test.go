package inspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yyyoichi/invisitext/internal/carrier"
	"github.com/yyyoichi/invisitext/internal/frame"
)

func TestAnalyze(t *testing.T) {
	text := strings.Repeat("w ", 40) + "w"

	t.Run("plain", func(t *testing.T) {
		r := Analyze(text)
		assert.Equal(t, 41, r.Words)
		assert.Equal(t, 40, r.Slots)
		assert.Zero(t, r.Markers)
		assert.Zero(t, r.Fill)
		assert.Equal(t, 1, r.Lines)
		assert.Zero(t, r.LineStdDev)
		assert.False(t, r.Framed)
	})

	t.Run("framed", func(t *testing.T) {
		bits := frame.Encode([]byte("ab"))
		marked, err := carrier.Embed(text, bits, carrier.AfterSpace)
		assert.NoError(t, err)

		r := Analyze(marked)
		assert.Equal(t, 24, r.Markers)
		assert.Equal(t, 24, r.Zeros+r.Ones)
		assert.InDelta(t, 24.0/40.0, r.Fill, 1e-9)
		assert.True(t, r.Framed)
		assert.Equal(t, 2, r.PayloadLen)
		assert.Zero(t, r.Trailing)
	})

	t.Run("per line", func(t *testing.T) {
		bits := frame.Encode(nil)
		marked, err := carrier.Embed("a b c d e\nf g h i j\nk", bits, carrier.AfterSpace)
		assert.NoError(t, err)
		r := Analyze(marked + " \u200c")

		assert.Equal(t, 3, r.Lines)
		assert.Equal(t, 9, r.Markers)
		assert.InDelta(t, 3.0, r.LineMean, 1e-9)
		assert.Greater(t, r.LineStdDev, 0.0)
		assert.True(t, r.Framed)
		assert.Zero(t, r.PayloadLen)
		assert.Equal(t, 1, r.Trailing)
	})
}
