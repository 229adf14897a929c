// Package inspect reports how markers are distributed in a text.
package inspect

import (
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/yyyoichi/invisitext/internal/carrier"
	"github.com/yyyoichi/invisitext/internal/frame"
	"github.com/yyyoichi/invisitext/internal/symbol"
)

type Report struct {
	Words   int
	Slots   int
	Markers int
	Zeros   int
	Ones    int
	// Fill is Markers / Slots, or 0 for a text without slots.
	Fill float64
	// LineMean and LineStdDev describe the number of markers per line.
	Lines      int
	LineMean   float64
	LineStdDev float64

	// Framed is true when the markers contain a terminator-delimited payload.
	Framed     bool
	PayloadLen int
	// Trailing is the number of markers after the terminator.
	Trailing int
}

// Analyze scans text without decoding it under any particular option set.
// The payload fields assume markers written without error correction.
func Analyze(text string) Report {
	var r Report
	r.Words = len(carrier.Words(text))
	r.Slots = carrier.Capacity(text)

	lines := strings.Split(text, "\n")
	perLine := make([]float64, len(lines))
	for i, line := range lines {
		for _, c := range line {
			b, ok := symbol.BitOf(c)
			if !ok {
				continue
			}
			perLine[i]++
			r.Markers++
			if b == symbol.One {
				r.Ones++
			} else {
				r.Zeros++
			}
		}
	}
	r.Lines = len(lines)
	r.LineMean, r.LineStdDev = stat.MeanStdDev(perLine, nil)
	if len(perLine) < 2 {
		r.LineStdDev = 0
	}
	if r.Slots > 0 {
		r.Fill = float64(r.Markers) / float64(r.Slots)
	}

	var d frame.Decoder
	for bit := range carrier.Bits(text) {
		if d.Push(bit) {
			break
		}
	}
	if d.Done() {
		r.Framed = true
		r.PayloadLen = len(d.Payload())
		r.Trailing = r.Markers - d.Consumed()
	}
	return r
}
