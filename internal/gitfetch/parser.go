package gitfetch

import (
	"bytes"
	"regexp"
	"strconv"

	"github.com/tenheadedlion/contemplate/internal/progress"
)

// git redraws progress lines in place, so stderr tokens are separated by
// carriage returns as well as newlines.
func scanProgressLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var (
	receivingRe = regexp.MustCompile(`^Receiving objects:\s+\d+% \((\d+)/(\d+)\)(?:, ([0-9.]+) (bytes|KiB|MiB|GiB|TiB))?`)
	deltasRe    = regexp.MustCompile(`^Resolving deltas:\s+\d+% \((\d+)/(\d+)\)`)
)

// stderrParser turns git's textual transfer progress into NetworkEvents.
// Counts are carried across lines so every emitted event holds the full
// cumulative state.
type stderrParser struct {
	sink  progress.Sink
	state progress.NetworkEvent
}

func newStderrParser(sink progress.Sink) *stderrParser {
	return &stderrParser{sink: sink}
}

// feed consumes one stderr line and reports whether it was a progress line.
// Unrecognized lines are left to the caller as diagnostics.
func (p *stderrParser) feed(line string) bool {
	if m := receivingRe.FindStringSubmatch(line); m != nil {
		p.state.ObjectsReceived = parseCount(m[1])
		p.state.ObjectsTotal = parseCount(m[2])
		// git's index-pack indexes objects as they arrive; the receive count
		// is the closest observable stand-in for the indexed count.
		p.state.ObjectsIndexed = p.state.ObjectsReceived
		if m[3] != "" {
			p.state.BytesReceived = parseSize(m[3], m[4])
		}
		p.sink.OnNetwork(p.state)
		return true
	}
	if m := deltasRe.FindStringSubmatch(line); m != nil {
		p.state.DeltasIndexed = parseCount(m[1])
		p.state.DeltasTotal = parseCount(m[2])
		p.sink.OnNetwork(p.state)
		return true
	}
	return false
}

func parseCount(s string) uint64 {
	n, _ := strconv.ParseUint(s, 10, 64)
	return n
}

func parseSize(num, unit string) uint64 {
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	switch unit {
	case "KiB":
		f *= 1 << 10
	case "MiB":
		f *= 1 << 20
	case "GiB":
		f *= 1 << 30
	case "TiB":
		f *= 1 << 40
	}
	return uint64(f)
}
