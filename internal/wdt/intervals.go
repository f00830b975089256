// internal/wdt/intervals.go
package wdt

// intervalEntry maps a millisecond threshold to the hardware encoding of the
// shortest timeout range that still covers it.
type intervalEntry struct {
	thresholdMS uint64
	encoded     uint8
}

// wdIntervals is the full set of timeout ranges the RK30xx watchdog supports,
// ascending. Each range doubles the previous one; the ladder comes from the
// counter width options clocked at the fixed watchdog pclk.
var wdIntervals = [...]intervalEntry{
	{2730, 0},
	{5460, 1},
	{10920, 2},
	{21840, 3},
	{43680, 4},
	{87360, 5},
	{174720, 6},
	{349440, 7},
	{698880, 8},
	{1397760, 9},
	{2795520, 10},
	{5591040, 11},
	{11182080, 12},
	{22364160, 13},
	{44728320, 14},
	{89456640, 15},
}

// MaxTimeoutMS is the longest timeout the hardware can honor, in milliseconds.
const MaxTimeoutMS uint64 = 89456640

// resolveInterval returns the encoding of the first range covering ms, so an
// armed timeout never undercuts the request. ok is false when ms exceeds
// MaxTimeoutMS. Pure lookup, no side effects.
func resolveInterval(ms uint64) (encoded uint8, ok bool) {
	for _, e := range wdIntervals {
		if ms <= e.thresholdMS {
			return e.encoded, true
		}
	}
	return 0, false
}

// Interval describes one supported timeout range.
type Interval struct {
	ThresholdMS uint64
	Encoded     uint8
}

// Intervals returns the supported timeout ranges, shortest first.
func Intervals() []Interval {
	out := make([]Interval, len(wdIntervals))
	for i, e := range wdIntervals {
		out[i] = Interval{ThresholdMS: e.thresholdMS, Encoded: e.encoded}
	}
	return out
}
