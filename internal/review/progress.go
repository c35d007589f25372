package review

import "fmt"

// Progress is derived from the cursor position on every render
type Progress struct {
	Position       int // 1-based index of the current word, 0 when empty
	Total          int
	UnlearnedSeen  int // unlearned words at or before the current one
	UnlearnedTotal int
}

// PositionRatio returns Position/Total, or 0 for an empty list
func (p Progress) PositionRatio() float64 {
	return ratio(p.Position, p.Total)
}

// UnlearnedRatio returns UnlearnedSeen/UnlearnedTotal, or 0 when every word is learned
func (p Progress) UnlearnedRatio() float64 {
	return ratio(p.UnlearnedSeen, p.UnlearnedTotal)
}

func (p Progress) String() string {
	if p.Total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%d/%d)", p.Position, p.Total, p.UnlearnedSeen, p.UnlearnedTotal)
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
