package review

import "fmt"

// Stage is the per-word view phase
type Stage int

const (
	// StageWord shows only the word
	StageWord Stage = iota
	// StageDetails shows phonetic, part of speech, meaning and mnemonic
	StageDetails
	// StageStatus shows the learned flag, which can be toggled here
	StageStatus
)

func (s Stage) String() string {
	switch s {
	case StageWord:
		return "word"
	case StageDetails:
		return "details"
	case StageStatus:
		return "status"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}
