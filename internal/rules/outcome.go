package rules

// Outcome is the reduction of a batch of findings to a process result.
type Outcome struct {
	Max      Level `json:"max_level"`
	Errors   int   `json:"errors"`
	Warnings int   `json:"warnings"`
	Notices  int   `json:"notices"`
}

func Summarize(findings []Finding) Outcome {
	var o Outcome
	for _, f := range findings {
		switch f.Level {
		case LevelError:
			o.Errors++
		case LevelWarning:
			o.Warnings++
		default:
			o.Notices++
		}
		if f.Level > o.Max {
			o.Max = f.Level
		}
	}
	return o
}

// Failed reports whether the run must fail. Errors always fail; warnings
// fail only in strict mode.
func (o Outcome) Failed(strict bool) bool {
	if o.Max >= LevelError {
		return true
	}
	return strict && o.Max >= LevelWarning
}

func (o Outcome) ExitCode(strict bool) int {
	if o.Failed(strict) {
		return 1
	}
	return 0
}
