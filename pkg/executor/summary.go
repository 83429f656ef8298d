package executor

// Verdict grades a run.
type Verdict int

const (
	// VerdictAllPassed means every check passed.
	VerdictAllPassed Verdict = iota
	// VerdictMostlyPassed means at least 80% of checks passed.
	VerdictMostlyPassed
	VerdictHasIssues
)

// mostlyThreshold is the pass ratio at which a run counts as mostly successful.
const mostlyThreshold = 0.8

func (v Verdict) String() string {
	switch v {
	case VerdictAllPassed:
		return "all_passed"
	case VerdictMostlyPassed:
		return "mostly_passed"
	default:
		return "has_issues"
	}
}

// Summary holds the aggregate counts of a run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize counts results.
func Summarize(results []CheckResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		}
	}
	s.Failed = s.Total - s.Passed
	return s
}

// SuccessRate is passed/total*100, or 0 for an empty run.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// Verdict grades s. An empty run has issues.
func (s Summary) Verdict() Verdict {
	switch {
	case s.Total > 0 && s.Passed == s.Total:
		return VerdictAllPassed
	case s.Total > 0 && float64(s.Passed) >= float64(s.Total)*mostlyThreshold:
		return VerdictMostlyPassed
	default:
		return VerdictHasIssues
	}
}

// AllPassed reports whether every check passed.
func (s Summary) AllPassed() bool {
	return s.Verdict() == VerdictAllPassed
}
