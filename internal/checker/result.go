package checker

// Severity is the ordinal importance weight attached to a check. It scores
// how much a check matters, not whether it passed; a failed LOW check and a
// passed LOW check carry the same weight in the report.
type Severity int

const (
	SeverityNone     Severity = 0
	SeverityLow      Severity = 5
	SeverityMedium   Severity = 15
	SeverityHigh     Severity = 30
	SeverityCritical Severity = 50
)

// String returns the lowercase label for a severity weight.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	}
	return "unknown"
}

// Outcome is the result state of a single check.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	// OutcomeSkipped is produced only by dependency propagation; a check's
	// own predicate never yields it.
	OutcomeSkipped Outcome = "skipped"
)

// CheckResponse is the outcome of running one check definition.
type CheckResponse struct {
	Name          string
	Outcome       Outcome
	SeverityScore Severity
	Message       string
}

// Report aggregates the responses of one site run. CheckResults is in
// execution order and its first entry is always the connectivity probe.
type Report struct {
	URL          string
	CheckResults []CheckResponse
}

// FailureScore sums the severity weights of all failed checks. Skipped and
// successful checks contribute nothing.
func (r Report) FailureScore() int {
	total := 0
	for _, cr := range r.CheckResults {
		if cr.Outcome == OutcomeFailure {
			total += int(cr.SeverityScore)
		}
	}
	return total
}

// Counts returns how many checks succeeded, failed, and were skipped.
func (r Report) Counts() (success, failure, skipped int) {
	for _, cr := range r.CheckResults {
		switch cr.Outcome {
		case OutcomeSuccess:
			success++
		case OutcomeFailure:
			failure++
		case OutcomeSkipped:
			skipped++
		}
	}
	return success, failure, skipped
}
