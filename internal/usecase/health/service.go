package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	lexicon LexiconReader
}

// New creates a Service.
func New(lexicon LexiconReader) *Service {
	return &Service{lexicon: lexicon}
}

// Check runs health checks against all components. The lexicon is loaded
// once at startup, so the check verifies it is present and non-empty.
func (s *Service) Check(_ context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.lexicon == nil || s.lexicon.PhraseCount() == 0 {
		checks["lexicon"] = CheckError
	} else {
		checks["lexicon"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
