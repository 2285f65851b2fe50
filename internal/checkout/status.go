package checkout

type Status string

const (
	StatusIdle              Status = "IDLE"
	StatusValidating        Status = "VALIDATING"
	StatusRequestingSession Status = "REQUESTING_SESSION"
	StatusRedirecting       Status = "REDIRECTING"
	StatusFailed            Status = "FAILED"
)

// IsTerminal reports whether the attempt has successfully handed off
// to the payment surface. Failures are not terminal: the orchestrator
// returns to idle and the attempt can be re-initiated.
func (s Status) IsTerminal() bool {
	return s == StatusRedirecting
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}
