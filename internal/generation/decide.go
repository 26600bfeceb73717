package generation

// Decision is the next step for a block awaiting its password.
type Decision int

const (
	// Attempt calls the external generator once more.
	Attempt Decision = iota
	// UseFallback produces the secret locally.
	UseFallback
)

// Decide picks the step for a block that already failed retryCount times.
func Decide(retryCount, limit int) Decision {
	if retryCount < limit {
		return Attempt
	}
	return UseFallback
}
