package scheduler

import "time"

const (
	defaultInterval    = 30 * time.Second
	defaultHintTimeout = 3 * time.Minute
	defaultRetryLimit  = 5
	defaultBatchSize   = 100
	defaultWorkers     = 4
)

const (
	checkHintTimeout = "hint_timeout"
	checkFallback    = "fallback"
	checkGeneration  = "generation"
)
