package generation

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"
)

type (
	// External produces a candidate secret for a prompt. Its output is untrusted.
	External interface {
		Generate(ctx context.Context, prompt Prompt) (string, error)
	}
	Metrics interface {
		Observe(source string, err error, started time.Time)
	}
)
