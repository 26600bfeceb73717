// Package generation produces block secrets: from a hint through an external
// generator whose output is validated strictly, or locally once retries run out.
package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"go.uber.org/zap"
)

const (
	sourceExternal = "external"
	sourceFallback = "fallback"
)

// Pipeline wraps the external generator with a hard timeout and validation.
type Pipeline struct {
	external External
	metrics  Metrics
	timeout  time.Duration
	logger   *zap.Logger
}

// NewPipeline constructs a Pipeline.
func NewPipeline(external External, metrics Metrics, timeout time.Duration, logger *zap.Logger) (*Pipeline, error) {
	if external == nil {
		return nil, errors.New("external generator is required")
	}
	if metrics == nil {
		return nil, errors.New("generation metrics is required")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("generator timeout must be positive, got %s", timeout)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		external: external,
		metrics:  metrics,
		timeout:  timeout,
		logger:   logger.Named("generation"),
	}, nil
}

// Generate asks the external generator once for a secret of difficulty d.
// A failed call, a timeout and an invalid value all return an error; invalid
// values wrap model.ErrGenerationValidation.
func (p *Pipeline) Generate(ctx context.Context, hint string, d model.Difficulty) (secret string, err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe(sourceExternal, err, started)
	}()

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	secret, err = p.external.Generate(callCtx, NewPrompt(hint, d))
	if err != nil {
		return "", fmt.Errorf("external generator: %w", err)
	}
	if err = d.Validate(secret); err != nil {
		return "", err
	}
	return secret, nil
}

// Fallback produces a secret locally.
func (p *Pipeline) Fallback(d model.Difficulty) (secret string, err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe(sourceFallback, err, started)
	}()

	return Fallback(d)
}
