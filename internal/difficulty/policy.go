// Package difficulty derives the difficulty of successor blocks.
package difficulty

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

// Random is the source of chance used by the policy.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// SharedRandom draws from the process-wide generator, safe for concurrent use.
type SharedRandom struct{}

func (SharedRandom) Float64() float64 { return rand.Float64() }

func (SharedRandom) IntN(n int) int { return rand.IntN(n) }

// Policy grows difficulty between cycles within fixed bounds.
type Policy struct {
	MinLength      int
	MaxLength      int
	LengthStepProb float64
	ClassStepProb  float64
	GenesisLength  int
	GenesisClasses model.ClassSet
	random         Random
}

// NewPolicy validates the bounds and builds a Policy.
func NewPolicy(minLength, maxLength int, lengthStepProb, classStepProb float64, genesis model.Difficulty, random Random) (*Policy, error) {
	if minLength < 1 {
		return nil, fmt.Errorf("min length %d must be positive", minLength)
	}
	if maxLength < minLength {
		return nil, fmt.Errorf("max length %d below min length %d", maxLength, minLength)
	}
	if lengthStepProb < 0 || lengthStepProb > 1 || classStepProb < 0 || classStepProb > 1 {
		return nil, errors.New("step probabilities must be within [0,1]")
	}
	if genesis.Length < minLength || genesis.Length > maxLength {
		return nil, fmt.Errorf("genesis length %d outside [%d,%d]", genesis.Length, minLength, maxLength)
	}
	if genesis.Classes == 0 {
		return nil, errors.New("genesis classes must not be empty")
	}
	if random == nil {
		return nil, errors.New("random source is required")
	}
	return &Policy{
		MinLength:      minLength,
		MaxLength:      maxLength,
		LengthStepProb: lengthStepProb,
		ClassStepProb:  classStepProb,
		GenesisLength:  genesis.Length,
		GenesisClasses: genesis.Classes,
		random:         random,
	}, nil
}

// Genesis returns the difficulty of the first block.
func (p *Policy) Genesis() model.Difficulty {
	return model.Difficulty{Length: p.GenesisLength, Classes: p.GenesisClasses}
}

// Next returns the difficulty of the block following one with difficulty d.
// Length grows by at most one and never past MaxLength; classes grow by at most one and never shrink.
// A length below MinLength is raised to it, and that counts as the cycle's step.
func (p *Policy) Next(d model.Difficulty) model.Difficulty {
	next := d
	clamped := next.Length < p.MinLength
	if clamped {
		next.Length = p.MinLength
	}
	if next.Classes == 0 {
		next.Classes = p.GenesisClasses
	}

	if !clamped && next.Length < p.MaxLength && p.random.Float64() < p.LengthStepProb {
		next.Length++
	}
	if next.Length > p.MaxLength {
		next.Length = p.MaxLength
	}

	if missing := next.Classes.Missing(); len(missing) > 0 && p.random.Float64() < p.ClassStepProb {
		next.Classes = next.Classes.With(missing[p.random.IntN(len(missing))])
	}
	return next
}

// SystemHint is the hint used when the hint-setter does not act in time.
// It depends only on d.
func SystemHint(d model.Difficulty) string {
	return fmt.Sprintf("The password has %d characters drawn from: %s.",
		d.Length, strings.Join(d.Classes.Names(), ", "))
}
