package block

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goodnatureofminers/passblock-backend/internal/difficulty"
	"github.com/goodnatureofminers/passblock-backend/internal/generation"
	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"go.uber.org/zap"
)

// MaxHintLength is the longest hint a hint-setter may submit, in characters.
const MaxHintLength = 200

// Activation triggers.
const (
	TriggerGenerated = "generated"
	TriggerFallback  = "fallback"
	TriggerGenesis   = "genesis"
)

// SubmitHint stores userID's hint for the block that follows the one they won.
// blockID may name either the solved block or its successor.
func (e *Engine) SubmitHint(ctx context.Context, blockID, userID uint64, hint string) (model.Block, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return model.Block{}, fmt.Errorf("empty hint: %w", model.ErrInvalidArgument)
	}
	if n := utf8.RuneCountInString(hint); n > MaxHintLength {
		return model.Block{}, fmt.Errorf("hint has %d characters, at most %d allowed: %w", n, MaxHintLength, model.ErrInvalidArgument)
	}

	target, err := e.hintTarget(ctx, blockID)
	if err != nil {
		return model.Block{}, err
	}
	if target.HintSetterID == nil || *target.HintSetterID != userID {
		return model.Block{}, fmt.Errorf("user %d may not set the hint of block %d: %w", userID, target.ID, model.ErrForbidden)
	}

	applied, err := e.setHint(ctx, target, hint, "hint")
	if err != nil {
		return model.Block{}, err
	}
	if !applied {
		return model.Block{}, fmt.Errorf("block %d no longer waits for a hint: %w", target.ID, model.ErrBlockNotActive)
	}
	return e.store.GetBlock(ctx, target.ID)
}

func (e *Engine) hintTarget(ctx context.Context, blockID uint64) (model.Block, error) {
	b, err := e.store.GetBlock(ctx, blockID)
	if err != nil {
		return model.Block{}, err
	}
	if b.WaitingForHint() {
		return b, nil
	}
	if b.Status == model.BlockSolvedPendingHint && b.WinnerID != nil {
		return e.store.GetSuccessor(ctx, b.ID)
	}
	return model.Block{}, fmt.Errorf("block %d is %s: %w", b.ID, b.Status, model.ErrBlockNotActive)
}

// ExpireHint gives a successor whose hint-setter did not act a hint derived
// from its difficulty. It reports false when a human hint landed first.
func (e *Engine) ExpireHint(ctx context.Context, b model.Block) (bool, error) {
	return e.setHint(ctx, b, difficulty.SystemHint(b.Difficulty), "hint_timeout")
}

func (e *Engine) setHint(ctx context.Context, b model.Block, hint, trigger string) (bool, error) {
	now := e.clock.Now()
	applied, err := e.store.SetHint(ctx, b.ID, hint, now)
	if err != nil {
		return false, err
	}
	if !applied {
		return false, nil
	}
	e.metrics.ObserveTransition(string(model.BlockAwaitingPassword), trigger)
	e.publisher.Publish(model.BlockStatusChanged(b.ID, model.BlockAwaitingPassword, nil, now))
	e.logger.Info("hint set", zap.Uint64("block_id", b.ID), zap.String("trigger", trigger))
	return true, nil
}

// RecordGenerationFailure counts a failed generation for b. It reports false
// when another sweep already counted or activated it.
func (e *Engine) RecordGenerationFailure(ctx context.Context, b model.Block) (bool, error) {
	return e.store.RecordGenerationFailure(ctx, b.ID, b.GenerationRetryCount)
}

// Activate stores secret on b, opens it for attempts and retires its predecessor.
// It reports false when b was no longer awaiting its password.
func (e *Engine) Activate(ctx context.Context, b model.Block, secret, trigger string) (bool, error) {
	if err := b.Difficulty.Validate(secret); err != nil {
		return false, err
	}
	hash, err := e.sealSecret(secret)
	if err != nil {
		return false, fmt.Errorf("activate block %d: %w", b.ID, err)
	}

	var cleared bool
	err = e.store.Tx(ctx, func(ctx context.Context) error {
		applied, err := e.store.ActivateBlock(ctx, b.ID, hash, secret)
		if err != nil {
			return err
		}
		if !applied {
			return errNotAwaiting
		}
		if b.PreviousBlockID == nil {
			return nil
		}
		cleared, err = e.store.ClearBlock(ctx, *b.PreviousBlockID)
		return err
	})
	if errors.Is(err, errNotAwaiting) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("activate block %d: %w", b.ID, err)
	}

	now := e.clock.Now()
	e.metrics.ObserveTransition(string(model.BlockActive), trigger)
	e.publisher.Publish(model.BlockStatusChanged(b.ID, model.BlockActive, nil, now))
	if cleared {
		e.metrics.ObserveTransition(string(model.BlockCleared), trigger)
		e.publisher.Publish(model.BlockStatusChanged(*b.PreviousBlockID, model.BlockCleared, nil, now))
	}
	e.logger.Info("block activated", zap.Uint64("block_id", b.ID), zap.String("trigger", trigger))
	return true, nil
}

var (
	errNotAwaiting  = errors.New("block is not awaiting a password")
	errHashMismatch = errors.New("secret hash does not verify")
)

// sealSecret hashes secret and checks the hash round-trips before it is stored.
func (e *Engine) sealSecret(secret string) (string, error) {
	hash, err := e.hashSecret(secret)
	if err != nil {
		return "", err
	}
	ok, err := generation.VerifySecret(secret, hash)
	if err != nil {
		return "", fmt.Errorf("verify secret hash: %w", err)
	}
	if !ok {
		return "", errHashMismatch
	}
	return hash, nil
}

// EnsureGenesis creates the first block when the store holds none. It
// reports whether this call created it.
func (e *Engine) EnsureGenesis(ctx context.Context) (model.Block, bool, error) {
	d := e.policy.Genesis()
	secret, err := generation.Fallback(d)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("genesis secret: %w", err)
	}
	hash, err := e.sealSecret(secret)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("genesis secret: %w", err)
	}

	var (
		genesis model.Block
		created bool
	)
	err = e.store.Tx(ctx, func(ctx context.Context) error {
		count, err := e.store.CountBlocks(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		now := e.clock.Now()
		genesis, err = e.store.CreateBlock(ctx, model.Block{
			Status:          model.BlockActive,
			Difficulty:      d,
			SecretHash:      hash,
			SecretPlaintext: secret,
			Hint:            e.cfg.GenesisHint,
			PrizePool:       e.cfg.PrizePoolStart,
			CreatedAt:       now,
		})
		created = err == nil
		return err
	})
	if err != nil {
		return model.Block{}, false, fmt.Errorf("ensure genesis: %w", err)
	}
	if !created {
		latest, err := e.store.GetLatestBlock(ctx)
		if err != nil {
			return model.Block{}, false, err
		}
		return latest, false, nil
	}

	e.metrics.ObserveTransition(string(model.BlockActive), TriggerGenesis)
	e.publisher.Publish(model.BlockStatusChanged(genesis.ID, model.BlockActive, nil, genesis.CreatedAt))
	e.logger.Info("genesis block created", zap.Uint64("block_id", genesis.ID), zap.Int("length", d.Length))
	return genesis, true, nil
}
