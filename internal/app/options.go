// Package app assembles the game core shared by every binary.
package app

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

// GameOptions are the go-flags options shared by the gateway and the scheduler.
type GameOptions struct {
	SQLiteDSN     string `long:"sqlite-dsn" env:"PASSBLOCK_SQLITE_DSN" description:"Path of the SQLite database" default:"passblock.db"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"PASSBLOCK_CLICKHOUSE_DSN" description:"ClickHouse DSN of the analytics event log; empty disables it"`

	PrizePoolStart  int64 `long:"prize-pool-start" env:"PASSBLOCK_PRIZE_POOL_START" description:"Prize pool of a new block" default:"100"`
	PrizePerAttempt int64 `long:"prize-per-attempt" env:"PASSBLOCK_PRIZE_PER_ATTEMPT" description:"Prize pool growth per recorded attempt" default:"10"`

	AnonymousCap    int `long:"anonymous-cap" env:"PASSBLOCK_ANONYMOUS_CAP" description:"Compute power cap of anonymous users" default:"10"`
	RegisteredCap   int `long:"registered-cap" env:"PASSBLOCK_REGISTERED_CAP" description:"Compute power cap of registered users" default:"100"`
	RefillPerMinute int `long:"refill-per-minute" env:"PASSBLOCK_REFILL_PER_MINUTE" description:"Compute power credited per elapsed minute" default:"1"`

	MinLength      int      `long:"min-length" env:"PASSBLOCK_MIN_LENGTH" description:"Minimum password length" default:"4"`
	MaxLength      int      `long:"max-length" env:"PASSBLOCK_MAX_LENGTH" description:"Maximum password length" default:"16"`
	LengthStepProb float64  `long:"length-step-prob" env:"PASSBLOCK_LENGTH_STEP_PROB" description:"Chance a successor is one character longer" default:"0.5"`
	ClassStepProb  float64  `long:"class-step-prob" env:"PASSBLOCK_CLASS_STEP_PROB" description:"Chance a successor gains a character class" default:"0.35"`
	GenesisLength  int      `long:"genesis-length" env:"PASSBLOCK_GENESIS_LENGTH" description:"Password length of the first block" default:"4"`
	GenesisClasses []string `long:"genesis-class" env:"PASSBLOCK_GENESIS_CLASSES" env-delim:"," description:"Character classes of the first block" default:"lowercase"`
	GenesisHint    string   `long:"genesis-hint" env:"PASSBLOCK_GENESIS_HINT" description:"Hint of the first block" default:"genesis"`

	EventBuffer            int           `long:"event-buffer" env:"PASSBLOCK_EVENT_BUFFER" description:"Undelivered events kept before dropping" default:"1024"`
	AnalyticsBatchSize     int           `long:"analytics-batch-size" env:"PASSBLOCK_ANALYTICS_BATCH_SIZE" description:"Events per ClickHouse insert" default:"500"`
	AnalyticsFlushInterval time.Duration `long:"analytics-flush-interval" env:"PASSBLOCK_ANALYTICS_FLUSH_INTERVAL" description:"Longest wait before buffered events are inserted" default:"5s"`
	AnalyticsRPS           int           `long:"analytics-rps" env:"PASSBLOCK_ANALYTICS_RPS" description:"Maximum ClickHouse inserts per second" default:"10"`
}

// Genesis returns the difficulty of the first block.
func (o GameOptions) Genesis() (model.Difficulty, error) {
	classes, err := model.ParseClassSet(o.GenesisClasses)
	if err != nil {
		return model.Difficulty{}, fmt.Errorf("genesis classes: %w", err)
	}
	return model.Difficulty{Length: o.GenesisLength, Classes: classes}, nil
}
