// Package events fans committed game events out to best-effort sinks.
// Publishing never blocks and never fails the write that produced the event.
package events

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"go.uber.org/zap"
)

const defaultBuffer = 1024

// Dispatcher queues events and delivers them to every sink in order.
type Dispatcher struct {
	queue   chan model.Event
	sinks   []Sink
	metrics Metrics
	logger  *zap.Logger
}

// NewDispatcher constructs a Dispatcher holding at most buffer undelivered events.
func NewDispatcher(buffer int, metrics Metrics, logger *zap.Logger, sinks ...Sink) (*Dispatcher, error) {
	if metrics == nil {
		return nil, errors.New("events metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if buffer < 1 {
		buffer = defaultBuffer
	}
	return &Dispatcher{
		queue:   make(chan model.Event, buffer),
		sinks:   sinks,
		metrics: metrics,
		logger:  logger.Named("events"),
	}, nil
}

// Publish queues e, dropping it when the queue is full.
func (d *Dispatcher) Publish(e model.Event) {
	select {
	case d.queue <- e:
		d.metrics.ObservePublish(string(e.Type), true)
	default:
		d.metrics.ObservePublish(string(e.Type), false)
		d.logger.Warn("event dropped",
			zap.String("type", string(e.Type)),
			zap.Uint64("block_id", e.BlockID),
		)
	}
}

// Run delivers queued events until ctx is done, then delivers what is left.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			d.drain(context.WithoutCancel(ctx))
			return
		case e := <-d.queue:
			d.deliver(ctx, e)
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	for {
		select {
		case e := <-d.queue:
			d.deliver(ctx, e)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, e model.Event) {
	for _, sink := range d.sinks {
		if err := sink.Consume(ctx, e); err != nil {
			d.metrics.ObserveSinkError(sink.Name())
			d.logger.Warn("sink rejected event",
				zap.String("sink", sink.Name()),
				zap.String("type", string(e.Type)),
				zap.Error(err),
			)
		}
	}
}
