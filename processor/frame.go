package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	appconfig "deribitrpc/config"
	framechan "deribitrpc/internal/channel"
	"deribitrpc/logger"
	"deribitrpc/models"
	"deribitrpc/models/channel"
	"deribitrpc/rpc"
)

// ErrUnmatchedResponse is returned for a response whose id was never seen
// on an outbound call.
var ErrUnmatchedResponse = errors.New("response to unknown request id")

// Stats counts frame outcomes. TypeMismatch and InvalidChannel are subsets
// of Failed.
type Stats struct {
	Decoded        int64
	Failed         int64
	TypeMismatch   int64
	InvalidChannel int64
	RemoteErrors   int64
}

// FrameProcessor binds captured JSON-RPC frames to their typed payloads.
// Calls are remembered by id so the matching response can be decoded with
// the call's response type; with more than one worker a response may be
// handled before its call and will then fail as unmatched.
type FrameProcessor struct {
	config   *appconfig.Config
	channels *framechan.Channels
	ctx      context.Context
	wg       *sync.WaitGroup
	mu       sync.RWMutex
	running  bool
	log      *logger.Log

	pendingMu sync.Mutex
	pending   map[int64]string

	statsMu sync.Mutex
	stats   Stats
}

func NewFrameProcessor(cfg *appconfig.Config, ch *framechan.Channels) *FrameProcessor {
	return &FrameProcessor{
		config:   cfg,
		channels: ch,
		wg:       &sync.WaitGroup{},
		log:      logger.GetLogger(),
		pending:  make(map[int64]string),
	}
}

// Start launches the workers. They exit when the raw channel is closed and
// drained, or when ctx is done.
func (p *FrameProcessor) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return fmt.Errorf("frame processor already running")
	}
	p.running = true
	p.ctx = ctx
	p.mu.Unlock()

	workers := p.config.Processor.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.log.WithComponent("processor").WithField("workers", workers).Info("frame processor started")
	return nil
}

// Stop waits for the workers and publishes the final counts.
func (p *FrameProcessor) Stop() {
	p.wg.Wait()

	p.mu.Lock()
	p.running = false
	p.mu.Unlock()

	stats := p.Stats()
	log := p.log.WithComponent("processor")
	log.LogMetric("processor", "frames_decoded", stats.Decoded, "counter", nil)
	log.LogMetric("processor", "frames_failed", stats.Failed, "counter", nil)
	log.LogMetric("processor", "type_mismatch", stats.TypeMismatch, "counter", nil)
	log.LogMetric("processor", "invalid_channel", stats.InvalidChannel, "counter", nil)
	log.Info("frame processor stopped")
}

func (p *FrameProcessor) Stats() Stats {
	p.statsMu.Lock()
	defer p.statsMu.Unlock()
	return p.stats
}

func (p *FrameProcessor) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case raw, ok := <-p.channels.Raw:
			if !ok {
				return
			}
			frame, err := p.Process(raw)
			if err != nil {
				p.fail(raw, err)
				continue
			}
			p.channels.SendDecoded(p.ctx, frame)
		}
	}
}

// Process decodes one raw frame. It never returns a partially bound frame:
// on error the DecodedFrame is zero.
func (p *FrameProcessor) Process(raw models.RawFrame) (models.DecodedFrame, error) {
	f, err := rpc.ParseFrame(raw.Data)
	if err != nil {
		return models.DecodedFrame{}, err
	}
	kind, _ := f.Kind()

	out := models.DecodedFrame{
		Kind:       kind,
		RequestID:  f.RequestID(),
		Method:     f.Method,
		ReceivedAt: raw.Timestamp,
	}

	switch kind {
	case models.FrameCall:
		p.remember(out.RequestID, f.Method)
	case models.FrameResponse:
		method, ok := p.take(out.RequestID)
		if !ok {
			return models.DecodedFrame{}, fmt.Errorf("id %d: %w", out.RequestID, ErrUnmatchedResponse)
		}
		out.Method = method
		if f.Error != nil {
			out.RemoteError = f.Error
			p.update(func(s *Stats) { s.RemoteErrors++ })
			break
		}
		binding, ok := rpc.Lookup(method)
		if !ok {
			return models.DecodedFrame{}, fmt.Errorf("%w: %s", rpc.ErrUnknownMethod, method)
		}
		if out.Result, err = binding.Decode(f.Result); err != nil {
			return models.DecodedFrame{}, err
		}
	case models.FrameNotification:
		ev, err := rpc.BindNotification(f)
		if err != nil {
			return models.DecodedFrame{}, err
		}
		if ev.Heartbeat != nil {
			out.Heartbeat = ev.Heartbeat
		} else {
			id := ev.Channel
			out.Channel = &id
			out.Orders = ev.Orders
			out.Trades = ev.Trades
		}
	}

	out.FrameID = uuid.NewString()
	out.DecodedAt = time.Now().UTC()
	p.update(func(s *Stats) { s.Decoded++ })
	return out, nil
}

func (p *FrameProcessor) remember(id int64, method string) {
	p.pendingMu.Lock()
	p.pending[id] = method
	p.pendingMu.Unlock()
}

func (p *FrameProcessor) take(id int64) (string, bool) {
	p.pendingMu.Lock()
	defer p.pendingMu.Unlock()
	method, ok := p.pending[id]
	if ok {
		delete(p.pending, id)
	}
	return method, ok
}

func (p *FrameProcessor) fail(raw models.RawFrame, err error) {
	p.update(func(s *Stats) {
		s.Failed++
		switch {
		case errors.Is(err, models.ErrTypeMismatch):
			s.TypeMismatch++
		case errors.Is(err, channel.ErrInvalidFormat):
			s.InvalidChannel++
		}
	})

	p.log.WithComponent("processor").WithFields(logger.Fields{
		"source": raw.Source,
		"raw":    string(raw.Data),
	}).WithError(err).Warn("failed to decode frame")
}

func (p *FrameProcessor) update(fn func(*Stats)) {
	p.statsMu.Lock()
	fn(&p.stats)
	p.statsMu.Unlock()
}
