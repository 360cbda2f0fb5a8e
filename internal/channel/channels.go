package channel

import (
	"context"
	"sync"
	"time"

	"deribitrpc/logger"
	"deribitrpc/models"
)

type ChannelStats struct {
	RawSent        int64
	DecodedSent    int64
	RawDropped     int64
	DecodedDropped int64
}

// Channels carries frames between the capture feeder, the processor and
// whatever consumes decoded frames. Raw and Decoded are closed separately
// so each stage can drain the one upstream of it.
type Channels struct {
	Raw     chan models.RawFrame
	Decoded chan models.DecodedFrame

	stats      ChannelStats
	statsMutex sync.RWMutex
	closeRaw   sync.Once
	closeDec   sync.Once
	log        *logger.Log
}

func NewChannels(rawBufferSize, decodedBufferSize int) *Channels {
	log := logger.GetLogger()
	c := &Channels{
		Raw:     make(chan models.RawFrame, rawBufferSize),
		Decoded: make(chan models.DecodedFrame, decodedBufferSize),
		log:     log,
	}

	log.WithComponent("channels").WithFields(logger.Fields{
		"raw_buffer_size":     rawBufferSize,
		"decoded_buffer_size": decodedBufferSize,
	}).Info("frame channels initialized")

	return c
}

// SendRaw blocks until the frame is queued or ctx is done.
func (c *Channels) SendRaw(ctx context.Context, frame models.RawFrame) bool {
	select {
	case c.Raw <- frame:
		c.update(func(s *ChannelStats) { s.RawSent++ })
		return true
	case <-ctx.Done():
		return false
	}
}

// TrySendRaw queues the frame only if there is room; otherwise it is
// dropped and counted.
func (c *Channels) TrySendRaw(frame models.RawFrame) bool {
	select {
	case c.Raw <- frame:
		c.update(func(s *ChannelStats) { s.RawSent++ })
		return true
	default:
		c.update(func(s *ChannelStats) { s.RawDropped++ })
		return false
	}
}

// SendDecoded blocks until the frame is queued or ctx is done. A frame
// abandoned because of ctx counts as dropped.
func (c *Channels) SendDecoded(ctx context.Context, frame models.DecodedFrame) bool {
	select {
	case c.Decoded <- frame:
		c.update(func(s *ChannelStats) { s.DecodedSent++ })
		return true
	case <-ctx.Done():
		c.update(func(s *ChannelStats) { s.DecodedDropped++ })
		return false
	}
}

func (c *Channels) update(fn func(*ChannelStats)) {
	c.statsMutex.Lock()
	fn(&c.stats)
	c.statsMutex.Unlock()
}

func (c *Channels) GetStats() ChannelStats {
	c.statsMutex.RLock()
	defer c.statsMutex.RUnlock()
	return c.stats
}

// StartMetricsReporting logs channel statistics every interval until ctx is
// done.
func (c *Channels) StartMetricsReporting(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.logStats()
			}
		}
	}()
}

func (c *Channels) logStats() {
	stats := c.GetStats()
	c.log.WithComponent("channels").WithFields(logger.Fields{
		"raw_sent":            stats.RawSent,
		"raw_dropped":         stats.RawDropped,
		"decoded_sent":        stats.DecodedSent,
		"decoded_dropped":     stats.DecodedDropped,
		"raw_channel_len":     len(c.Raw),
		"raw_channel_cap":     cap(c.Raw),
		"decoded_channel_len": len(c.Decoded),
		"decoded_channel_cap": cap(c.Decoded),
	}).Info("channel statistics")
}

// CloseRaw signals that no more raw frames will be sent.
func (c *Channels) CloseRaw() {
	c.closeRaw.Do(func() { close(c.Raw) })
}

// CloseDecoded signals that no more decoded frames will be sent.
func (c *Channels) CloseDecoded() {
	c.closeDec.Do(func() { close(c.Decoded) })
}

func (c *Channels) Close() {
	c.CloseRaw()
	c.CloseDecoded()
	c.log.WithComponent("channels").Info("frame channels closed")
}
