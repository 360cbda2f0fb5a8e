package reader

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	framechan "deribitrpc/internal/channel"
	"deribitrpc/logger"
	"deribitrpc/models"
)

// Frames larger than this are rejected by the scanner.
const maxFrameSize = 4 << 20

// CaptureReader feeds a JSON-lines capture of a session into the raw frame
// channel. Each non-empty line is one frame; lines starting with # are
// comments.
type CaptureReader struct {
	name     string
	src      io.Reader
	channels *framechan.Channels
	wg       *sync.WaitGroup
	mu       sync.RWMutex
	running  bool
	log      *logger.Log

	dropOnFull bool
	lines      int64
	dropped    int64
	err        error
}

func NewCaptureReader(name string, src io.Reader, ch *framechan.Channels) *CaptureReader {
	return &CaptureReader{
		name:     name,
		src:      src,
		channels: ch,
		wg:       &sync.WaitGroup{},
		log:      logger.GetLogger(),
	}
}

// SetDropOnFull makes the reader drop frames when the raw channel is full
// instead of waiting for the processor, as a live feed would. Call it before
// Start.
func (r *CaptureReader) SetDropOnFull(drop bool) {
	r.mu.Lock()
	r.dropOnFull = drop
	r.mu.Unlock()
}

// Start reads the capture in the background and closes the raw channel
// once the source is exhausted or ctx is done.
func (r *CaptureReader) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("capture reader already running")
	}
	r.running = true
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.channels.CloseRaw()
		err := r.feed(ctx)

		r.mu.Lock()
		r.err = err
		r.mu.Unlock()
	}()
	return nil
}

// Stop waits for the reader to finish and returns the read error, if any.
func (r *CaptureReader) Stop() error {
	r.wg.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	return r.err
}

// Frames returns how many frames were queued.
func (r *CaptureReader) Frames() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lines
}

// Dropped returns how many frames were discarded on a full channel.
func (r *CaptureReader) Dropped() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dropped
}

func (r *CaptureReader) feed(ctx context.Context) error {
	log := r.log.WithComponent("capture_reader").WithField("source", r.name)
	log.Info("reading capture")

	r.mu.RLock()
	dropOnFull := r.dropOnFull
	r.mu.RUnlock()

	scanner := bufio.NewScanner(r.src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		frame := models.RawFrame{
			Source:    fmt.Sprintf("%s:%d", r.name, lineNo),
			Data:      append([]byte(nil), line...),
			Timestamp: time.Now().UTC(),
		}
		if dropOnFull {
			if err := ctx.Err(); err != nil {
				log.WithField("line", lineNo).Warn("capture reader cancelled")
				return err
			}
			if !r.channels.TrySendRaw(frame) {
				r.mu.Lock()
				r.dropped++
				r.mu.Unlock()
				continue
			}
		} else if !r.channels.SendRaw(ctx, frame) {
			log.WithField("line", lineNo).Warn("capture reader cancelled")
			return ctx.Err()
		}

		r.mu.Lock()
		r.lines++
		r.mu.Unlock()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", r.name, err)
	}

	log.WithFields(logger.Fields{"frames": r.Frames(), "dropped": r.Dropped()}).Info("capture exhausted")
	return nil
}
