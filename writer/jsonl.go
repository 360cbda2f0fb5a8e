package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"deribitrpc/logger"
	"deribitrpc/models"
)

// record is the line written for each decoded frame.
type record struct {
	models.DecodedFrame
	RemoteError string `json:"remote_error,omitempty"`
}

// FrameWriter drains decoded frames into w as JSON lines.
type FrameWriter struct {
	in      <-chan models.DecodedFrame
	w       io.Writer
	wg      *sync.WaitGroup
	mu      sync.RWMutex
	running bool
	log     *logger.Log

	written int64
	kinds   map[models.FrameKind]int64
}

func NewFrameWriter(in <-chan models.DecodedFrame, w io.Writer) *FrameWriter {
	return &FrameWriter{
		in:    in,
		w:     w,
		wg:    &sync.WaitGroup{},
		log:   logger.GetLogger(),
		kinds: make(map[models.FrameKind]int64),
	}
}

// Start drains the channel until it is closed or ctx is done.
func (fw *FrameWriter) Start(ctx context.Context) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return fmt.Errorf("frame writer already running")
	}
	fw.running = true
	fw.mu.Unlock()

	fw.wg.Add(1)
	go fw.run(ctx)
	return nil
}

func (fw *FrameWriter) Stop() {
	fw.wg.Wait()
	fw.mu.Lock()
	fw.running = false
	fw.mu.Unlock()
}

// Written returns the number of lines written and the count per frame kind.
func (fw *FrameWriter) Written() (int64, map[models.FrameKind]int64) {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	kinds := make(map[models.FrameKind]int64, len(fw.kinds))
	for k, v := range fw.kinds {
		kinds[k] = v
	}
	return fw.written, kinds
}

func (fw *FrameWriter) run(ctx context.Context) {
	defer fw.wg.Done()
	log := fw.log.WithComponent("frame_writer")
	enc := json.NewEncoder(fw.w)

	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-fw.in:
			if !ok {
				return
			}
			rec := record{DecodedFrame: frame}
			if frame.RemoteError != nil {
				rec.RemoteError = frame.RemoteError.Error()
			}
			if err := enc.Encode(rec); err != nil {
				log.WithError(err).WithField("frame_id", frame.FrameID).Error("failed to write frame")
				continue
			}

			fw.mu.Lock()
			fw.written++
			fw.kinds[frame.Kind]++
			fw.mu.Unlock()
		}
	}
}
