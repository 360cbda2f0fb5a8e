package channel

import (
	"context"
	"testing"
	"time"

	"deribitrpc/models"
)

func TestTrySendRawDrops(t *testing.T) {
	ch := NewChannels(1, 1)
	defer ch.Close()

	if !ch.TrySendRaw(models.RawFrame{Data: []byte(`{}`)}) {
		t.Fatalf("first send should fit the buffer")
	}
	if ch.TrySendRaw(models.RawFrame{Data: []byte(`{}`)}) {
		t.Fatalf("second send should be dropped")
	}
	stats := ch.GetStats()
	if stats.RawSent != 1 || stats.RawDropped != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestSendRawHonoursContext(t *testing.T) {
	ch := NewChannels(1, 1)
	defer ch.Close()

	ctx, cancel := context.WithCancel(context.Background())
	if !ch.SendRaw(ctx, models.RawFrame{Source: "a"}) {
		t.Fatalf("send into empty buffer failed")
	}
	cancel()
	if ch.SendRaw(ctx, models.RawFrame{Source: "b"}) {
		t.Fatalf("send on full buffer with cancelled context should fail")
	}
	if got := (<-ch.Raw).Source; got != "a" {
		t.Errorf("unexpected frame %q", got)
	}
}

func TestSendDecodedCountsAbandoned(t *testing.T) {
	ch := NewChannels(1, 1)
	defer ch.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	ch.SendDecoded(ctx, models.DecodedFrame{FrameID: "1"})
	ch.SendDecoded(ctx, models.DecodedFrame{FrameID: "2"})

	stats := ch.GetStats()
	if stats.DecodedSent != 1 || stats.DecodedDropped != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	ch := NewChannels(1, 1)
	ch.CloseRaw()
	ch.Close()
	ch.CloseDecoded()

	if _, ok := <-ch.Raw; ok {
		t.Fatalf("raw channel still open")
	}
	if _, ok := <-ch.Decoded; ok {
		t.Fatalf("decoded channel still open")
	}
}
