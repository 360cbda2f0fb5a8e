package writer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"deribitrpc/models"
	"deribitrpc/models/channel"
	"deribitrpc/rpc"
)

func TestFrameWriterLines(t *testing.T) {
	in := make(chan models.DecodedFrame, 3)
	id := channel.ID{Namespace: channel.UserOrders, Target: channel.ByInstrument{InstrumentName: "ETH-PERPETUAL", Interval: "raw"}}
	in <- models.DecodedFrame{FrameID: "a", Kind: models.FrameNotification, Method: "subscription", Channel: &id}
	in <- models.DecodedFrame{FrameID: "b", Kind: models.FrameResponse, Method: "private/buy", RemoteError: &rpc.Error{Code: 10009, Message: "not_enough_funds"}}
	in <- models.DecodedFrame{FrameID: "c", Kind: models.FrameResponse, Method: "private/cancel_all", Result: ptr(models.AckOK)}
	close(in)

	var buf bytes.Buffer
	fw := NewFrameWriter(in, &buf)
	if err := fw.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	fw.Stop()

	var lines []map[string]interface{}
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var m map[string]interface{}
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("line is not json: %v: %s", err, sc.Bytes())
		}
		lines = append(lines, m)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0]["channel"] != "user.orders.ETH-PERPETUAL.raw" {
		t.Errorf("channel = %v", lines[0]["channel"])
	}
	if lines[1]["remote_error"] != "rpc error 10009: not_enough_funds" {
		t.Errorf("remote_error = %v", lines[1]["remote_error"])
	}
	if lines[2]["result"] != "ok" {
		t.Errorf("result = %v", lines[2]["result"])
	}

	total, kinds := fw.Written()
	if total != 3 || kinds[models.FrameResponse] != 2 {
		t.Errorf("written = %d %v", total, kinds)
	}
}

func ptr[T any](v T) *T { return &v }
