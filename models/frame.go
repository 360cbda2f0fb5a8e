package models

import (
	"time"

	"deribitrpc/models/channel"
)

// FrameKind tells the three JSON-RPC frame shapes apart.
type FrameKind string

const (
	FrameCall         FrameKind = "call"
	FrameResponse     FrameKind = "response"
	FrameNotification FrameKind = "notification"
)

// RawFrame is one undecoded JSON-RPC frame together with where and when it
// was captured.
type RawFrame struct {
	Source    string
	Data      []byte
	Timestamp time.Time
}

// DecodedFrame is a frame after its payload has been bound to a typed value.
// Only the fields relevant to Kind are set.
type DecodedFrame struct {
	FrameID   string    `json:"frame_id"`
	Kind      FrameKind `json:"kind"`
	RequestID int64     `json:"request_id,omitempty"`
	Method    string    `json:"method"`

	// Result holds the bound response value, e.g. *BuyResponse.
	Result any `json:"result,omitempty"`
	// RemoteError is set when the response carried an error object.
	RemoteError error `json:"-"`

	Channel   *channel.ID      `json:"channel,omitempty"`
	Orders    []UserOrdersData `json:"orders,omitempty"`
	Trades    []UserTradesData `json:"trades,omitempty"`
	Heartbeat *HeartbeatParams `json:"heartbeat,omitempty"`

	ReceivedAt time.Time `json:"received_at"`
	DecodedAt  time.Time `json:"decoded_at"`
}
