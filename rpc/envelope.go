// Package rpc builds and reads the JSON-RPC 2.0 envelopes that carry the
// bound request and response payloads. It performs no I/O; a transport hands
// it bytes and gets typed values back.
package rpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"deribitrpc/models"
)

// Version is the JSON-RPC protocol version stamped on every call.
const Version = "2.0"

var (
	ErrNoResult       = errors.New("response has neither result nor error")
	ErrUnknownFrame   = errors.New("frame is not a call, response or notification")
	ErrUnknownMethod  = errors.New("method has no binding")
	ErrUnsupportedMsg = errors.New("notification method not supported")
	ErrNoData         = errors.New("notification carries no data")
)

// Call is an outbound request envelope.
type Call struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// Error is the error object of a failed call.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("rpc error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// DecodeError reports a result or notification payload that did not fit its
// bound type. Raw is the offending payload text.
type DecodeError struct {
	Method string
	Raw    string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s payload %s: %v", e.Method, e.Raw, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Frame is the union of every envelope field the server or client sends.
// Kind reports which shape it is.
type Frame struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *int64          `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`

	// Server timing, in microseconds.
	UsIn   int64 `json:"usIn,omitempty"`
	UsOut  int64 `json:"usOut,omitempty"`
	UsDiff int64 `json:"usDiff,omitempty"`

	Testnet bool `json:"testnet,omitempty"`
}

// ParseFrame reads one envelope.
func ParseFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("decode envelope: %w", err)
	}
	if _, err := f.Kind(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Kind classifies the frame.
func (f Frame) Kind() (models.FrameKind, error) {
	switch {
	case f.Method != "" && f.ID != nil:
		return models.FrameCall, nil
	case f.Method != "":
		return models.FrameNotification, nil
	case f.ID != nil && (f.Result != nil || f.Error != nil):
		return models.FrameResponse, nil
	default:
		return "", ErrUnknownFrame
	}
}

// RequestID returns the frame id, or zero for notifications.
func (f Frame) RequestID() int64 {
	if f.ID == nil {
		return 0
	}
	return *f.ID
}
