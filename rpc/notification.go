package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"deribitrpc/models"
	"deribitrpc/models/channel"
)

const (
	MethodSubscription = "subscription"
	MethodHeartbeat    = "heartbeat"
)

// SubscriptionParams is the params object of a subscription notification.
type SubscriptionParams struct {
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data"`
	Label   string          `json:"label,omitempty"`
}

// Event is a decoded notification. Channel and one of Orders or Trades are
// set for subscriptions; Heartbeat is set for heartbeats.
type Event struct {
	Method    string
	Channel   channel.ID
	Orders    []models.UserOrdersData
	Trades    []models.UserTradesData
	Heartbeat *models.HeartbeatParams
}

// DecodeNotification reads a notification envelope.
func DecodeNotification(data []byte) (Event, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Event{}, fmt.Errorf("decode envelope: %w", err)
	}
	return BindNotification(f)
}

// BindNotification decodes the params of an already parsed notification.
// Subscription data is routed on the channel name; a channel outside the
// user.orders and user.trades grammar is an error.
func BindNotification(f Frame) (Event, error) {
	switch f.Method {
	case MethodHeartbeat:
		var hb models.HeartbeatParams
		if err := json.Unmarshal(f.Params, &hb); err != nil {
			return Event{}, &DecodeError{Method: f.Method, Raw: string(f.Params), Err: err}
		}
		return Event{Method: f.Method, Heartbeat: &hb}, nil
	case MethodSubscription:
		return bindSubscription(f)
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnsupportedMsg, f.Method)
	}
}

func bindSubscription(f Frame) (Event, error) {
	var params SubscriptionParams
	if err := json.Unmarshal(f.Params, &params); err != nil {
		return Event{}, &DecodeError{Method: f.Method, Raw: string(f.Params), Err: err}
	}
	id, err := channel.ParseAny(params.Channel)
	if err != nil {
		return Event{}, err
	}

	ev := Event{Method: f.Method, Channel: id}
	switch id.Namespace {
	case channel.UserOrders:
		ev.Orders, err = oneOrMany[models.UserOrdersData](params.Data)
	case channel.UserTrades:
		ev.Trades, err = oneOrMany[models.UserTradesData](params.Data)
	}
	if err != nil {
		return Event{}, &DecodeError{Method: params.Channel, Raw: string(params.Data), Err: err}
	}
	return ev, nil
}

// oneOrMany accepts either a single object or an array of them. Raw
// channels push single objects, aggregated intervals push arrays. A null or
// empty payload, or a null array element, is ErrNoData.
func oneOrMany[T any](data json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	elems := []json.RawMessage{trimmed}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		elems = nil
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, err
		}
	}

	out := make([]T, 0, len(elems))
	for _, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || bytes.Equal(elem, null) {
			return nil, ErrNoData
		}
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

var null = []byte("null")
