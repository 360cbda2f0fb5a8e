package models

import "deribitrpc/models/channel"

// PublicSubscribeRequest subscribes to public channels.
type PublicSubscribeRequest struct {
	Channels []string `json:"channels"`
}

func (PublicSubscribeRequest) Method() string { return "public/subscribe" }

func (PublicSubscribeRequest) NewResponse() *SubscribeResponse { return new(SubscribeResponse) }

// PrivateSubscribeRequest subscribes to channels that need an authenticated
// session, such as user.orders and user.trades.
type PrivateSubscribeRequest struct {
	Channels []string `json:"channels"`
}

// NewPrivateSubscribe returns a subscription to every id.
func NewPrivateSubscribe(ids ...channel.ID) PrivateSubscribeRequest {
	chs := make([]string, 0, len(ids))
	for _, id := range ids {
		chs = append(chs, id.String())
	}
	return PrivateSubscribeRequest{Channels: chs}
}

func (PrivateSubscribeRequest) Method() string { return "private/subscribe" }

func (PrivateSubscribeRequest) NewResponse() *SubscribeResponse { return new(SubscribeResponse) }

// SubscribeResponse lists the channels the server accepted.
type SubscribeResponse []string
