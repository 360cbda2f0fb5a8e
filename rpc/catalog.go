package rpc

import (
	"encoding/json"
	"fmt"
	"sort"

	"deribitrpc/models"
)

// Binding is the method-keyed view of a request binding, for code that only
// sees method names on the wire.
type Binding struct {
	Method string
	Void   bool

	newResponse func() any
}

// NewResponse returns a fresh pointer to the bound response type.
func (b Binding) NewResponse() any {
	return b.newResponse()
}

// Decode binds a raw result to the response type.
func (b Binding) Decode(result json.RawMessage) (any, error) {
	resp := b.newResponse()
	if err := json.Unmarshal(result, resp); err != nil {
		return nil, &DecodeError{Method: b.Method, Raw: string(result), Err: err}
	}
	return resp, nil
}

func bind[Resp any](req models.Request[Resp]) Binding {
	return Binding{
		Method:      req.Method(),
		Void:        models.IsVoid(req),
		newResponse: func() any { return req.NewResponse() },
	}
}

// catalog is derived from the request types once and never written again.
var catalog = index(
	bind[models.SetHeartbeatResponse](models.SetHeartbeatRequest{}),
	bind[models.DisableHeartbeatResponse](models.DisableHeartbeatRequest{}),
	bind[models.BuyResponse](models.BuyRequest{}),
	bind[models.SellResponse](models.SellRequest{}),
	bind[models.EditResponse](models.EditRequest{}),
	bind[models.CancelResponse](models.CancelRequest{}),
	bind[models.CancelAllResponse](models.CancelAllRequest{}),
	bind[models.CancelAllResponse](models.CancelAllByInstrumentRequest{}),
	bind[models.CancelAllResponse](models.CancelAllByCurrencyRequest{}),
	bind[models.GetOrderStateResponse](models.GetOrderStateRequest{}),
	bind[models.SubscribeResponse](models.PublicSubscribeRequest{}),
	bind[models.SubscribeResponse](models.PrivateSubscribeRequest{}),
)

func index(bindings ...Binding) map[string]Binding {
	m := make(map[string]Binding, len(bindings))
	for _, b := range bindings {
		if _, dup := m[b.Method]; dup {
			panic(fmt.Sprintf("rpc: method %s bound twice", b.Method))
		}
		m[b.Method] = b
	}
	return m
}

// Lookup returns the binding for a wire method name.
func Lookup(method string) (Binding, bool) {
	b, ok := catalog[method]
	return b, ok
}

// Methods returns every bound method name in sorted order.
func Methods() []string {
	out := make([]string, 0, len(catalog))
	for m := range catalog {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
