package models

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"deribitrpc/models/channel"
)

func responseType[Resp any](req Request[Resp]) reflect.Type {
	return reflect.TypeOf(req.NewResponse()).Elem()
}

func TestMethodBindings(t *testing.T) {
	tests := []struct {
		method string
		got    string
		resp   reflect.Type
		want   reflect.Type
	}{
		{"public/set_heartbeat", MethodOf[SetHeartbeatRequest](), responseType[SetHeartbeatResponse](SetHeartbeatRequest{}), reflect.TypeOf(Ack(""))},
		{"public/disable_heartbeat", MethodOf[DisableHeartbeatRequest](), responseType[DisableHeartbeatResponse](DisableHeartbeatRequest{}), reflect.TypeOf(Ack(""))},
		{"private/buy", MethodOf[BuyRequest](), responseType[BuyResponse](BuyRequest{}), reflect.TypeOf(BuyResponse{})},
		{"private/sell", MethodOf[SellRequest](), responseType[SellResponse](SellRequest{}), reflect.TypeOf(SellResponse{})},
		{"private/edit", MethodOf[EditRequest](), responseType[EditResponse](EditRequest{}), reflect.TypeOf(EditResponse{})},
		{"private/cancel", MethodOf[CancelRequest](), responseType[CancelResponse](CancelRequest{}), reflect.TypeOf(CancelResponse{})},
		{"private/cancel_all", MethodOf[CancelAllRequest](), responseType[CancelAllResponse](CancelAllRequest{}), reflect.TypeOf(Ack(""))},
		{"private/cancel_all_by_instrument", MethodOf[CancelAllByInstrumentRequest](), responseType[CancelAllResponse](CancelAllByInstrumentRequest{}), reflect.TypeOf(Ack(""))},
		{"private/cancel_all_by_currency", MethodOf[CancelAllByCurrencyRequest](), responseType[CancelAllResponse](CancelAllByCurrencyRequest{}), reflect.TypeOf(Ack(""))},
		{"private/get_order_state", MethodOf[GetOrderStateRequest](), responseType[GetOrderStateResponse](GetOrderStateRequest{}), reflect.TypeOf(GetOrderStateResponse{})},
		{"public/subscribe", MethodOf[PublicSubscribeRequest](), responseType[SubscribeResponse](PublicSubscribeRequest{}), reflect.TypeOf(SubscribeResponse{})},
		{"private/subscribe", MethodOf[PrivateSubscribeRequest](), responseType[SubscribeResponse](PrivateSubscribeRequest{}), reflect.TypeOf(SubscribeResponse{})},
	}
	for _, tt := range tests {
		if tt.got != tt.method {
			t.Errorf("MethodOf = %q want %q", tt.got, tt.method)
		}
		if tt.resp != tt.want {
			t.Errorf("%s response type = %v want %v", tt.method, tt.resp, tt.want)
		}
	}
}

func TestMethodIsStable(t *testing.T) {
	first := MethodOf[BuyRequest]()
	for i := 0; i < 5; i++ {
		if got := NewLimitBuy("BTC-PERPETUAL", float64(i), 10).Method(); got != first {
			t.Fatalf("instance method %q differs from type method %q", got, first)
		}
		if got := MethodOf[BuyRequest](); got != first {
			t.Fatalf("repeated lookup %q differs from %q", got, first)
		}
	}
	a := BuyRequest{}.NewResponse()
	b := BuyRequest{}.NewResponse()
	if a == b {
		t.Fatalf("NewResponse must return a fresh value")
	}
}

func TestVoidRequests(t *testing.T) {
	voids := []any{DisableHeartbeatRequest{}, CancelAllRequest{}, new(CancelAllRequest)}
	for _, req := range voids {
		if !IsVoid(req) {
			t.Errorf("%T should be void", req)
		}
	}
	others := []any{SetHeartbeatRequest{}, CancelAllByCurrencyRequest{}, NewCancel("x"), PrivateSubscribeRequest{}}
	for _, req := range others {
		if IsVoid(req) {
			t.Errorf("%T should not be void", req)
		}
	}
}

func TestTradeRequestJSON(t *testing.T) {
	out, err := json.Marshal(NewLimitBuy("BTC-PERPETUAL", 65000.5, 100))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"instrument_name":"BTC-PERPETUAL","amount":100,"type":"limit","price":65000.5,"time_in_force":"good_til_cancelled","post_only":false,"reduce_only":false}`
	if string(out) != want {
		t.Errorf("marshal = %s\nwant      %s", out, want)
	}

	out, err = json.Marshal(NewMarketSell("ETH-PERPETUAL", 3))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), `"price"`) {
		t.Errorf("market order should omit price: %s", out)
	}
}

func TestCancelAllByCurrencyDefaultsType(t *testing.T) {
	out, err := json.Marshal(CancelAllByCurrencyRequest{Currency: CurrencyBTC})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"currency":"BTC","type":"all"}` {
		t.Errorf("marshal = %s", out)
	}
}

func TestPrivateSubscribeFromIDs(t *testing.T) {
	req := NewPrivateSubscribe(
		channel.ID{Namespace: channel.UserOrders, Target: channel.ByInstrument{InstrumentName: "BTC-PERPETUAL", Interval: "raw"}},
		channel.ID{Namespace: channel.UserTrades, Target: channel.ByKind{Kind: "future", Currency: "BTC", Interval: "100ms"}},
	)
	want := []string{"user.orders.BTC-PERPETUAL.raw", "user.trades.future.BTC.100ms"}
	if !reflect.DeepEqual(req.Channels, want) {
		t.Errorf("channels = %v want %v", req.Channels, want)
	}
}

func TestAckDecode(t *testing.T) {
	var a Ack
	if err := json.Unmarshal([]byte(`"ok"`), &a); err != nil || a != AckOK {
		t.Fatalf("decode ok = %q, %v", a, err)
	}
	for _, in := range []string{`"OK"`, `"error"`, `1`, `null`} {
		var b Ack
		if err := json.Unmarshal([]byte(in), &b); !errors.Is(err, ErrUnexpectedAck) {
			t.Errorf("decode %s err = %v, want ErrUnexpectedAck", in, err)
		}
	}
}

func TestBuyResponseDecode(t *testing.T) {
	data := `{
		"trades": [{
			"trade_seq": 1966031, "trade_id": "ETH-2696097", "timestamp": 1590486335742,
			"tick_direction": 0, "state": "filled", "self_trade": false, "price": 202.8,
			"order_type": "limit", "order_id": "ETH-584864807", "matching_id": null,
			"liquidity": "taker", "label": "market0000234", "instrument_name": "ETH-PERPETUAL",
			"index_price": 203.72, "fee_currency": "ETH", "fee": 0.00014757, "direction": "buy",
			"amount": 40
		}],
		"order": {
			"time_in_force": "good_til_cancelled", "reduce_only": false, "profit_loss": 0.00022929,
			"price": 207.3, "post_only": false, "order_type": "market", "order_state": "filled",
			"order_id": "ETH-584864807", "max_show": 40, "last_update_timestamp": 1590486335742,
			"label": "market0000234", "is_liquidation": false, "instrument_name": "ETH-PERPETUAL",
			"filled_amount": 40, "direction": "buy", "creation_timestamp": 1590486335742,
			"commission": 0.00014757, "average_price": 202.8, "api": true, "amount": 40
		}
	}`
	resp := BuyRequest{}.NewResponse()
	if err := json.Unmarshal([]byte(data), resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Trades) != 1 || resp.Trades[0].TradeID != "ETH-2696097" {
		t.Fatalf("unexpected trades: %+v", resp.Trades)
	}
	if resp.Trades[0].MatchingID != nil {
		t.Errorf("matching_id should be nil")
	}
	if v, ok := resp.Order.Price.Get(); !ok || v != 207.3 {
		t.Errorf("order price = %v", resp.Order.Price)
	}
}

func TestStopMarketPriceIsAbsent(t *testing.T) {
	data := `{"order_id":"BTC-1","order_type":"stop_market","order_state":"untriggered","price":"market_price","stop_price":60000,"label":"","amount":10}`
	resp := GetOrderStateRequest{}.NewResponse()
	if err := json.Unmarshal([]byte(data), resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := resp.Price.Get(); ok {
		t.Errorf("price should be absent, got %v", resp.Price)
	}
	if resp.StopPrice == nil || *resp.StopPrice != 60000 {
		t.Errorf("stop price = %v", resp.StopPrice)
	}
}

func TestNewLabel(t *testing.T) {
	a, b := NewLabel(), NewLabel()
	if a == b {
		t.Fatalf("labels should be unique")
	}
	if len(a) > 64 {
		t.Fatalf("label too long: %d", len(a))
	}
	req := MarketOrder("BTC-PERPETUAL", 10).WithLabel(a)
	if req.Label != a {
		t.Errorf("label = %q want %q", req.Label, a)
	}
}
