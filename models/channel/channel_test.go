package channel

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		ns   Namespace
		in   string
		want Target
	}{
		{UserOrders, "user.orders.BTC-PERPETUAL.100ms", ByInstrument{InstrumentName: "BTC-PERPETUAL", Interval: "100ms"}},
		{UserOrders, "user.orders.option.ETH.raw", ByKind{Kind: "option", Currency: "ETH", Interval: "raw"}},
		{UserTrades, "user.trades.future.BTC.raw", ByKind{Kind: "future", Currency: "BTC", Interval: "raw"}},
		{UserTrades, "user.trades.ETH-27DEC24-3000-C.agg2", ByInstrument{InstrumentName: "ETH-27DEC24-3000-C", Interval: "agg2"}},
		{UserOrders, "user.orders..raw", ByInstrument{InstrumentName: "", Interval: "raw"}},
	}
	for _, tt := range tests {
		id, err := Parse(tt.ns, tt.in)
		if err != nil {
			t.Fatalf("Parse(%s, %q): %v", tt.ns, tt.in, err)
		}
		if id.Namespace != tt.ns || id.Target != tt.want {
			t.Errorf("Parse(%s, %q) = %+v want %+v", tt.ns, tt.in, id, tt.want)
		}
		if got := id.String(); got != tt.in {
			t.Errorf("String() = %q want %q", got, tt.in)
		}
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		ns Namespace
		in string
	}{
		{UserOrders, "user.orders.BTC-PERPETUAL"},
		{UserOrders, "user.orders"},
		{UserOrders, ""},
		{UserOrders, "user.orders.a.b.c.d"},
		{UserOrders, "user.trades.BTC-PERPETUAL.raw"},
		{UserTrades, "trades.future.BTC.raw"},
		{UserTrades, "User.trades.future.BTC.raw"},
		{UserTrades, " user.trades.future.BTC.raw"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.ns, tt.in)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Parse(%s, %q) err = %v, want ErrInvalidFormat", tt.ns, tt.in, err)
		}
		var ife *InvalidFormatError
		if !errors.As(err, &ife) {
			t.Fatalf("expected *InvalidFormatError, got %T", err)
		}
		if ife.Input != tt.in {
			t.Errorf("Input = %q want %q", ife.Input, tt.in)
		}
		if len(ife.Patterns) != 2 {
			t.Errorf("expected both patterns, got %v", ife.Patterns)
		}
	}
}

func TestInvalidFormatMessage(t *testing.T) {
	_, err := Parse(UserOrders, "user.orders.BTC-PERPETUAL")
	msg := err.Error()
	for _, want := range []string{
		`"user.orders.BTC-PERPETUAL"`,
		"user.orders.{instrument_name}.{interval}",
		"user.orders.{kind}.{currency}.{interval}",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestRoundTripFromValue(t *testing.T) {
	ids := []ID{
		{Namespace: UserOrders, Target: ByInstrument{InstrumentName: "BTC-PERPETUAL", Interval: "raw"}},
		{Namespace: UserOrders, Target: ByKind{Kind: "any", Currency: "any", Interval: "100ms"}},
		{Namespace: UserTrades, Target: ByInstrument{InstrumentName: "SOL_USDC", Interval: "100ms"}},
		{Namespace: UserTrades, Target: ByKind{Kind: "future_combo", Currency: "BTC", Interval: "raw"}},
	}
	for _, id := range ids {
		got, err := Parse(id.Namespace, id.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", id.String(), err)
		}
		if got != id {
			t.Errorf("round trip = %+v want %+v", got, id)
		}
		viaAny, err := ParseAny(id.String())
		if err != nil || viaAny != id {
			t.Errorf("ParseAny(%q) = %+v, %v", id.String(), viaAny, err)
		}
	}
}

func TestParseAnyRejects(t *testing.T) {
	_, err := ParseAny("book.BTC-PERPETUAL.100ms")
	var ife *InvalidFormatError
	if !errors.As(err, &ife) {
		t.Fatalf("expected *InvalidFormatError, got %v", err)
	}
	if len(ife.Patterns) != 4 {
		t.Errorf("expected patterns for every namespace, got %v", ife.Patterns)
	}
}

func TestMarshalTextWithoutTarget(t *testing.T) {
	if _, err := (ID{Namespace: UserOrders}).MarshalText(); err == nil {
		t.Fatalf("expected error for missing target")
	}
}

func TestFamilyJSON(t *testing.T) {
	type payload struct {
		Orders UserOrdersChannel `json:"orders"`
		Trades UserTradesChannel `json:"trades"`
	}
	in := `{"orders":"user.orders.BTC-PERPETUAL.100ms","trades":"user.trades.future.BTC.raw"}`

	var p payload
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Orders.Target != (ByInstrument{InstrumentName: "BTC-PERPETUAL", Interval: "100ms"}) {
		t.Errorf("orders target = %+v", p.Orders.Target)
	}
	if p.Trades.Target != (ByKind{Kind: "future", Currency: "BTC", Interval: "raw"}) {
		t.Errorf("trades target = %+v", p.Trades.Target)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != in {
		t.Errorf("marshal = %s want %s", out, in)
	}
}

func TestFamilyJSONRejectsWholePayload(t *testing.T) {
	var p struct {
		Trades UserTradesChannel `json:"trades"`
		Other  string            `json:"other"`
	}
	err := json.Unmarshal([]byte(`{"trades":"user.orders.BTC-PERPETUAL.raw","other":"x"}`), &p)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}
