package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestOptionalFloatDecode(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{`101325.5`, 101325.5, true},
		{`0`, 0, true},
		{`-12.25`, -12.25, true},
		{`1e3`, 1000, true},
		{`"market_price"`, 0, false},
		{`""`, 0, false},
		{`"123.4"`, 0, false},
	}
	for _, tt := range tests {
		var f OptionalFloat
		if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		v, ok := f.Get()
		if ok != tt.valid || v != tt.want {
			t.Errorf("decode %s = (%v, %v) want (%v, %v)", tt.in, v, ok, tt.want, tt.valid)
		}
	}
}

func TestOptionalFloatTypeMismatch(t *testing.T) {
	for _, in := range []string{`true`, `false`, `null`, `{"price":1}`, `[1]`} {
		var f OptionalFloat
		err := f.UnmarshalJSON([]byte(in))
		if !errors.Is(err, ErrTypeMismatch) {
			t.Fatalf("decode %s err = %v, want ErrTypeMismatch", in, err)
		}
		var tm *TypeMismatchError
		if !errors.As(err, &tm) {
			t.Fatalf("expected *TypeMismatchError, got %T", err)
		}
		if tm.Value != in {
			t.Errorf("Value = %q want %q", tm.Value, in)
		}
		if len(tm.Expected) != 2 || tm.Expected[0] != "string" || tm.Expected[1] != "number" {
			t.Errorf("Expected = %v", tm.Expected)
		}
	}
}

func TestOptionalFloatAbortsPayload(t *testing.T) {
	var o Order
	err := json.Unmarshal([]byte(`{"order_id":"ETH-1","price":true,"amount":10}`), &o)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestPriceMemberRequired(t *testing.T) {
	tests := []struct {
		name string
		dst  interface{}
	}{
		{"order", &Order{}},
		{"get_order_state", GetOrderStateRequest{}.NewResponse()},
		{"cancel", CancelRequest{}.NewResponse()},
		{"user_orders", &UserOrdersData{}},
	}
	for _, tt := range tests {
		err := json.Unmarshal([]byte(`{"order_id":"x","amount":10}`), tt.dst)
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("%s: expected ErrMissingField, got %v", tt.name, err)
			continue
		}
		var mf *MissingFieldError
		if !errors.As(err, &mf) || mf.Field != "price" {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}

	resp := GetOrderStateRequest{}.NewResponse()
	if err := json.Unmarshal([]byte(`{"order_id":"x","price":"market_price"}`), resp); err != nil {
		t.Fatalf("sentinel price rejected: %v", err)
	}
	if resp.OrderID != "x" || resp.Price.Valid {
		t.Errorf("unexpected decode: %+v", resp.OrderDetails)
	}
}

func TestOptionalFloatEncode(t *testing.T) {
	tests := []struct {
		in   OptionalFloat
		want string
	}{
		{Some(101325.5), `101325.5`},
		{None(), `"market_price"`},
	}
	for _, tt := range tests {
		out, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatalf("marshal %v: %v", tt.in, err)
		}
		if string(out) != tt.want {
			t.Errorf("marshal %v = %s want %s", tt.in, out, tt.want)
		}
	}
}

func TestOptionalFloatString(t *testing.T) {
	if got := Some(2.5).String(); got != "2.5" {
		t.Errorf("Some(2.5).String() = %q", got)
	}
	if got := None().String(); got != "none" {
		t.Errorf("None().String() = %q", got)
	}
}
