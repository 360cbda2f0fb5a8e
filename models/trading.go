package models

import "encoding/json"

/////////////////////////////////////////////////////////////////////////////
/////////////////////////////// ORDER ENTRY /////////////////////////////////
/////////////////////////////////////////////////////////////////////////////

// TradeRequest is the parameter set shared by buy and sell.
type TradeRequest struct {
	InstrumentName string        `json:"instrument_name"`
	Amount         float64       `json:"amount"`
	Type           OrderType     `json:"type"`
	Label          string        `json:"label,omitempty"`
	Price          *float64      `json:"price,omitempty"`
	TimeInForce    TimeInForce   `json:"time_in_force"`
	MaxShow        *float64      `json:"max_show,omitempty"`
	PostOnly       bool          `json:"post_only"`
	ReduceOnly     bool          `json:"reduce_only"`
	StopPrice      *float64      `json:"stop_price,omitempty"`
	Trigger        Trigger       `json:"trigger,omitempty"`
	Advanced       AdvanceOption `json:"advanced,omitempty"`
}

// MarketOrder returns a good-til-cancelled market order.
func MarketOrder(instrumentName string, amount float64) TradeRequest {
	return TradeRequest{
		InstrumentName: instrumentName,
		Amount:         amount,
		Type:           OrderTypeMarket,
		TimeInForce:    GoodTilCancelled,
	}
}

// LimitOrder returns a good-til-cancelled limit order.
func LimitOrder(instrumentName string, amount, price float64) TradeRequest {
	return TradeRequest{
		InstrumentName: instrumentName,
		Amount:         amount,
		Type:           OrderTypeLimit,
		Price:          &price,
		TimeInForce:    GoodTilCancelled,
	}
}

// TradeResponse is returned by buy, sell and edit.
type TradeResponse struct {
	Trades []Trade `json:"trades"`
	Order  Order   `json:"order"`
}

// Trade is a fill reported in a trading response.
type Trade struct {
	TradeSeq       int64      `json:"trade_seq"`
	TradeID        string     `json:"trade_id"`
	Timestamp      int64      `json:"timestamp"`
	TickDirection  int64      `json:"tick_direction"`
	State          OrderState `json:"state"`
	SelfTrade      bool       `json:"self_trade"`
	Price          float64    `json:"price"`
	OrderType      OrderType  `json:"order_type"`
	OrderID        string     `json:"order_id"`
	MatchingID     *string    `json:"matching_id"`
	Liquidity      Role       `json:"liquidity"`
	Label          *string    `json:"label"`
	InstrumentName string     `json:"instrument_name"`
	IndexPrice     float64    `json:"index_price"`
	FeeCurrency    Currency   `json:"fee_currency"`
	Fee            float64    `json:"fee"`
	Direction      Direction  `json:"direction"`
	Amount         float64    `json:"amount"`
}

// Order is the order state carried in a trading response. Price is absent
// for stop market orders.
type Order struct {
	TimeInForce         TimeInForce   `json:"time_in_force"`
	ReduceOnly          bool          `json:"reduce_only"`
	ProfitLoss          float64       `json:"profit_loss"`
	Price               OptionalFloat `json:"price"`
	PostOnly            bool          `json:"post_only"`
	OrderType           OrderType     `json:"order_type"`
	OrderState          OrderState    `json:"order_state"`
	OrderID             string        `json:"order_id"`
	MaxShow             float64       `json:"max_show"`
	LastUpdateTimestamp int64         `json:"last_update_timestamp"`
	Label               *string       `json:"label"`
	IsLiquidation       bool          `json:"is_liquidation"`
	InstrumentName      string        `json:"instrument_name"`
	FilledAmount        float64       `json:"filled_amount"`
	Direction           Direction     `json:"direction"`
	CreationTimestamp   int64         `json:"creation_timestamp"`
	Commission          float64       `json:"commission"`
	AveragePrice        float64       `json:"average_price"`
	API                 bool          `json:"api"`
	Amount              float64       `json:"amount"`
}

// UnmarshalJSON requires the price member.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := requireField(data, "price"); err != nil {
		return err
	}
	*o = Order(p)
	return nil
}

// BuyRequest places a buy order.
type BuyRequest struct {
	TradeRequest
}

// BuyResponse answers a BuyRequest.
type BuyResponse struct {
	TradeResponse
}

// NewMarketBuy returns a market buy.
func NewMarketBuy(instrumentName string, amount float64) BuyRequest {
	return BuyRequest{MarketOrder(instrumentName, amount)}
}

// NewLimitBuy returns a limit buy.
func NewLimitBuy(instrumentName string, price, amount float64) BuyRequest {
	return BuyRequest{LimitOrder(instrumentName, amount, price)}
}

func (BuyRequest) Method() string { return "private/buy" }

func (BuyRequest) NewResponse() *BuyResponse { return new(BuyResponse) }

// SellRequest places a sell order.
type SellRequest struct {
	TradeRequest
}

// SellResponse answers a SellRequest.
type SellResponse struct {
	TradeResponse
}

// NewMarketSell returns a market sell.
func NewMarketSell(instrumentName string, amount float64) SellRequest {
	return SellRequest{MarketOrder(instrumentName, amount)}
}

// NewLimitSell returns a limit sell.
func NewLimitSell(instrumentName string, price, amount float64) SellRequest {
	return SellRequest{LimitOrder(instrumentName, amount, price)}
}

func (SellRequest) Method() string { return "private/sell" }

func (SellRequest) NewResponse() *SellResponse { return new(SellResponse) }

// EditRequest changes the price and amount of a resting order.
type EditRequest struct {
	OrderID   string        `json:"order_id"`
	Amount    float64       `json:"amount"`
	Price     float64       `json:"price"`
	PostOnly  *bool         `json:"post_only,omitempty"`
	Advanced  AdvanceOption `json:"advanced,omitempty"`
	StopPrice *float64      `json:"stop_price,omitempty"`
}

// EditResponse answers an EditRequest.
type EditResponse struct {
	TradeResponse
}

// NewEdit returns an edit of orderID to price and amount.
func NewEdit(orderID string, price, amount float64) EditRequest {
	return EditRequest{OrderID: orderID, Amount: amount, Price: price}
}

func (EditRequest) Method() string { return "private/edit" }

func (EditRequest) NewResponse() *EditResponse { return new(EditResponse) }

/////////////////////////////////////////////////////////////////////////////
///////////////////////////////// CANCELS ///////////////////////////////////
/////////////////////////////////////////////////////////////////////////////

// OrderDetails is the full order record returned by cancel and
// get_order_state.
type OrderDetails struct {
	Advanced            AdvanceOption `json:"advanced,omitempty"`
	Amount              float64       `json:"amount"`
	API                 bool          `json:"api"`
	AveragePrice        float64       `json:"average_price"`
	Commission          float64       `json:"commission"`
	CreationTimestamp   int64         `json:"creation_timestamp"`
	Direction           Direction     `json:"direction"`
	FilledAmount        float64       `json:"filled_amount"`
	ImplV               *float64      `json:"implv"`
	InstrumentName      string        `json:"instrument_name"`
	IsLiquidation       bool          `json:"is_liquidation"`
	Label               string        `json:"label"`
	LastUpdateTimestamp int64         `json:"last_update_timestamp"`
	MaxShow             float64       `json:"max_show"`
	OrderID             string        `json:"order_id"`
	OrderState          OrderState    `json:"order_state"`
	OrderType           OrderType     `json:"order_type"`
	PostOnly            bool          `json:"post_only"`
	Price               OptionalFloat `json:"price"`
	ProfitLoss          float64       `json:"profit_loss"`
	ReduceOnly          bool          `json:"reduce_only"`
	StopPrice           *float64      `json:"stop_price"`
	TimeInForce         TimeInForce   `json:"time_in_force"`
	Trigger             Trigger       `json:"trigger,omitempty"`
	Triggered           *bool         `json:"triggered"`
	USD                 *float64      `json:"usd"`
}

// UnmarshalJSON requires the price member. CancelResponse and
// GetOrderStateResponse decode through it.
func (d *OrderDetails) UnmarshalJSON(data []byte) error {
	type plain OrderDetails
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := requireField(data, "price"); err != nil {
		return err
	}
	*d = OrderDetails(p)
	return nil
}

// CancelRequest cancels one order.
type CancelRequest struct {
	OrderID string `json:"order_id"`
}

// CancelResponse is the cancelled order.
type CancelResponse struct {
	OrderDetails
}

// NewCancel returns a cancel of orderID.
func NewCancel(orderID string) CancelRequest {
	return CancelRequest{OrderID: orderID}
}

func (CancelRequest) Method() string { return "private/cancel" }

func (CancelRequest) NewResponse() *CancelResponse { return new(CancelResponse) }

// CancelAllRequest cancels every open order.
type CancelAllRequest struct{}

func (CancelAllRequest) Method() string { return "private/cancel_all" }

func (CancelAllRequest) NewResponse() *CancelAllResponse { return new(CancelAllResponse) }

func (CancelAllRequest) Empty() bool { return true }

// CancelAllByInstrumentRequest cancels every order on one instrument.
type CancelAllByInstrumentRequest struct {
	InstrumentName string          `json:"instrument_name"`
	Type           CancelOrderType `json:"type"`
}

func (CancelAllByInstrumentRequest) Method() string { return "private/cancel_all_by_instrument" }

func (CancelAllByInstrumentRequest) NewResponse() *CancelAllResponse {
	return new(CancelAllResponse)
}

// CancelAllByCurrencyRequest cancels every order settled in a currency,
// optionally narrowed to one instrument kind.
type CancelAllByCurrencyRequest struct {
	Currency Currency        `json:"currency"`
	Kind     AssetKind       `json:"kind,omitempty"`
	Type     CancelOrderType `json:"type"`
}

func (CancelAllByCurrencyRequest) Method() string { return "private/cancel_all_by_currency" }

func (CancelAllByCurrencyRequest) NewResponse() *CancelAllResponse {
	return new(CancelAllResponse)
}

// GetOrderStateRequest fetches the current state of one order.
type GetOrderStateRequest struct {
	OrderID string `json:"order_id"`
}

// GetOrderStateResponse is the requested order.
type GetOrderStateResponse struct {
	OrderDetails
}

// NewGetOrderState returns a lookup of orderID.
func NewGetOrderState(orderID string) GetOrderStateRequest {
	return GetOrderStateRequest{OrderID: orderID}
}

func (GetOrderStateRequest) Method() string { return "private/get_order_state" }

func (GetOrderStateRequest) NewResponse() *GetOrderStateResponse {
	return new(GetOrderStateResponse)
}
