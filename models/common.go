package models

/////////////////////////////////////////////////////////////////////////////
////////////////////////////////// ENUMS ////////////////////////////////////
/////////////////////////////////////////////////////////////////////////////

// Direction is the side of an order or trade.
type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
	DirectionZero Direction = "zero"
)

// OrderState is the lifecycle state of an order.
type OrderState string

const (
	OrderStateOpen        OrderState = "open"
	OrderStateFilled      OrderState = "filled"
	OrderStateRejected    OrderState = "rejected"
	OrderStateCancelled   OrderState = "cancelled"
	OrderStateUntriggered OrderState = "untriggered"
	OrderStateTriggered   OrderState = "triggered"
	OrderStateArchive     OrderState = "archive"
)

// OrderType is the execution style of an order.
type OrderType string

const (
	OrderTypeLimit        OrderType = "limit"
	OrderTypeMarket       OrderType = "market"
	OrderTypeStopLimit    OrderType = "stop_limit"
	OrderTypeStopMarket   OrderType = "stop_market"
	OrderTypeTakeLimit    OrderType = "take_limit"
	OrderTypeTakeMarket   OrderType = "take_market"
	OrderTypeMarketLimit  OrderType = "market_limit"
	OrderTypeTrailingStop OrderType = "trailing_stop"
	OrderTypeLiquidation  OrderType = "liquidation"
)

// TimeInForce controls how long an order rests on the book.
type TimeInForce string

const (
	GoodTilCancelled  TimeInForce = "good_til_cancelled"
	GoodTilDay        TimeInForce = "good_til_day"
	FillOrKill        TimeInForce = "fill_or_kill"
	ImmediateOrCancel TimeInForce = "immediate_or_cancel"
)

// Trigger is the price a stop or take order watches.
type Trigger string

const (
	TriggerIndexPrice Trigger = "index_price"
	TriggerMarkPrice  Trigger = "mark_price"
	TriggerLastPrice  Trigger = "last_price"
)

// AdvanceOption selects advanced option pricing: in USD or implied volatility.
type AdvanceOption string

const (
	AdvanceUSD   AdvanceOption = "usd"
	AdvanceImplV AdvanceOption = "implv"
)

// Currency is a settlement currency.
type Currency string

const (
	CurrencyBTC  Currency = "BTC"
	CurrencyETH  Currency = "ETH"
	CurrencyUSDC Currency = "USDC"
	CurrencyUSDT Currency = "USDT"
	CurrencyEURR Currency = "EURR"
)

// AssetKind is the instrument kind.
type AssetKind string

const (
	KindFuture      AssetKind = "future"
	KindOption      AssetKind = "option"
	KindSpot        AssetKind = "spot"
	KindFutureCombo AssetKind = "future_combo"
	KindOptionCombo AssetKind = "option_combo"
)

// Role is the liquidity side taken by a fill in a trading response.
type Role string

const (
	RoleMaker Role = "maker"
	RoleTaker Role = "taker"
)

// LiquidityType is the liquidity side reported on user.trades: "M" or "T".
type LiquidityType string

const (
	LiquidityMaker LiquidityType = "M"
	LiquidityTaker LiquidityType = "T"
)

// LiquidationType reports which side of a trade was liquidated.
type LiquidationType string

const (
	LiquidationMaker LiquidationType = "M"
	LiquidationTaker LiquidationType = "T"
	LiquidationBoth  LiquidationType = "MT"
)

// CancelReason explains why an order left the book without filling.
type CancelReason string

const (
	CancelUserRequest        CancelReason = "user_request"
	CancelAutoliquidation    CancelReason = "autoliquidation"
	CancelOnDisconnect       CancelReason = "cancel_on_disconnect"
	CancelRiskMitigation     CancelReason = "risk_mitigation"
	CancelPMERiskReduction   CancelReason = "pme_risk_reduction"
	CancelPMEAccountLocked   CancelReason = "pme_account_locked"
	CancelPositionLocked     CancelReason = "position_locked"
	CancelMMPTrigger         CancelReason = "mmp_trigger"
	CancelMMPConfigCurtail   CancelReason = "mmp_config_curtailment"
	CancelEditPostOnlyReject CancelReason = "edit_post_only_reject"
	CancelSettlement         CancelReason = "settlement"
)

// CancelOrderType narrows a cancel-all to a family of orders. The zero value
// is treated as CancelOrderAll when sent.
type CancelOrderType string

const (
	CancelOrderAll   CancelOrderType = "all"
	CancelOrderLimit CancelOrderType = "limit"
	CancelOrderStop  CancelOrderType = "stop"
)

// MarshalText writes the zero value as "all".
func (t CancelOrderType) MarshalText() ([]byte, error) {
	if t == "" {
		return []byte(CancelOrderAll), nil
	}
	return []byte(t), nil
}

// HeartbeatType distinguishes a plain heartbeat from a test request that
// must be answered.
type HeartbeatType string

const (
	HeartbeatPlain       HeartbeatType = "heartbeat"
	HeartbeatTestRequest HeartbeatType = "test_request"
)
