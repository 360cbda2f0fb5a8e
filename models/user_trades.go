package models

// UserTradesData is one fill pushed on a user.trades channel.
type UserTradesData struct {
	Amount            float64         `json:"amount"`
	API               bool            `json:"api"`
	ComboID           *string         `json:"combo_id,omitempty"`
	Contracts         *float64        `json:"contracts,omitempty"`
	Direction         Direction       `json:"direction"`
	Fee               float64         `json:"fee"`
	FeeCurrency       Currency        `json:"fee_currency"`
	IndexPrice        float64         `json:"index_price"`
	InstrumentName    string          `json:"instrument_name"`
	IV                *float64        `json:"iv,omitempty"`
	Label             *string         `json:"label,omitempty"`
	Liquidity         LiquidityType   `json:"liquidity"`
	Liquidation       LiquidationType `json:"liquidation,omitempty"`
	MarkPrice         *float64        `json:"mark_price,omitempty"`
	MatchingID        *string         `json:"matching_id,omitempty"`
	MMP               bool            `json:"mmp"`
	OrderID           string          `json:"order_id"`
	OrderType         OrderType       `json:"order_type"`
	OriginalOrderType *string         `json:"original_order_type,omitempty"`
	Price             float64         `json:"price"`
	ProfitLoss        *float64        `json:"profit_loss,omitempty"`
	ReduceOnly        *bool           `json:"reduce_only,omitempty"`
	RiskReducing      *bool           `json:"risk_reducing,omitempty"`
	SelfTrade         bool            `json:"self_trade"`
	State             OrderState      `json:"state"`
	TickDirection     int64           `json:"tick_direction"`
	Timestamp         int64           `json:"timestamp"`
	TradeID           string          `json:"trade_id"`
	TradeSeq          int64           `json:"trade_seq"`
	PostOnly          bool            `json:"post_only"`
}
