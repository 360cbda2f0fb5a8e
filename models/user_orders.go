package models

import "encoding/json"

// UserOrdersData is one order update pushed on a user.orders channel.
type UserOrdersData struct {
	Advanced              AdvanceOption `json:"advanced,omitempty"`
	Amount                float64       `json:"amount"`
	API                   bool          `json:"api"`
	AppName               *string       `json:"app_name,omitempty"`
	AutoReplaced          *bool         `json:"auto_replaced,omitempty"`
	AveragePrice          float64       `json:"average_price"`
	BlockTrade            *bool         `json:"block_trade,omitempty"`
	CancelReason          CancelReason  `json:"cancel_reason,omitempty"`
	ComboOrderID          *string       `json:"combo_order_id,omitempty"`
	Commission            *float64      `json:"commission,omitempty"`
	Contracts             *float64      `json:"contracts,omitempty"`
	CreationTimestamp     int64         `json:"creation_timestamp"`
	Direction             Direction     `json:"direction"`
	FilledAmount          float64       `json:"filled_amount"`
	ImplV                 *float64      `json:"implv,omitempty"`
	InstrumentName        string        `json:"instrument_name"`
	IsLiquidation         *bool         `json:"is_liquidation,omitempty"`
	IsRebalance           *bool         `json:"is_rebalance,omitempty"`
	Label                 string        `json:"label"`
	LastUpdateTimestamp   int64         `json:"last_update_timestamp"`
	MaxShow               float64       `json:"max_show"`
	MMP                   bool          `json:"mmp"`
	MMPCancelled          *bool         `json:"mmp_cancelled,omitempty"`
	MMPGroup              *string       `json:"mmp_group,omitempty"`
	Mobile                *bool         `json:"mobile,omitempty"`
	OriginalOrderType     OrderType     `json:"original_order_type,omitempty"`
	OrderID               string        `json:"order_id"`
	OrderState            OrderState    `json:"order_state"`
	OrderType             OrderType     `json:"order_type"`
	PostOnly              bool          `json:"post_only"`
	Price                 OptionalFloat `json:"price"`
	Quote                 *bool         `json:"quote,omitempty"`
	QuoteID               *string       `json:"quote_id,omitempty"`
	QuoteSetID            *string       `json:"quote_set_id,omitempty"`
	ReduceOnly            *bool         `json:"reduce_only,omitempty"`
	RejectPostOnly        *bool         `json:"reject_post_only,omitempty"`
	RiskReducing          bool          `json:"risk_reducing"`
	StopPrice             *float64      `json:"stop_price,omitempty"`
	TimeInForce           TimeInForce   `json:"time_in_force"`
	Trigger               Trigger       `json:"trigger,omitempty"`
	Triggered             *bool         `json:"triggered,omitempty"`
	TriggerPrice          *float64      `json:"trigger_price,omitempty"`
	TriggerOffset         *float64      `json:"trigger_offset,omitempty"`
	TriggerOrderID        *string       `json:"trigger_order_id,omitempty"`
	TriggerReferencePrice *float64      `json:"trigger_reference_price,omitempty"`
	USD                   *float64      `json:"usd,omitempty"`
	Replaced              bool          `json:"replaced"`
	Web                   *bool         `json:"web,omitempty"`
}

// UnmarshalJSON requires the price member.
func (d *UserOrdersData) UnmarshalJSON(data []byte) error {
	type plain UserOrdersData
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := requireField(data, "price"); err != nil {
		return err
	}
	*d = UserOrdersData(p)
	return nil
}
