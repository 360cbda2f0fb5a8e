package models

import "github.com/google/uuid"

// NewLabel returns a unique client label for an order, for callers building
// a TradeRequest that they later want to find in user.orders updates. The
// exchange caps labels at 64 characters; a UUID string is 36.
func NewLabel() string {
	return uuid.New().String()
}

// WithLabel returns a copy of the order carrying label, usually one from
// NewLabel.
func (r TradeRequest) WithLabel(label string) TradeRequest {
	r.Label = label
	return r
}
