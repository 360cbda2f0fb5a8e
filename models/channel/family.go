package channel

// UserOrdersChannel is a user.orders channel as it appears inside JSON
// payloads.
type UserOrdersChannel struct {
	Target Target
}

// ID returns the fully qualified channel.
func (c UserOrdersChannel) ID() ID { return ID{Namespace: UserOrders, Target: c.Target} }

func (c UserOrdersChannel) String() string { return c.ID().String() }

// MarshalText implements encoding.TextMarshaler.
func (c UserOrdersChannel) MarshalText() ([]byte, error) { return c.ID().MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *UserOrdersChannel) UnmarshalText(text []byte) error {
	id, err := Parse(UserOrders, string(text))
	if err != nil {
		return err
	}
	c.Target = id.Target
	return nil
}

// UserTradesChannel is a user.trades channel as it appears inside JSON
// payloads.
type UserTradesChannel struct {
	Target Target
}

// ID returns the fully qualified channel.
func (c UserTradesChannel) ID() ID { return ID{Namespace: UserTrades, Target: c.Target} }

func (c UserTradesChannel) String() string { return c.ID().String() }

// MarshalText implements encoding.TextMarshaler.
func (c UserTradesChannel) MarshalText() ([]byte, error) { return c.ID().MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *UserTradesChannel) UnmarshalText(text []byte) error {
	id, err := Parse(UserTrades, string(text))
	if err != nil {
		return err
	}
	c.Target = id.Target
	return nil
}
