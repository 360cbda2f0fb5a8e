package models

import (
	"encoding/json"
	"fmt"
)

// Ack is the bare "ok" result of calls that return no data.
type Ack string

// AckOK is the only acknowledgement the exchange sends.
const AckOK Ack = "ok"

// UnmarshalJSON rejects anything other than the string "ok".
func (a *Ack) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrUnexpectedAck, data)
	}
	if Ack(s) != AckOK {
		return fmt.Errorf("%w: %q", ErrUnexpectedAck, s)
	}
	*a = AckOK
	return nil
}

type (
	SetHeartbeatResponse     = Ack
	DisableHeartbeatResponse = Ack
	CancelAllResponse        = Ack
)
