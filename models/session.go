package models

// HeartbeatParams is the payload of a server heartbeat notification.
type HeartbeatParams struct {
	Type HeartbeatType `json:"type"`
}

// SetHeartbeatRequest enables server heartbeats every Interval seconds.
type SetHeartbeatRequest struct {
	Interval uint64 `json:"interval"`
}

// NewSetHeartbeat returns a request for heartbeats every interval seconds.
func NewSetHeartbeat(interval uint64) SetHeartbeatRequest {
	return SetHeartbeatRequest{Interval: interval}
}

func (SetHeartbeatRequest) Method() string { return "public/set_heartbeat" }

func (SetHeartbeatRequest) NewResponse() *SetHeartbeatResponse { return new(SetHeartbeatResponse) }

// DisableHeartbeatRequest stops server heartbeats.
type DisableHeartbeatRequest struct{}

func (DisableHeartbeatRequest) Method() string { return "public/disable_heartbeat" }

func (DisableHeartbeatRequest) NewResponse() *DisableHeartbeatResponse {
	return new(DisableHeartbeatResponse)
}

func (DisableHeartbeatRequest) Empty() bool { return true }
