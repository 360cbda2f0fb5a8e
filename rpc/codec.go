package rpc

import (
	"encoding/json"
	"fmt"

	"deribitrpc/models"
)

var emptyParams = json.RawMessage(`{}`)

// NewCall wraps req in a call envelope with the given id. Void requests are
// sent with an empty params object.
func NewCall[Resp any](id int64, req models.Request[Resp]) (Call, error) {
	params := emptyParams
	if !models.IsVoid(req) {
		data, err := json.Marshal(req)
		if err != nil {
			return Call{}, fmt.Errorf("encode %s params: %w", req.Method(), err)
		}
		params = data
	}
	return Call{
		JSONRPC: Version,
		ID:      id,
		Method:  req.Method(),
		Params:  params,
	}, nil
}

// Encode returns the wire bytes of a call.
func Encode[Resp any](id int64, req models.Request[Resp]) ([]byte, error) {
	call, err := NewCall(id, req)
	if err != nil {
		return nil, err
	}
	return json.Marshal(call)
}

// DecodeResult reads a response envelope and binds its result to the
// response type of req.
func DecodeResult[Resp any](req models.Request[Resp], data []byte) (*Resp, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return BindResult(req, f)
}

// BindResult binds an already parsed response frame to the response type of
// req. A server error object is returned as *Error.
func BindResult[Resp any](req models.Request[Resp], f Frame) (*Resp, error) {
	if f.Error != nil {
		return nil, f.Error
	}
	if f.Result == nil {
		return nil, fmt.Errorf("%s: %w", req.Method(), ErrNoResult)
	}
	resp := req.NewResponse()
	if err := json.Unmarshal(f.Result, resp); err != nil {
		return nil, &DecodeError{Method: req.Method(), Raw: string(f.Result), Err: err}
	}
	return resp, nil
}
