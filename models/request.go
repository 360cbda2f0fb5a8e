package models

// Request binds a request payload to its wire method name and to the payload
// type the exchange answers with. Method must return a constant and must be
// declared on the value receiver so the zero value of the request type can
// answer it.
type Request[Resp any] interface {
	Method() string
	NewResponse() *Resp
}

// VoidRequest marks requests whose parameter object carries no fields. When
// Empty reports true the call is sent with an empty params object.
type VoidRequest interface {
	Empty() bool
}

// MethodOf returns the wire method bound to Req without needing an instance.
func MethodOf[Req interface{ Method() string }]() string {
	var req Req
	return req.Method()
}

// IsVoid reports whether req is a void request with nothing to send.
func IsVoid(req any) bool {
	v, ok := req.(VoidRequest)
	return ok && v.Empty()
}
