package payment

import "errors"

// Gateway failure taxonomy. None of these are retried automatically.
var (
	// ErrGatewayUnreachable covers network failures contacting the processor.
	ErrGatewayUnreachable = errors.New("payment processor unreachable")
	// ErrTokenRejected means the processor refused the payment token
	// (invalid, expired or already consumed).
	ErrTokenRejected = errors.New("payment token rejected")
	// ErrDeclined means the processor processed the request and declined
	// the charge.
	ErrDeclined = errors.New("payment declined")
)
