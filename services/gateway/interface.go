package gateway

import (
	"context"
	"errors"
)

// Transaction status values as reported by the provider.
const (
	StatusSuccess = "success"
	StatusPending = "pending"
	StatusFailed  = "failed"
)

var (
	// ErrUnavailable indicates a transport-level failure reaching the provider.
	ErrUnavailable = errors.New("payment gateway unavailable")
	// ErrRejected indicates the provider answered with a non-2xx business response.
	ErrRejected = errors.New("payment gateway rejected the request")
	// ErrReferenceUnknown indicates the provider has no record of the reference.
	ErrReferenceUnknown = errors.New("reference unknown to payment gateway")
)

// InitializeRequest asks the provider to start a hosted payment.
type InitializeRequest struct {
	Amount      int64  // minor units (kobo)
	Email       string
	Reference   string // locally generated, passed through to the provider
	CallbackURL string
	Metadata    map[string]interface{}
}

// InitializeResult carries the hosted checkout handle back to the caller.
type InitializeResult struct {
	AuthorizationURL  string
	AccessCode        string
	ProviderReference string
}

// VerifyResult is the provider's current view of a transaction.
type VerifyResult struct {
	Status string // success | pending | failed
	Amount int64
	Raw    map[string]interface{}
}

// Client wraps outbound calls to the payment provider.
type Client interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
