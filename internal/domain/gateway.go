package domain

import "context"

// Gateway is the remote DPO Pay API. Both calls are pure request/response;
// retry policy belongs to the caller.
type Gateway interface {
	CreateToken(ctx context.Context, trans *Transaction) (*TokenResult, error)
	Verify(ctx context.Context, companyToken, transToken string) (*VerificationResult, error)
}
