package sdk

import (
	client "github.com/codeedexprojects/fastbag-admin-sub001/sdk/client"
)

// ErrUnauthorized re-exports the client sentinel so callers holding only a
// Service can still branch on auth failures.
var ErrUnauthorized = client.ErrUnauthorized

// APIError is the typed failure produced at the transport boundary.
type APIError = client.APIError
