// Package credentials persists the access/refresh token pair in the
// client-local database. Absence of a token is a valid value ("" with a nil
// error), not a failure.
package credentials

import "context"

// Repository stores the token pair.
//
// Contract:
//   - Save writes both tokens atomically; a successful save never leaves a
//     partial pair behind.
//   - Access/Refresh return "" when no value is stored.
//   - Clear removes both entries and is idempotent.
//
// No validation of token shape is performed; any string is accepted.
type Repository interface {
	Access(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
	Save(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}
