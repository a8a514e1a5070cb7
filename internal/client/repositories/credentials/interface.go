// Package credentials persists the bearer token of the current session in a
// local sqlite database, with a client-side TTL recorded at save time.
package credentials

import "context"

// Store is the credential store contract.
//
//   - Save persists the token and stamps it with now+TTL.
//   - Load returns the token while it is present and unexpired; absence,
//     expiry, and unreadable stored state all yield "" with a nil error.
//   - Clear removes the token and is safe to call when none is stored.
type Store interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
