// Package common contains shared constants and sentinel errors used across
// campusctl components.
package common

// AccessTokenKey is the local storage key the bearer token is persisted under.
const AccessTokenKey = "access_token"

// AccessTokenExpiryKey is the local storage key holding the token expiry
// timestamp in RFC3339 form.
const AccessTokenExpiryKey = "access_token_expires_at"
