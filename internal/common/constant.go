// Package common contains shared constants and sentinel errors used across
// ReportKeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RecoveryIDBytes is the number of random bytes behind a recovery identifier.
// Hex encoding doubles it, giving the 8-character token shown to the user.
const RecoveryIDBytes = 4
