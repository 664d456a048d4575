// Package client is the gRPC client used by the ReportKeeper CLI. It keeps
// the access token returned by Register or Login and attaches it to every
// subsequent call.
package client
