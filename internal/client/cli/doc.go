// Package cli implements the interactive ReportKeeper command line: account
// registration and recovery, group management and report transfer.
package cli
