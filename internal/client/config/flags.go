package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/reportkeeper/internal/flagx"
)

var clientFlags = []string{"-a", "-i", "-o"}

// parseFlags reads:
//
//	-a string  server address (e.g., "localhost:50051")
//	-i int     request timeout, seconds
//	-o string  download directory
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server address")
	timeout := fs.Int("i", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&config.DownloadDir, "o", config.DownloadDir, "download directory")

	if err := fs.Parse(flagx.FilterArgs(args, clientFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			config.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
