package client

import "context"

// Client is a runnable command line application.
type Client interface {
	// Run executes the command named by args and returns its error.
	Run(ctx context.Context, args []string) error
}
