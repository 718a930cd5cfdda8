// Package workers runs the server's background jobs, such as purging
// expired captcha challenges.
package workers

import "context"

// Worker is a background job. Run must return immediately; the job keeps
// going in its own goroutine until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
