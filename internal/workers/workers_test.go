package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type workerFunc func(ctx context.Context)

func (f workerFunc) Run(ctx context.Context) { f(ctx) }

func TestWorkers_Run(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "server")

	var started []int
	record := func(id int) Worker {
		return workerFunc(func(got context.Context) {
			assert.Equal(t, "server", got.Value(ctxKey{}))
			started = append(started, id)
		})
	}

	NewWorkers(record(1), record(2), record(3)).Run(ctx)

	assert.Equal(t, []int{1, 2, 3}, started)
}

func TestWorkers_RunWithoutWorkers(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWorkers().Run(context.Background())
		(&Workers{}).Run(context.Background())
	})
}
