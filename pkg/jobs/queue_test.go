package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRequiresStart(t *testing.T) {
	q := NewQueue[string]("test", func(context.Context, Job[string]) error { return nil }, QueueConfig{})

	_, err := q.Enqueue(Job[string]{Key: "a"})
	assert.Error(t, err)
}

func TestQueueCoalescesWaitingKeys(t *testing.T) {
	release := make(chan struct{})
	started := make(chan string, 4)
	q := NewQueue[string]("test", func(_ context.Context, job Job[string]) error {
		started <- job.Payload
		<-release
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 4})
	q.Start(context.Background())
	defer q.Stop()

	queued, err := q.Enqueue(Job[string]{Key: "k", Payload: "first"})
	require.NoError(t, err)
	require.True(t, queued)
	assert.Equal(t, "first", <-started)

	// the first job is running, so its key may be queued again once
	queued, err = q.Enqueue(Job[string]{Key: "k", Payload: "second"})
	require.NoError(t, err)
	assert.True(t, queued)
	queued, err = q.Enqueue(Job[string]{Key: "k", Payload: "third"})
	require.NoError(t, err)
	assert.False(t, queued)
	assert.Equal(t, 1, q.Pending())

	close(release)
	assert.Equal(t, "second", <-started)
}

func TestQueueRetriesFailedJobs(t *testing.T) {
	var attempts atomic.Int32
	done := make(chan struct{})
	q := NewQueue[int]("test", func(_ context.Context, job Job[int]) error {
		if attempts.Add(1) < 3 {
			return errors.New("transient")
		}
		close(done)
		return nil
	}, QueueConfig{Workers: 1, MaxRetries: 3, RetryDelay: time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	_, err := q.Enqueue(Job[int]{Key: "retry", Payload: 1})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not retried")
	}
	assert.Equal(t, int32(3), attempts.Load())
}

func TestQueueStopRejectsNewJobs(t *testing.T) {
	q := NewQueue[string]("test", func(context.Context, Job[string]) error { return nil }, QueueConfig{})
	q.Start(context.Background())
	q.Stop()

	_, err := q.Enqueue(Job[string]{Key: "late"})
	assert.Error(t, err)
}
