package systems_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvil-engine/anvil/engine/systems"
)

func TestNewJobSystemValidatesArguments(t *testing.T) {
	_, err := systems.NewJobSystem(0, 8)
	assert.ErrorIs(t, err, systems.ErrNoWorkers)

	_, err = systems.NewJobSystem(2, -1)
	assert.ErrorIs(t, err, systems.ErrNegativeChannelSize)
}

func TestSubmittedJobsRun(t *testing.T) {
	js, err := systems.NewJobSystem(4, 16)
	require.NoError(t, err)

	var ran, completed atomic.Int32
	for i := 0; i < 10; i++ {
		js.Submit(systems.JobTask{
			Priority:   systems.JOB_PRIORITY_NORMAL,
			EntryPoint: func() { ran.Add(1) },
			OnComplete: func() { completed.Add(1) },
		})
	}

	require.NoError(t, js.Shutdown())
	assert.Equal(t, int32(10), ran.Load())
	assert.Equal(t, int32(10), completed.Load())
}

func TestPanickingJobDoesNotKillTheWorker(t *testing.T) {
	js, err := systems.NewJobSystem(1, 4)
	require.NoError(t, err)

	var ran atomic.Int32
	js.Submit(systems.JobTask{
		EntryPoint: func() { panic("bad job") },
	})
	js.Submit(systems.JobTask{
		EntryPoint: func() { ran.Add(1) },
	})

	require.NoError(t, js.Shutdown())
	assert.Equal(t, int32(1), ran.Load())
}

func TestAddWorkNonBlockingDoesNotBlockOnAFullQueue(t *testing.T) {
	js, err := systems.NewJobSystem(1, 0)
	require.NoError(t, err)

	block := make(chan struct{})
	js.Submit(systems.JobTask{
		EntryPoint: func() { <-block },
	})

	var ran atomic.Int32
	done := make(chan struct{})
	go func() {
		js.AddWorkNonBlocking(systems.JobTask{
			EntryPoint: func() { ran.Add(1) },
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AddWorkNonBlocking blocked the caller")
	}

	close(block)
	require.Eventually(t, func() bool { return ran.Load() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, js.Shutdown())
}
