package assets

import (
	"fmt"

	"github.com/anvil-engine/anvil/engine/systems"
)

// AssetFuture is a shared handle to the result of one pipeline dispatch.
// Copies share the same underlying state: the computation runs once and
// every copy observes the same resolution. A future resolves exactly once
// and is never cancelled; dropping every copy does not stop pool work.
type AssetFuture[A any] struct {
	state *futureState[A]
}

type futureState[A any] struct {
	done  chan struct{}
	asset A
	err   error
}

// Spawn submits work to the pool and bridges its single result into a
// pollable future. A panic inside work resolves the future with
// ErrWorkerDied, keeping a dead worker distinguishable from a pipeline
// that failed with a regular load error.
func Spawn[A any](pool *systems.JobSystem, work func() (A, error)) AssetFuture[A] {
	st := &futureState[A]{done: make(chan struct{})}

	pool.Submit(systems.JobTask{
		Priority: systems.JOB_PRIORITY_NORMAL,
		EntryPoint: func() {
			defer func() {
				if r := recover(); r != nil {
					st.err = fmt.Errorf("%w: %v", ErrWorkerDied, r)
				}
				close(st.done)
			}()
			st.asset, st.err = work()
		},
	})

	return AssetFuture[A]{state: st}
}

// Poll reports the future's resolution without blocking. It returns
// ready=false while the pipeline is still running; once ready, the asset
// or the error is final and every later Poll repeats it.
func (f AssetFuture[A]) Poll() (asset A, ready bool, err error) {
	select {
	case <-f.state.done:
		return f.state.asset, true, f.state.err
	default:
		var zero A
		return zero, false, nil
	}
}
