package systems

import (
	"fmt"
	"sync"

	"github.com/anvil-engine/anvil/engine/core"
)

/**
 * @brief Determines how urgent a job is. Priorities are advisory labels
 * carried by the task; every worker drains the same queue.
 */
type JobPriority int

const (
	/** @brief The lowest-priority job, used for things that can wait to be done if need be. */
	JOB_PRIORITY_LOW JobPriority = iota
	/** @brief A normal-priority job. Should be used for medium-priority tasks such as loading assets. */
	JOB_PRIORITY_NORMAL
	/** @brief The highest-priority job. Should be used sparingly, and only for time-critical operations. */
	JOB_PRIORITY_HIGH
)

/**
 * @brief Describes a job to be run.
 */
type JobTask struct {
	/** @brief The priority of this job. */
	Priority JobPriority
	/** @brief The closure invoked on a worker goroutine. Required. */
	EntryPoint func()
	/** @brief Invoked on the worker after the entry point returns. Optional. */
	OnComplete func()
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	jq := make(chan JobTask, channelSize)
	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   jq,
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.run(job)
			}
		}()
	}
}

// run executes a single task, keeping the worker alive when a task panics.
func (js *JobSystem) run(job JobTask) {
	defer func() {
		if r := recover(); r != nil {
			core.LogError("job panicked: %v", r)
		}
	}()

	job.EntryPoint()

	if job.OnComplete != nil {
		job.OnComplete()
	}
}

/**
 * @brief Shuts the job system down, waiting for in-flight jobs to finish.
 */
func (js *JobSystem) Shutdown() error {
	close(js.jobQueue)
	js.wg.Wait()
	return nil
}

// AddWorkNonBlocking submits work to the JobSystem and returns immediately,
// even when the queue is full.
func (js *JobSystem) AddWorkNonBlocking(jt JobTask) {
	go js.Submit(jt)
}

/**
 * @brief Submits the provided job to be queued for execution.
 * Blocks while the queue is full.
 */
func (js *JobSystem) Submit(jt JobTask) {
	js.jobQueue <- jt
}
