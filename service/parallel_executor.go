package service

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// TaskError records the failure of a single named task
type TaskError struct {
	TaskName string
	Err      error
}

func (te TaskError) Error() string {
	return fmt.Sprintf("task %s failed: %v", te.TaskName, te.Err)
}

func (te TaskError) Unwrap() error {
	return te.Err
}

// AggregatedError collects failures from multiple tasks
type AggregatedError struct {
	Errors []TaskError
}

func (ae *AggregatedError) Error() string {
	if len(ae.Errors) == 0 {
		return "no errors"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d task(s) failed:", len(ae.Errors)))
	for _, te := range ae.Errors {
		sb.WriteString("\n  ")
		sb.WriteString(te.Error())
	}
	return sb.String()
}

// HasErrors returns true if any task failed
func (ae *AggregatedError) HasErrors() bool {
	return len(ae.Errors) > 0
}

// TaskResult pairs a task name with its output
type TaskResult struct {
	TaskName string
	Value    interface{}
}

// ParallelExecutorImpl runs enabled tasks concurrently with bounded parallelism
type ParallelExecutorImpl struct {
	maxConcurrency int
	timeout        time.Duration
	progress       domain.ProgressManager
}

// NewParallelExecutor creates an executor sized to the machine
func NewParallelExecutor() *ParallelExecutorImpl {
	return NewParallelExecutorWithOptions(runtime.NumCPU(), 5*time.Minute)
}

// NewParallelExecutorWithOptions creates an executor with explicit limits
func NewParallelExecutorWithOptions(maxConcurrency int, timeout time.Duration) *ParallelExecutorImpl {
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.NumCPU()
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &ParallelExecutorImpl{
		maxConcurrency: maxConcurrency,
		timeout:        timeout,
		progress:       &NoOpProgressManager{},
	}
}

// NewParallelExecutorWithProgress creates an executor that reports progress
func NewParallelExecutorWithProgress(maxConcurrency int, timeout time.Duration, progress domain.ProgressManager) *ParallelExecutorImpl {
	executor := NewParallelExecutorWithOptions(maxConcurrency, timeout)
	if progress != nil {
		executor.progress = progress
	}
	return executor
}

// Execute runs all enabled tasks and returns their results. Individual task
// failures do not cancel the remaining tasks; they are reported together in
// an AggregatedError.
func (pe *ParallelExecutorImpl) Execute(ctx context.Context, tasks []domain.ExecutableTask) ([]TaskResult, error) {
	enabled := make([]domain.ExecutableTask, 0, len(tasks))
	for _, task := range tasks {
		if task.IsEnabled() {
			enabled = append(enabled, task)
		}
	}
	if len(enabled) == 0 {
		return nil, nil
	}

	execCtx, cancel := context.WithTimeout(ctx, pe.timeout)
	defer cancel()

	taskProgress := pe.progress.StartTask("Running analysis tasks", len(enabled))
	defer taskProgress.Complete()

	var mu sync.Mutex
	results := make([]TaskResult, 0, len(enabled))
	var taskErrors []TaskError

	g, gCtx := errgroup.WithContext(execCtx)
	g.SetLimit(pe.maxConcurrency)

	for _, task := range enabled {
		task := task
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			value, err := task.Execute(gCtx)

			mu.Lock()
			if err != nil {
				taskErrors = append(taskErrors, TaskError{TaskName: task.Name(), Err: err})
			} else {
				results = append(results, TaskResult{TaskName: task.Name(), Value: value})
			}
			mu.Unlock()

			taskProgress.Increment(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if len(taskErrors) > 0 {
		return results, &AggregatedError{Errors: taskErrors}
	}
	return results, nil
}
