package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

type fakeTask struct {
	name    string
	enabled bool
	fn      func(ctx context.Context) (interface{}, error)
}

func (ft *fakeTask) Name() string    { return ft.name }
func (ft *fakeTask) IsEnabled() bool { return ft.enabled }
func (ft *fakeTask) Execute(ctx context.Context) (interface{}, error) {
	return ft.fn(ctx)
}

func okTask(name string, value interface{}) *fakeTask {
	return &fakeTask{name: name, enabled: true, fn: func(context.Context) (interface{}, error) {
		return value, nil
	}}
}

func failTask(name string, err error) *fakeTask {
	return &fakeTask{name: name, enabled: true, fn: func(context.Context) (interface{}, error) {
		return nil, err
	}}
}

func TestExecuteRunsEnabledTasks(t *testing.T) {
	executor := NewParallelExecutorWithOptions(2, time.Minute)
	tasks := []domain.ExecutableTask{
		okTask("a", 1),
		okTask("b", 2),
		&fakeTask{name: "disabled", enabled: false, fn: func(context.Context) (interface{}, error) {
			t.Error("disabled task was executed")
			return nil, nil
		}},
	}

	results, err := executor.Execute(context.Background(), tasks)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	byName := make(map[string]interface{})
	for _, r := range results {
		byName[r.TaskName] = r.Value
	}
	if byName["a"] != 1 || byName["b"] != 2 {
		t.Errorf("unexpected results: %v", byName)
	}
}

func TestExecuteNoEnabledTasks(t *testing.T) {
	executor := NewParallelExecutor()
	results, err := executor.Execute(context.Background(), []domain.ExecutableTask{
		&fakeTask{name: "off", enabled: false, fn: func(context.Context) (interface{}, error) { return nil, nil }},
	})
	if err != nil || results != nil {
		t.Errorf("expected nil results and nil error, got %v, %v", results, err)
	}
}

func TestExecuteCollectsFailuresWithoutAborting(t *testing.T) {
	executor := NewParallelExecutorWithOptions(1, time.Minute)
	boom := errors.New("boom")
	tasks := []domain.ExecutableTask{
		failTask("first", boom),
		okTask("second", "ok"),
	}

	results, err := executor.Execute(context.Background(), tasks)
	if err == nil {
		t.Fatal("expected aggregated error")
	}

	var aggregated *AggregatedError
	if !errors.As(err, &aggregated) {
		t.Fatalf("expected *AggregatedError, got %T: %v", err, err)
	}
	if len(aggregated.Errors) != 1 || aggregated.Errors[0].TaskName != "first" {
		t.Errorf("unexpected task errors: %+v", aggregated.Errors)
	}
	if !errors.Is(aggregated.Errors[0], boom) {
		t.Error("task error does not unwrap to the original cause")
	}
	if len(results) != 1 || results[0].TaskName != "second" {
		t.Errorf("successful task result missing: %+v", results)
	}
}

func TestExecuteRespectsConcurrencyLimit(t *testing.T) {
	const limit = 2
	executor := NewParallelExecutorWithOptions(limit, time.Minute)

	var running, peak int32
	var tasks []domain.ExecutableTask
	for i := 0; i < 8; i++ {
		tasks = append(tasks, &fakeTask{
			name:    fmt.Sprintf("task-%d", i),
			enabled: true,
			fn: func(context.Context) (interface{}, error) {
				now := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if now <= old || atomic.CompareAndSwapInt32(&peak, old, now) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil, nil
			},
		})
	}

	if _, err := executor.Execute(context.Background(), tasks); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if p := atomic.LoadInt32(&peak); p > limit {
		t.Errorf("peak concurrency %d exceeded limit %d", p, limit)
	}
}

func TestExecuteHonorsCancellation(t *testing.T) {
	executor := NewParallelExecutorWithOptions(1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := executor.Execute(ctx, []domain.ExecutableTask{okTask("late", nil)})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestExecutorDefaultsOnBadOptions(t *testing.T) {
	executor := NewParallelExecutorWithOptions(0, 0)
	if executor.maxConcurrency <= 0 {
		t.Errorf("maxConcurrency = %d, want positive default", executor.maxConcurrency)
	}
	if executor.timeout <= 0 {
		t.Errorf("timeout = %v, want positive default", executor.timeout)
	}
}

func TestAggregatedErrorMessage(t *testing.T) {
	aggregated := &AggregatedError{Errors: []TaskError{
		{TaskName: "scan", Err: errors.New("bad input")},
		{TaskName: "report", Err: errors.New("closed writer")},
	}}
	msg := aggregated.Error()
	if !aggregated.HasErrors() {
		t.Error("HasErrors returned false")
	}
	for _, want := range []string{"2 task(s) failed", "task scan failed: bad input", "task report failed: closed writer"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q: %s", want, msg)
		}
	}
}
