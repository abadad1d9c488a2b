package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/librevault/discovery/internal/platform/health"
	"github.com/librevault/discovery/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.On("Name").Return("redis")
	checkerA.On("HealthCheck", mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.On("Name").Return("telemetry")
	checkerB.On("HealthCheck", mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["redis"] != nil {
		t.Errorf("redis check = %v, want nil", results["redis"])
	}
	if results["telemetry"] != nil {
		t.Errorf("telemetry check = %v, want nil", results["telemetry"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.On("Name").Return("telemetry")
	healthy.On("HealthCheck", mock.Anything).Return(nil)

	unhealthyErr := errors.New("connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.On("Name").Return("redis")
	unhealthy.On("HealthCheck", mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["telemetry"] != nil {
		t.Errorf("telemetry check = %v, want nil", results["telemetry"])
	}
	if results["redis"] == nil {
		t.Fatal("redis check = nil, want error")
	}
	if results["redis"].Error() != "connection refused" {
		t.Errorf("redis check = %q, want %q", results["redis"].Error(), "connection refused")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.On("Name").Return("redis")
	checker.On("HealthCheck", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["redis"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["redis"])
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.On("Name").Return("redis")
	first.On("HealthCheck", mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.On("Name").Return("redis")
	second.On("HealthCheck", mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["redis"]
	if !ok {
		t.Fatal(`expected result for key "redis", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("redis check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.On("Name").Return("checker").Maybe()
				c.On("HealthCheck", mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
