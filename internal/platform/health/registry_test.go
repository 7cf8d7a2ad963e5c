package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dkarlsen/notes-service/internal/platform/health"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                        { return s.name }
func (s stubChecker) HealthCheck(_ context.Context) error { return s.err }

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(stubChecker{name: "database"})
	r.Register(stubChecker{name: "webhook", err: errors.New("circuit open")})

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results["database"] != nil {
		t.Errorf("database = %v, want nil", results["database"])
	}
	if results["webhook"] == nil {
		t.Error("webhook = nil, want error")
	}
}

func TestRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	if results := r.CheckAll(context.Background()); len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Register(stubChecker{name: "database"})
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}
