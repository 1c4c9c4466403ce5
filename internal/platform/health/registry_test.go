package health_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/listsync/internal/platform/health"
	"github.com/jsamuelsen11/listsync/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err).Maybe()
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []*mocks.MockHealthChecker
		want     map[string]error
	}{
		{
			name:     "no checkers",
			checkers: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "all healthy",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "bolt", nil), checker(t, "marketing-api", nil)}
			},
			want: map[string]error{"bolt": nil, "marketing-api": nil},
		},
		{
			name: "remote down",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "bolt", nil), checker(t, "marketing-api", refused)}
			},
			want: map[string]error{"bolt": nil, "marketing-api": refused},
		},
		{
			name: "same name replaces",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "postgres", nil), checker(t, "postgres", refused)}
			},
			want: map[string]error{"postgres": refused},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}
			assert.Equal(t, tt.want, r.CheckAll(context.Background()))
		})
	}
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("marketing-api")
	c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	})

	r := health.New()
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["marketing-api"], context.Canceled)
}

func TestCheckAll_TimeoutPerCheck(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("postgres")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(10 * time.Millisecond))
	r.Register(slow)
	r.Register(checker(t, "bolt", nil))

	results := r.CheckAll(context.Background())
	assert.ErrorIs(t, results["postgres"], context.DeadlineExceeded)
	assert.NoError(t, results["bolt"])
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 20 {
		c := checker(t, fmt.Sprintf("store-%d", i), nil)
		wg.Go(func() { r.Register(c) })
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 20)
}
