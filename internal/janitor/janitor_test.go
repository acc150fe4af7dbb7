package janitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/OleksaDid/simple-debts/internal/config"
	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/OleksaDid/simple-debts/pkg/metrics"
)

func NewMock(t *testing.T) (*Janitor, *MockUsers) {
	ctrl := gomock.NewController(t)
	users := NewMockUsers(ctrl)
	janitor := New(&config.Config{SweepInterval: 10 * time.Millisecond}, users)
	return janitor, users
}

func TestNewDefaultsInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	j := New(&config.Config{}, NewMockUsers(ctrl))
	assert.Equal(t, time.Hour, j.interval)
}

func TestSweep(t *testing.T) {
	janitor, users := NewMock(t)

	orphans := []domain.User{
		{ID: "v-1", Name: "Bob BOT", IsVirtual: true},
		{ID: "v-2", Name: "Carol", IsVirtual: true},
		{ID: "v-3", Name: "Dave", IsVirtual: true},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCount int
		expectError   bool
	}{
		{
			name: "All removed",
			prepareMock: func() {
				users.EXPECT().FindOrphans(gomock.Any(), batchSize).Return(orphans, nil)
				for _, u := range orphans {
					users.EXPECT().RemoveOrphan(gomock.Any(), u).Return(nil)
				}
			},
			expectedCount: 3,
		},
		{
			name: "One removal fails",
			prepareMock: func() {
				users.EXPECT().FindOrphans(gomock.Any(), batchSize).Return(orphans, nil)
				users.EXPECT().RemoveOrphan(gomock.Any(), orphans[0]).Return(nil)
				users.EXPECT().RemoveOrphan(gomock.Any(), orphans[1]).Return(errors.New("db down"))
				users.EXPECT().RemoveOrphan(gomock.Any(), orphans[2]).Return(nil)
			},
			expectedCount: 2,
		},
		{
			name: "Nothing to remove",
			prepareMock: func() {
				users.EXPECT().FindOrphans(gomock.Any(), batchSize).Return(nil, nil)
			},
		},
		{
			name: "Lookup fails",
			prepareMock: func() {
				users.EXPECT().FindOrphans(gomock.Any(), batchSize).Return(nil, errors.New("db down"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			before := testutil.ToFloat64(metrics.OrphanUsersRemoved)

			count, err := janitor.Sweep(context.Background())

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCount, count)
			assert.Equal(t, before+float64(tt.expectedCount), testutil.ToFloat64(metrics.OrphanUsersRemoved))
		})
	}
}

func TestStartSweepsUntilCanceled(t *testing.T) {
	janitor, users := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan struct{})
	users.EXPECT().FindOrphans(gomock.Any(), batchSize).DoAndReturn(func(context.Context, int) ([]domain.User, error) {
		select {
		case swept <- struct{}{}:
		default:
		}
		return nil, nil
	}).MinTimes(1)

	janitor.Start(ctx)

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep did not run")
	}
	cancel()
	// let the loop observe cancellation before the controller checks calls
	time.Sleep(30 * time.Millisecond)
}
