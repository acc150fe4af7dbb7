package assets

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/OleksaDid/simple-debts/internal/config"
	"github.com/OleksaDid/simple-debts/pkg/clients"
	"github.com/OleksaDid/simple-debts/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Cleaner, *clients.MockHTTPClientI) {
	cfg := &config.Config{AssetsAddress: "http://assets.local/", AssetsWorkers: 2}
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)

	cleaner := New(cfg, client)
	cleaner.retryInterval = 0
	return cleaner, client
}

func TestCleaner_Owns(t *testing.T) {
	cleaner, _ := NewMock(t)
	defer cleaner.Close()

	assert.True(t, cleaner.Owns("http://assets.local/images/a.png"))
	assert.False(t, cleaner.Owns("http://assets.local"))
	assert.False(t, cleaner.Owns("https://gravatar.com/avatar/1"))
	assert.False(t, cleaner.Owns(""))
}

func TestCleaner_deleteAsset(t *testing.T) {
	cleaner, client := NewMock(t)
	defer cleaner.Close()
	url := "http://assets.local/images/a.png"

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Deleted",
			prepareMock: func() {
				client.EXPECT().Delete(gomock.Any(), url, gomock.Nil()).Return(http.StatusNoContent, nil, nil)
			},
		},
		{
			name: "Already gone",
			prepareMock: func() {
				client.EXPECT().Delete(gomock.Any(), url, gomock.Nil()).Return(http.StatusNotFound, nil, nil)
			},
		},
		{
			name: "Rate limited then deleted",
			prepareMock: func() {
				gomock.InOrder(
					client.EXPECT().Delete(gomock.Any(), url, gomock.Nil()).
						Return(http.StatusTooManyRequests, http.Header{"Retry-After": []string{"0"}}, nil),
					client.EXPECT().Delete(gomock.Any(), url, gomock.Nil()).Return(http.StatusOK, nil, nil),
				)
			},
		},
		{
			name: "Storage keeps failing",
			prepareMock: func() {
				client.EXPECT().Delete(gomock.Any(), url, gomock.Nil()).
					Return(http.StatusBadGateway, nil, nil).Times(maxRetries)
			},
			expectErr: true,
		},
		{
			name: "Transport error",
			prepareMock: func() {
				client.EXPECT().Delete(gomock.Any(), url, gomock.Nil()).
					Return(0, nil, errors.New("connection refused")).Times(maxRetries)
			},
			expectErr: true,
		},
		{
			name: "Unexpected status",
			prepareMock: func() {
				client.EXPECT().Delete(gomock.Any(), url, gomock.Nil()).Return(http.StatusForbidden, nil, nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := cleaner.deleteAsset(context.Background(), url)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCleaner_DeleteAsset(t *testing.T) {
	cleaner, client := NewMock(t)
	url := "http://assets.local/images/b.png"

	client.EXPECT().Delete(gomock.Any(), url, gomock.Nil()).Return(http.StatusNoContent, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cleaner.DeleteAsset(ctx, url)
	// The request context ending must not abort a scheduled deletion.
	cancel()
	cleaner.DeleteAsset(context.Background(), "https://elsewhere.example/c.png")

	cleaner.Close()
}

func TestCleaner_DeleteAssetAfterClose(t *testing.T) {
	cleaner, _ := NewMock(t)
	cleaner.Close()
	dropped := testutil.ToFloat64(metrics.AssetDeletions.WithLabelValues("dropped"))

	assert.NotPanics(t, func() {
		cleaner.DeleteAsset(context.Background(), "http://assets.local/images/late.png")
	})
	assert.Equal(t, dropped+1, testutil.ToFloat64(metrics.AssetDeletions.WithLabelValues("dropped")))
}
