package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClient_Delete(t *testing.T) {
	var gotMethod, gotPath, gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotHeader = r.Header.Get("X-Request-Source")
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	defer server.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("X-Request-Source", "simple-debts")

	status, respHeaders, err := client.Delete(context.Background(), server.URL+"/images/avatar.png", headers)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "3", respHeaders.Get("Retry-After"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/images/avatar.png", gotPath)
	assert.Equal(t, "simple-debts", gotHeader)
}

func TestHTTPClient_DeleteUnreachable(t *testing.T) {
	client := NewHTTPClient()

	_, _, err := client.Delete(context.Background(), "http://127.0.0.1:0/avatar.png", nil)

	assert.Error(t, err)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().
		Delete(gomock.Any(), "http://assets/avatar.png", gomock.Nil()).
		Return(0, nil, errors.New("boom"))

	client := NewHTTPClient()
	client.SetClient(mock)

	_, _, err := client.Delete(context.Background(), "http://assets/avatar.png", nil)
	assert.EqualError(t, err, "boom")
}
