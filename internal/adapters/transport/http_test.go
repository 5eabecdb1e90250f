package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`<CC5Response><Response>Approved</Response></CC5Response>`))
	}))
	defer srv.Close()

	tr := New(srv.Client(), nil)

	raw, err := tr.Post(context.Background(), srv.URL, []byte("<CC5Request/>"))
	require.NoError(t, err)

	assert.Equal(t, "application/xml", gotContentType)
	assert.Equal(t, []byte("<CC5Request/>"), gotBody)
	assert.Contains(t, string(raw), "Approved")
}

func TestPostNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := New(srv.Client(), nil)

	_, err := tr.Post(context.Background(), srv.URL, []byte("<CC5Request/>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestPostConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	tr := New(nil, nil)

	_, err := tr.Post(context.Background(), url, []byte("<CC5Request/>"))
	assert.Error(t, err)
}

func TestPostContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	tr := New(srv.Client(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := tr.Post(ctx, srv.URL, []byte("<CC5Request/>"))
	assert.Error(t, err)
}
