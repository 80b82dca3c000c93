package callback

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()
	return addr
}

func TestWait_ReturnsSessionIDFromRedirect(t *testing.T) {
	addr := freeAddr(t)
	listener := NewListener(addr, nil)

	type result struct {
		sessionID string
		err       error
	}
	done := make(chan result, 1)
	go func() {
		sessionID, err := listener.Wait(context.Background())
		done <- result{sessionID, err}
	}()

	// Hit the listener the way the processor's redirect would.
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/payment-success?session_id=sess_42")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, "sess_42", r.sessionID)
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not hand over the session id")
	}
}

func TestWait_CancelledBeforeRedirect(t *testing.T) {
	listener := NewListener(freeAddr(t), nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := listener.Wait(ctx)
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop after cancellation")
	}
}

func TestHandleReturn_MissingSessionID(t *testing.T) {
	listener := NewListener("127.0.0.1:0", nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/payment-success", nil)

	listener.handleReturn(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	select {
	case <-listener.sessionCh:
		t.Fatal("no session id should be delivered without session_id")
	default:
	}
}

func TestHandleReturn_OnlyFirstRedirectWins(t *testing.T) {
	listener := NewListener("127.0.0.1:0", nil)

	for _, id := range []string{"first", "second"} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/payment-success?session_id="+id, nil)
		listener.handleReturn(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}

	assert.Equal(t, "first", <-listener.sessionCh)
	select {
	case id := <-listener.sessionCh:
		t.Fatalf("unexpected second delivery: %s", id)
	default:
	}
}
