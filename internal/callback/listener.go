package callback

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Listener receives the payment processor's return redirect on localhost.
// The processor sends the shopper's browser to
// /payment-success?session_id=... once payment has been attempted; the
// session id seeds the confirmation poller.
type Listener struct {
	addr   string
	logger *zap.Logger

	once      sync.Once
	sessionCh chan string
}

func NewListener(addr string, logger *zap.Logger) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{
		addr:      addr,
		logger:    logger,
		sessionCh: make(chan string, 1),
	}
}

// OriginURL is the base URL the backend embeds in the processor's return
// redirect.
func (l *Listener) OriginURL() string {
	return "http://" + l.addr
}

// Wait serves until the first redirect with a session_id arrives, then shuts
// the server down and returns the id. Cancelling ctx stops the server and
// returns the context error.
func (l *Listener) Wait(ctx context.Context) (string, error) {
	router := chi.NewRouter()
	router.Get("/payment-success", l.handleReturn)

	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		return "", err
	}

	server := &http.Server{Handler: router}
	serveErr := make(chan error, 1)
	go func() {
		if errServe := server.Serve(ln); !errors.Is(errServe, http.ErrServerClosed) {
			serveErr <- errServe
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	select {
	case sessionID := <-l.sessionCh:
		return sessionID, nil
	case errServe := <-serveErr:
		return "", errServe
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (l *Listener) handleReturn(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		l.logger.Warn("payment return without session_id")
		http.Error(w, "missing session_id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Payment received, verifying. You can return to the terminal.\n"))

	l.once.Do(func() {
		l.sessionCh <- sessionID
	})
}
