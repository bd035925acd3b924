package signal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// CleanupFunc represents a cleanup function that can return an error.
type CleanupFunc func() error

// Handler turns SIGINT/SIGTERM into context cancellation so the scheduler
// can observe interruption at step boundaries and during delays without any
// process-wide trap.
type Handler struct {
	ctx        context.Context
	cancel     context.CancelFunc
	sigChan    chan os.Signal
	out        io.Writer
	mu         sync.Mutex
	cleanupFns []CleanupFunc
	once       sync.Once
}

// NewHandler creates a handler whose context is cancelled when a signal
// arrives or the parent context is cancelled.
func NewHandler(ctx context.Context, out io.Writer) *Handler {
	if out == nil {
		out = os.Stderr
	}

	ctx, cancel := context.WithCancel(ctx)
	return &Handler{
		ctx:     ctx,
		cancel:  cancel,
		sigChan: make(chan os.Signal, 1),
		out:     out,
	}
}

// Start begins monitoring for shutdown signals.
func (h *Handler) Start() {
	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.loop()
}

func (h *Handler) loop() {
	select {
	case sig := <-h.sigChan:
		fmt.Fprintf(h.out, "\nReceived signal %v, shutting down gracefully...\n", sig)
		h.initiateShutdown()
	case <-h.ctx.Done():
		h.initiateShutdown()
	}
}

func (h *Handler) initiateShutdown() {
	h.once.Do(func() {
		h.cancel()
		h.runCleanup()
	})
}

// runCleanup executes registered cleanup functions in reverse order (LIFO).
func (h *Handler) runCleanup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.cleanupFns) - 1; i >= 0; i-- {
		if err := h.cleanupFns[i](); err != nil {
			fmt.Fprintf(h.out, "Warning: cleanup error: %v\n", err)
		}
	}
}

// RegisterCleanup adds a cleanup function to be called during shutdown.
func (h *Handler) RegisterCleanup(fn CleanupFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cleanupFns = append(h.cleanupFns, fn)
}

// Context returns the context that will be cancelled on shutdown.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Stop triggers shutdown programmatically: after a run finishes on its own,
// and from tests, so cancellation is exercised without real OS signals.
func (h *Handler) Stop() {
	signal.Stop(h.sigChan)
	h.initiateShutdown()
}
