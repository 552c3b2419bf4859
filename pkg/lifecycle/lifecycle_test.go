package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lianzhou/tizhi/pkg/lifecycle"
)

func TestReadyToggling(t *testing.T) {
	c := lifecycle.New()

	if c.Ready() {
		t.Error("new coordinator must not be ready")
	}

	c.SetReady()
	if !c.Ready() {
		t.Error("SetReady did not take effect")
	}

	if err := c.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if c.Ready() {
		t.Error("coordinator must not report ready after shutdown")
	}
}

func TestShutdownRunsHooks(t *testing.T) {
	c := lifecycle.New()

	var ran atomic.Int32
	for range 3 {
		c.OnShutdown(func() {
			<-c.Context().Done()
			ran.Add(1)
		})
	}

	if err := c.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if got := ran.Load(); got != 3 {
		t.Errorf("hooks run: got %d, want 3", got)
	}
}

func TestShutdownCancelsContext(t *testing.T) {
	c := lifecycle.New()

	select {
	case <-c.Context().Done():
		t.Fatal("context done before shutdown")
	default:
	}

	if err := c.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case <-c.Context().Done():
	default:
		t.Error("context not cancelled after shutdown")
	}
}

func TestShutdownTimeout(t *testing.T) {
	c := lifecycle.New()

	release := make(chan struct{})
	c.OnShutdown(func() {
		<-release
	})

	err := c.Shutdown(20 * time.Millisecond)
	if err == nil {
		t.Error("expected timeout error for stuck hook")
	}
	close(release)
}
