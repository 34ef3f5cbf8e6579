package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fourline/orderfront/internal/config"
	"github.com/fourline/orderfront/internal/session"
	testhelpers "github.com/fourline/orderfront/internal/test"
	"github.com/fourline/orderfront/internal/view"
	"github.com/fourline/orderfront/internal/worker"
)

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewJanitorSweepsMemoryStore(t *testing.T) {
	cfg := &config.Config{SweepInterval: time.Minute}
	janitor := newJanitor(janitorParams{
		Registry: view.NewRegistry(time.Minute),
		Sessions: session.NewMemoryStore(time.Minute),
		Config:   cfg,
		Logger:   testLogger(),
	})
	if janitor == nil {
		t.Fatal("expected janitor instance")
	}
	if got := len(janitor.Sweepers()); got != 2 {
		t.Fatalf("expected registry and memory store sweepers, got %d", got)
	}
}

type noSweepStore struct {
	session.Store
}

func TestNewJanitorSkipsExternalSessionStore(t *testing.T) {
	cfg := &config.Config{SweepInterval: time.Minute}
	janitor := newJanitor(janitorParams{
		Registry: view.NewRegistry(time.Minute),
		Sessions: noSweepStore{},
		Config:   cfg,
		Logger:   testLogger(),
	})
	if got := len(janitor.Sweepers()); got != 1 {
		t.Fatalf("expected only the registry sweeper, got %d", got)
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	janitor := worker.NewJanitor(nil, 10*time.Millisecond, testLogger())
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     testLogger(),
		Server:     server,
		Janitor:    janitor,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one lifecycle hook, got %d", len(recorder.Hooks))
	}
	hook := recorder.Hooks[0]

	ctx := context.Background()
	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := hook.OnStop(ctx); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
}
