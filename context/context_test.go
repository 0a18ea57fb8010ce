package context

import (
	"testing"

	"github.com/binmian/levikno/gal"
)

func resetGlobalForTest() {
	globalMu.Lock()
	globalCtx = nil
	globalMu.Unlock()
}

func TestCreateContextDefaultsToNoop(t *testing.T) {
	resetGlobalForTest()
	ctx, err := CreateContext(Config{AppName: "test"})
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	defer TerminateContext(ctx)

	if GetContext() != ctx {
		t.Fatal("GetContext did not return the created Context")
	}
	if ctx.MaxFramesInFlight() != 2 {
		t.Fatalf("expected default maxFramesInFlight 2, got %d", ctx.MaxFramesInFlight())
	}
	if ctx.Uptime() < 0 {
		t.Fatal("expected non-negative uptime")
	}
}

func TestCreateContextTwiceFails(t *testing.T) {
	resetGlobalForTest()
	ctx, err := CreateContext(Config{AppName: "test"})
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	defer TerminateContext(ctx)

	if _, err := CreateContext(Config{AppName: "test2"}); gal.ResultOf(err) != gal.AlreadyCalled {
		t.Fatalf("expected AlreadyCalled, got %v", err)
	}
}

func TestTerminateContextReportsLeaks(t *testing.T) {
	resetGlobalForTest()
	ctx, err := CreateContext(Config{AppName: "test"})
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}

	if _, err := ctx.Backend().CreateShader(gal.ShaderSource{VertexSrc: "v", FragmentSrc: "f"}); err != nil {
		t.Fatalf("CreateShader: %v", err)
	}

	counts := ctx.LiveObjectCounts()
	if counts == nil {
		t.Fatal("expected non-nil live object counts")
	}

	if err := TerminateContext(ctx); err != nil {
		t.Fatalf("TerminateContext: %v", err)
	}
	if gal.ResultOf(TerminateContext(ctx)) != gal.AlreadyCalled {
		t.Fatal("expected second TerminateContext to report AlreadyCalled")
	}
}
