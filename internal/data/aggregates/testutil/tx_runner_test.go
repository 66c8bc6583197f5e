package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/sigc-piloto/sigc-backend/internal/platform/dbctx"
)

func TestInjectedTxRunner_CommitsOnSuccess(t *testing.T) {
	r := &InjectedTxRunner{}
	called := false
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("InTx: %v", err)
	}
	if !called {
		t.Fatalf("expected body execution")
	}
	if r.BeginCalls != 1 || r.CommitCalls != 1 || r.RollbackCalls != 0 {
		t.Fatalf("unexpected counters: begin=%d commit=%d rollback=%d", r.BeginCalls, r.CommitCalls, r.RollbackCalls)
	}
}

func TestInjectedTxRunner_RollsBackOnBodyError(t *testing.T) {
	r := &InjectedTxRunner{}
	want := errors.New("boom")
	err := r.InTx(context.Background(), func(_ dbctx.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected body error, got %v", err)
	}
	if r.CommitCalls != 0 || r.RollbackCalls != 1 {
		t.Fatalf("unexpected counters: commit=%d rollback=%d", r.CommitCalls, r.RollbackCalls)
	}
}

func TestInjectedTxRunner_FailBeginSkipsBody(t *testing.T) {
	want := errors.New("no connection")
	r := &InjectedTxRunner{FailBegin: want}
	called := false
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, want) || called {
		t.Fatalf("expected begin failure without body, err=%v called=%v", err, called)
	}
	if r.RollbackCalls != 0 || r.CommitCalls != 0 {
		t.Fatalf("unexpected counters: commit=%d rollback=%d", r.CommitCalls, r.RollbackCalls)
	}
}

func TestInjectedTxRunner_FailCommitAfterBody(t *testing.T) {
	want := errors.New("commit failed")
	r := &InjectedTxRunner{FailCommit: want}
	called := false
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, want) || !called {
		t.Fatalf("expected commit failure after body, err=%v called=%v", err, called)
	}
	if r.RollbackCalls != 1 || r.CommitCalls != 0 {
		t.Fatalf("unexpected counters: commit=%d rollback=%d", r.CommitCalls, r.RollbackCalls)
	}
}

func TestInjectedTxRunner_DelegatesToInner(t *testing.T) {
	inner := &InjectedTxRunner{}
	r := &InjectedTxRunner{Inner: inner}
	if err := r.InTx(context.Background(), func(_ dbctx.Context) error { return nil }); err != nil {
		t.Fatalf("InTx: %v", err)
	}
	if inner.BeginCalls != 1 || inner.CommitCalls != 1 {
		t.Fatalf("inner runner not used: %+v", inner)
	}
}
