package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/akarpov87/passvault/internal/errs"
)

func TestRequire_PassesIdentity(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Hour)
	id := uuid.Must(uuid.NewV4())
	tok, _, err := m.Issue(id)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var gotID uuid.UUID
	var ctxID uuid.UUID
	h := m.Require(func(ctx context.Context, accountID uuid.UUID) error {
		gotID = accountID
		ctxID, _ = AccountIDFromCtx(ctx)
		return nil
	})

	if err := h(context.Background(), tok); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if gotID != id {
		t.Fatalf("handler got id=%s, want=%s", gotID, id)
	}
	if ctxID != id {
		t.Fatalf("context id=%s, want=%s", ctxID, id)
	}
}

func TestRequire_AcceptsBearerScheme(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Hour)
	tok, _, err := m.Issue(uuid.Must(uuid.NewV4()))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	called := false
	h := m.Require(func(context.Context, uuid.UUID) error {
		called = true
		return nil
	})
	if err := h(context.Background(), "Bearer "+tok); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Fatalf("handler not called")
	}
}

func TestRequire_UniformUnauthenticated(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Hour)
	other := newManagerWithKey(t, []byte("another-signing-key-32-bytes!!!!"))
	forged, _, err := other.Issue(uuid.Must(uuid.NewV4()))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	h := m.Require(func(context.Context, uuid.UUID) error {
		t.Fatalf("handler must not run")
		return nil
	})

	// Forged, malformed and missing tokens all collapse to the same error.
	for _, bearer := range []string{forged, "garbage", "", "Bearer "} {
		if err := h(context.Background(), bearer); !errors.Is(err, errs.ErrUnauthenticated) {
			t.Fatalf("bearer %q: want ErrUnauthenticated, got %v", bearer, err)
		}
	}
}

func TestRequire_PropagatesHandlerError(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Hour)
	tok, _, err := m.Issue(uuid.Must(uuid.NewV4()))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	want := errors.New("boom")
	h := m.Require(func(context.Context, uuid.UUID) error { return want })
	if err := h(context.Background(), tok); !errors.Is(err, want) {
		t.Fatalf("want handler error, got %v", err)
	}
}
