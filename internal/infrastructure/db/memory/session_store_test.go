package memory

import (
	"context"
	"testing"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	want := domain.Session{Token: "tok-1", UserID: "42", Username: "sally", Role: domain.RoleSalesperson}
	if err := store.Save(ctx, "sid-1", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Read(ctx, "sid-1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got == nil {
		t.Fatalf("expected session, got nil")
	}
	if *got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}

	ok, err := store.HasToken(ctx, "sid-1")
	if err != nil || !ok {
		t.Fatalf("expected token present, ok=%v err=%v", ok, err)
	}
}

func TestSessionStore_AbsentByDefault(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess, err := store.Read(ctx, "nope")
	if err != nil || sess != nil {
		t.Fatalf("expected absent, got %+v err=%v", sess, err)
	}
	ok, err := store.HasToken(ctx, "nope")
	if err != nil || ok {
		t.Fatalf("expected no token, ok=%v err=%v", ok, err)
	}
}

func TestSessionStore_SaveReplacesWholeSession(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_ = store.Save(ctx, "sid", domain.Session{Token: "t1", UserID: "1", Username: "old", Role: domain.RoleMechanic})
	_ = store.Save(ctx, "sid", domain.Session{Token: "t2", UserID: "2", Username: "new", Role: domain.RoleCustomer})

	got, _ := store.Read(ctx, "sid")
	if got == nil || got.Token != "t2" || got.Username != "new" || got.Role != domain.RoleCustomer {
		t.Fatalf("expected replacement session, got %+v", got)
	}
}

func TestSessionStore_CorruptInfoReadsAsAbsent(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	store.Put("sid", "tok", "CUSTOMER", "{{{not json")

	sess, err := store.Read(ctx, "sid")
	if err != nil {
		t.Fatalf("corruption must not surface an error, got %v", err)
	}
	if sess != nil {
		t.Fatalf("expected absent session, got %+v", sess)
	}
}

func TestSessionStore_ClearIdempotent(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_ = store.Save(ctx, "sid", domain.Session{Token: "t", UserID: "1", Username: "u", Role: domain.RoleCustomer})

	if err := store.Clear(ctx, "sid"); err != nil {
		t.Fatalf("first clear: %v", err)
	}
	if err := store.Clear(ctx, "sid"); err != nil {
		t.Fatalf("second clear: %v", err)
	}

	sess, err := store.Read(ctx, "sid")
	if err != nil || sess != nil {
		t.Fatalf("expected absent after clear, got %+v err=%v", sess, err)
	}
}
