package redis

import (
	"testing"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

func TestDecodeSession_Complete(t *testing.T) {
	vals := map[string]string{
		fieldToken: "tok-123",
		fieldRole:  "SALESPERSON",
		fieldInfo:  `{"userId":"7","username":"sally","role":"SALESPERSON"}`,
	}

	sess := decodeSession(vals)
	if sess == nil {
		t.Fatalf("expected session, got nil")
	}
	if sess.Token != "tok-123" || sess.UserID != "7" || sess.Username != "sally" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.Role != domain.RoleSalesperson {
		t.Fatalf("expected SALESPERSON, got %q", sess.Role)
	}
}

func TestDecodeSession_MissingToken(t *testing.T) {
	vals := map[string]string{
		fieldRole: "MECHANIC",
		fieldInfo: `{"userId":"2","username":"mike","role":"MECHANIC"}`,
	}
	if sess := decodeSession(vals); sess != nil {
		t.Fatalf("expected absent session, got %+v", sess)
	}
}

func TestDecodeSession_MalformedInfo(t *testing.T) {
	cases := map[string]string{
		"not json":        "not-json",
		"empty":           "",
		"truncated":       `{"userId":"2",`,
		"missing fields":  `{"role":"CUSTOMER"}`,
		"wrong structure": `["userId","2"]`,
	}
	for name, blob := range cases {
		vals := map[string]string{fieldToken: "tok", fieldInfo: blob}
		if sess := decodeSession(vals); sess != nil {
			t.Fatalf("%s: expected absent session, got %+v", name, sess)
		}
	}
}

func TestDecodeSession_UnrecognizedRole(t *testing.T) {
	vals := map[string]string{
		fieldToken: "tok",
		fieldRole:  "SUPERADMIN",
		fieldInfo:  `{"userId":"9","username":"root","role":"SUPERADMIN"}`,
	}

	sess := decodeSession(vals)
	if sess == nil {
		t.Fatalf("token present: session must still resolve")
	}
	if sess.Role != domain.RoleUnknown {
		t.Fatalf("expected RoleUnknown, got %q", sess.Role)
	}
}
