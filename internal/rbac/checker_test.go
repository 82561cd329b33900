package rbac_test

import (
	"context"
	"testing"

	"github.com/team-pulse/teampulse-hr/internal/rbac"
)

func TestDefaultPolicy(t *testing.T) {
	c := rbac.NewChecker(nil)
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"employee", "response:create", true},
		{"employee", "response:view-all", false},
		{"employee", "assessment:create", false},
		{"manager", "response:view-all", true},
		{"manager", "feedback:archive", true}, // via feedback:*
		{"manager", "department:create", false},
		{"hr", "assessment:create", true},
		{"hr", "users:upsert", true},
		{"admin", "anything:at-all", true},
		{"", "response:create", false},
		{"intern", "response:create", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestAny(t *testing.T) {
	c := rbac.NewChecker(nil)
	if !c.Any("employee", "response:view-all", "feedback:create") {
		t.Error("employee should pass via feedback:create")
	}
	if c.Any("employee", "response:view-all", "department:create") {
		t.Error("employee holds neither permission")
	}
}

func TestWildcardMatching(t *testing.T) {
	c := rbac.NewChecker(map[string][]string{
		"reader": {"feedback:view", "response:*"},
	})
	if !c.Has("reader", "response:submit") {
		t.Error("prefix wildcard should match")
	}
	if c.Has("reader", "feedback:viewer") {
		t.Error("exact permission must not prefix-match")
	}
	if c.Has("reader", "assessment:view") {
		t.Error("unrelated permission matched")
	}
}

func TestContextRoundtrip(t *testing.T) {
	ctx := rbac.WithSubject(context.Background(), "alice")
	ctx = rbac.WithRole(ctx, "manager")
	if got := rbac.SubjectFromContext(ctx); got != "alice" {
		t.Errorf("subject = %q", got)
	}
	if got := rbac.RoleFromContext(ctx); got != "manager" {
		t.Errorf("role = %q", got)
	}
	if got := rbac.RoleFromContext(context.Background()); got != "" {
		t.Errorf("empty context role = %q", got)
	}
}
