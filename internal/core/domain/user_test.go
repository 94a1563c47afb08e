package domain

import "testing"

func TestRoleSet_Intersects(t *testing.T) {
	cases := []struct {
		name  string
		have  RoleSet
		want  RoleSet
		match bool
	}{
		{"single overlap", RoleSet{RoleCreator}, RoleSet{RoleCreator, RoleAdmin}, true},
		{"admin overlap", RoleSet{RoleCommentator, RoleAdmin}, RoleSet{RoleAdmin}, true},
		{"no overlap", RoleSet{RoleCreator}, RoleSet{RoleAdmin}, false},
		{"empty user roles", RoleSet{}, RoleSet{RoleAdmin}, false},
		{"empty required", RoleSet{RoleAdmin}, RoleSet{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.have.Intersects(tc.want); got != tc.match {
				t.Fatalf("Intersects(%v, %v) = %v, want %v", tc.have, tc.want, got, tc.match)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleCreator, RoleCommentator} {
		if !r.Valid() {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	if Role("guest").Valid() {
		t.Fatalf("expected guest to be invalid")
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	if !p[OpCreatePost].Has(RoleCreator) || !p[OpCreatePost].Has(RoleAdmin) {
		t.Fatalf("createPost must allow creator and admin: %v", p[OpCreatePost])
	}
	if len(p[OpDeletePost]) != 1 || !p[OpDeletePost].Has(RoleAdmin) {
		t.Fatalf("deletePost must allow only admin: %v", p[OpDeletePost])
	}
	if !p[OpCreateComment].Has(RoleCommentator) || !p[OpCreateComment].Has(RoleAdmin) {
		t.Fatalf("createComment must allow commentator and admin: %v", p[OpCreateComment])
	}
}
