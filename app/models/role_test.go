package models

import "testing"

func TestCanManage(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		isOwner bool
		want    bool
	}{
		{name: "admin not owner", role: RoleAdmin, isOwner: false, want: true},
		{name: "admin owner", role: RoleAdmin, isOwner: true, want: true},
		{name: "director not owner", role: RoleDirector, isOwner: false, want: true},
		{name: "director owner", role: RoleDirector, isOwner: true, want: true},
		{name: "teacher not owner", role: RoleTeacher, isOwner: false, want: false},
		{name: "teacher owner", role: RoleTeacher, isOwner: true, want: true},
		{name: "student not owner", role: RoleStudent, isOwner: false, want: false},
		{name: "student owner", role: RoleStudent, isOwner: true, want: true},
		{name: "parent not owner", role: RoleParent, isOwner: false, want: false},
		{name: "parent owner", role: RoleParent, isOwner: true, want: true},
		{name: "unknown role not owner", role: Role("janitor"), isOwner: false, want: false},
		{name: "empty role not owner", role: Role(""), isOwner: false, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanManage(tt.role, tt.isOwner); got != tt.want {
				t.Errorf("CanManage(%q, %v) = %v, want %v", tt.role, tt.isOwner, got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles {
		got, ok := ParseRole(string(r))
		if !ok || got != r {
			t.Errorf("ParseRole(%q) = %q, %v", r, got, ok)
		}
	}

	if _, ok := ParseRole("superuser"); ok {
		t.Error("ParseRole accepted an unknown role")
	}
	if _, ok := ParseRole(""); ok {
		t.Error("ParseRole accepted an empty role")
	}
}
