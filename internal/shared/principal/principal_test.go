package principal

import "testing"

func TestOwns(t *testing.T) {
	cases := []struct {
		name           string
		p              Principal
		ownerUser      string
		ownerSession   string
		want           bool
	}{
		{"user owns own record", User("u1", RoleUser), "u1", "", true},
		{"user does not own other user", User("u1", RoleUser), "u2", "", false},
		{"session owns own record", Session("s1"), "", "s1", true},
		{"session mismatch", Session("s2"), "", "s1", false},
		{"user does not own session record", User("u1", RoleUser), "", "s1", false},
		{"empty stored ids never match", Principal{}, "", "", false},
		{"user matches even when session stored too", User("u1", RoleUser), "u1", "s1", true},
	}
	for _, tc := range cases {
		if got := tc.p.Owns(tc.ownerUser, tc.ownerSession); got != tc.want {
			t.Errorf("%s: Owns(%q, %q) = %v, want %v", tc.name, tc.ownerUser, tc.ownerSession, got, tc.want)
		}
	}
}

func TestAdmin(t *testing.T) {
	if !User("u1", RoleAdmin).Admin() {
		t.Fatalf("expected admin")
	}
	if User("u1", RoleUser).Admin() {
		t.Fatalf("plain user must not be admin")
	}
	if Session("s1").Admin() {
		t.Fatalf("session must not be admin")
	}
}
