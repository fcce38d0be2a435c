package utils

import "testing"

func TestIsUnder(t *testing.T) {
	cases := []struct {
		name      string
		path, dir string
		expected  bool
	}{
		{"child", "/run/user/1000/bus", "/run/user/1000", true},
		{"nested", "/run/user/1000/a/b", "/run/user/1000", true},
		{"same", "/run/user/1000", "/run/user/1000", false},
		{"sibling prefix", "/run/user/10000/bus", "/run/user/1000", false},
		{"dotdot escape", "/run/user/1000/../1001/bus", "/run/user/1000", false},
		{"relative", "bus", "/run/user/1000", false},
		{"root", "/tmp", "/", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsUnder(c.path, c.dir); got != c.expected {
				t.Errorf("IsUnder(%q, %q): expected %v but %v got", c.path, c.dir, c.expected, got)
			}
		})
	}
}
