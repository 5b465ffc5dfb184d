package version

import "testing"

func TestVersionStringNonEmpty(t *testing.T) {
	if s := String(); s == "" {
		t.Fatalf("version string is empty")
	}
}

func TestStringFollowsVersionVar(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v9.9.9-test"
	if s := String(); s != "v9.9.9-test" {
		t.Fatalf("String() = %q, want override", s)
	}
}
