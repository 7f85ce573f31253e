// internal/testutil/helpers_test.go
package testutil

import "testing"

type dummy struct{}

// These calls fail the test themselves if the helpers mishandle typed
// nils carried inside an interface value.
func TestAssertNil_TypedNil(t *testing.T) {
	AssertNil(t, nil, "untyped nil")
	AssertNil(t, (*dummy)(nil), "typed nil pointer")
	AssertNil(t, (map[string]int)(nil), "nil map")
	AssertNil(t, ([]string)(nil), "nil slice")
	AssertNil(t, (func())(nil), "nil func")
}

func TestAssertNotNil(t *testing.T) {
	AssertNotNil(t, &dummy{}, "pointer")
	AssertNotNil(t, map[string]int{}, "empty map")
	AssertNotNil(t, 0, "non-nilable kind")
	AssertNotNil(t, "", "non-nilable kind")
}

func TestIsNil(t *testing.T) {
	if !isNil((*dummy)(nil)) {
		t.Error("typed nil pointer not detected")
	}
	if isNil(&dummy{}) {
		t.Error("live pointer reported nil")
	}
	if isNil(42) {
		t.Error("int reported nil")
	}
}
