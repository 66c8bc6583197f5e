package pointers

import "testing"

func TestDeref(t *testing.T) {
	if got := Deref[int](nil); got != 0 {
		t.Fatalf("nil int: got %d", got)
	}
	if got := Deref[string](nil); got != "" {
		t.Fatalf("nil string: got %q", got)
	}
	if got := Deref(Ptr("Activo")); got != "Activo" {
		t.Fatalf("round trip: got %q", got)
	}
}
