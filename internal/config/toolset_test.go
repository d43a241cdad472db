package config

import "testing"

func TestNewToolSet_DedupesInOrder(t *testing.T) {
	ts := NewToolSet("foo", "bar", "foo", "", " baz ", "bar")

	want := []string{"foo", "bar", "baz"}
	got := ts.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if ts.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ts.Len())
	}
}

func TestToolSet_Override(t *testing.T) {
	base := NewToolSet(DefaultTools...)

	if got := base.Override(nil).String(); got != base.String() {
		t.Errorf("Override(nil) = %q, want default %q", got, base.String())
	}
	if got := base.Override([]string{"foo", "bar"}).String(); got != "foo bar" {
		t.Errorf("Override(foo bar) = %q", got)
	}
}

func TestToolSet_NamesIsCopy(t *testing.T) {
	ts := NewToolSet("a", "b")
	names := ts.Names()
	names[0] = "changed"
	if ts.Names()[0] != "a" {
		t.Error("Names() must return a copy")
	}
}
