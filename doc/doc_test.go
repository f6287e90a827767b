package doc

import "testing"

func TestResetDropsUnmodifiedMaterializedChildren(t *testing.T) {
	d, err := Parse([]byte(`{"a": {"b": 1}}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Get("a.b"); err != nil {
		t.Fatal(err)
	}
	a, _ := d.Root().Child("a")
	if a == nil || !a.IsMaterialized() {
		t.Fatal("expected a to be materialized before Reset")
	}

	d.Reset()

	a, ok := d.Root().Child("a")
	if ok {
		t.Fatalf("expected Reset to drop the materialized child, got %v", a)
	}

	// The document is still usable: Get re-materializes on demand.
	b, err := d.Get("a.b")
	if err != nil {
		t.Fatal(err)
	}
	if b.AsNumber() != 1 {
		t.Fatalf("got %v", b.AsNumber())
	}
}

func TestResetPreservesModifiedSubtrees(t *testing.T) {
	d, err := Parse([]byte(`{"a": {"b": 1}}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Set("a.b", NewNumber(5)); err != nil {
		t.Fatal(err)
	}

	d.Reset()

	out, err := d.Dump()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"a": {"b": 5}}` {
		t.Fatalf("got %s", out)
	}
}

func TestFreezeMaterializesEverything(t *testing.T) {
	d, err := Parse([]byte(`{"a": [1, {"b": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.Freeze()

	a, ok := d.Root().Child("a")
	if !ok || !a.IsMaterialized() {
		t.Fatal("expected a to be eagerly materialized by Freeze")
	}
	second, ok := a.Child("1")
	if !ok || !second.IsMaterialized() {
		t.Fatal("expected a[1] to be eagerly materialized by Freeze")
	}
	b, ok := second.Child("b")
	if !ok || !b.IsMaterialized() || b.AsNumber() != 2 {
		t.Fatalf("expected a[1].b materialized to 2, got %v %v", ok, b)
	}
}
