package doc

import "testing"

func TestMaterializeNumberVariants(t *testing.T) {
	d, err := Parse([]byte(`{"a": -3.5e2, "b": 0, "c": 42}`))
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]float64{"a": -350, "b": 0, "c": 42}
	for key, want := range cases {
		e, err := d.Get(key)
		if err != nil {
			t.Fatal(err)
		}
		if e.AsNumber() != want {
			t.Fatalf("%s: got %v, want %v", key, e.AsNumber(), want)
		}
	}
}

func TestMaterializeBooleanAndNull(t *testing.T) {
	d, err := Parse([]byte(`{"t": true, "f": false, "n": null}`))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := d.Get("t")
	if err != nil {
		t.Fatal(err)
	}
	if !tr.AsBool() {
		t.Fatal("want true")
	}
	fa, err := d.Get("f")
	if err != nil {
		t.Fatal(err)
	}
	if fa.AsBool() {
		t.Fatal("want false")
	}
	n, err := d.Get("n")
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsNull() {
		t.Fatalf("want null, got %v", n.Type())
	}
}

func TestMaterializeIsIdempotent(t *testing.T) {
	d, err := Parse([]byte(`{"a": {"b": 1}}`))
	if err != nil {
		t.Fatal(err)
	}
	a, err := d.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.materialize(a); err != nil {
		t.Fatal(err)
	}
	if err := d.materialize(a); err != nil {
		t.Fatal(err)
	}
	if len(a.Keys()) != 1 {
		t.Fatalf("want 1 key, got %d", len(a.Keys()))
	}
}
