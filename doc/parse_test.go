package doc

import (
	"errors"
	"testing"
)

func TestParseRejectsPrimitiveRoot(t *testing.T) {
	_, err := Parse([]byte(`42`))
	if !errors.Is(err, ErrStructural) {
		t.Fatalf("got %v, want ErrStructural", err)
	}
}

func TestParseRejectsUnterminatedString(t *testing.T) {
	_, err := Parse([]byte(`{"a": "foo}`))
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseRejectsUnexpectedCharacter(t *testing.T) {
	_, err := Parse([]byte(`{&}`))
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseEmptyContainers(t *testing.T) {
	d, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Root().Keys()) != 0 {
		t.Fatalf("want 0 keys, got %d", len(d.Root().Keys()))
	}

	d, err = Parse([]byte(`[]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Root().Keys()) != 0 {
		t.Fatalf("want 0 keys, got %d", len(d.Root().Keys()))
	}
}

func TestParseDeeplyNestedArray(t *testing.T) {
	d, err := Parse([]byte(`[[[[1]]]]`))
	if err != nil {
		t.Fatal(err)
	}
	e, err := d.Get("0.0.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if !e.IsNumber() || e.AsNumber() != 1 {
		t.Fatalf("got %v %v", e.Type(), e.value)
	}
}

func TestParseTopLevelExample(t *testing.T) {
	src := []byte(`{"bool_1": true, "arr_1": [1, 2, 3], "obj_2": {"x": "y"}}`)
	d, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}

	b, err := d.Get("bool_1")
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsBoolean() || b.AsBool() != true {
		t.Fatalf("bool_1: got %v", b)
	}

	a1, err := d.Get("arr_1[1]")
	if err != nil {
		t.Fatal(err)
	}
	if !a1.IsNumber() || a1.AsNumber() != 2 {
		t.Fatalf("arr_1[1]: got %v", a1)
	}

	x, err := d.Get("obj_2.x")
	if err != nil {
		t.Fatal(err)
	}
	if !x.IsString() || x.AsString() != "y" {
		t.Fatalf("obj_2.x: got %v", x)
	}
}

func TestParseDuplicateKeyFirstWins(t *testing.T) {
	d, err := Parse([]byte(`{"a": 1, "a": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	e, err := d.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if e.AsNumber() != 1 {
		t.Fatalf("want first value 1, got %v", e.AsNumber())
	}
}
