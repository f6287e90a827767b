package doc

import "testing"

func TestNewObjectAndArrayConstructors(t *testing.T) {
	arr := NewArray([]*Element{NewNumber(1), NewNumber(2)})
	if !arr.IsArray() || !arr.IsModified() {
		t.Fatalf("got %v modified=%v", arr.Type(), arr.IsModified())
	}
	if got := arr.Keys(); len(got) != 2 || got[0] != "0" || got[1] != "1" {
		t.Fatalf("got keys %v", got)
	}

	obj := NewObject([]string{"x", "y"}, []*Element{NewBool(true), NewNull()})
	if !obj.IsObject() {
		t.Fatalf("got %v", obj.Type())
	}
	x, ok := obj.Child("x")
	if !ok || !x.AsBool() {
		t.Fatalf("got %v %v", x, ok)
	}
}

func TestTypeStringer(t *testing.T) {
	cases := map[Type]string{
		NullType:    "Null",
		BooleanType: "Boolean",
		NumberType:  "Number",
		StringType:  "String",
		ObjectType:  "Object",
		ArrayType:   "Array",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Fatalf("%d: got %q, want %q", typ, got, want)
		}
	}
}
