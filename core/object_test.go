package core

import "testing"

func TestObjectString(t *testing.T) {
	tests := []struct {
		obj      Object
		wantType ObjectType
		want     string
	}{
		{Null{}, ObjNull, "null"},
		{Bool(false), ObjBool, "false"},
		{Int(-42), ObjInt, "-42"},
		{Real(0.25), ObjReal, "0.25"},
		{String("abc"), ObjString, "abc"},
		{Name("Pattern"), ObjName, "/Pattern"},
		{Array{Int(1), Name("x"), Array{}}, ObjArray, "[1 /x []]"},
		{Dict{"YStep": Int(2), "XStep": Real(1.5)}, ObjDict, "<</XStep 1.5/YStep 2>>"},
		{&Stream{Dict: Dict{}, Data: []byte("0 0 m")}, ObjStream, "stream <<>> (5 bytes)"},
	}

	for _, tt := range tests {
		t.Run(tt.wantType.String(), func(t *testing.T) {
			if got := tt.obj.Type(); got != tt.wantType {
				t.Errorf("Type() = %v, want %v", got, tt.wantType)
			}
			if got := tt.obj.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := ObjectType(99).String(); got != "Unknown" {
		t.Errorf("ObjectType(99).String() = %q, want Unknown", got)
	}
}

func TestDictAccessors(t *testing.T) {
	shading := &Stream{Dict: Dict{"ShadingType": Int(4)}}
	d := Dict{
		"Type":    Name("Pattern"),
		"Count":   Int(3),
		"BBox":    Array{Int(0), Int(0), Int(10), Int(10)},
		"Res":     Dict{"Font": Dict{}},
		"Shading": shading,
		"Matrix":  Null{},
	}

	if v, ok := d.GetName("Type"); !ok || v != "Pattern" {
		t.Errorf("GetName = %v, %v", v, ok)
	}
	if v, ok := d.GetInt("Count"); !ok || v != 3 {
		t.Errorf("GetInt = %v, %v", v, ok)
	}
	if v, ok := d.GetArray("BBox"); !ok || len(v) != 4 {
		t.Errorf("GetArray = %v, %v", v, ok)
	}
	if v, ok := d.GetDict("Res"); !ok || len(v) != 1 {
		t.Errorf("GetDict = %v, %v", v, ok)
	}
	if v, ok := d.GetStream("Shading"); !ok || v != shading {
		t.Errorf("GetStream = %v, %v", v, ok)
	}

	// wrong type, missing and null all miss
	if _, ok := d.GetInt("Type"); ok {
		t.Error("GetInt on a name should miss")
	}
	if _, ok := d.GetDict("Missing"); ok {
		t.Error("GetDict on a missing key should miss")
	}
	if _, ok := d.GetArray("Matrix"); ok {
		t.Error("GetArray on null should miss")
	}
	if d.Get("Matrix") != (Null{}) || d.Get("Missing") != nil {
		t.Error("Get should return the raw entry")
	}

	var empty Dict
	if _, ok := empty.GetName("Type"); ok {
		t.Error("lookup on a nil dict should miss")
	}
}
