package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Object is a direct PDF object as it appears in a content stream operand
// list or a pattern/page dictionary.
type Object interface {
	Type() ObjectType
	String() string
}

// ObjectType identifies the concrete kind of an Object.
type ObjectType int

const (
	ObjNull ObjectType = iota
	ObjBool
	ObjInt
	ObjReal
	ObjString
	ObjName
	ObjArray
	ObjDict
	ObjStream
)

var objectTypeNames = [...]string{
	ObjNull:   "Null",
	ObjBool:   "Bool",
	ObjInt:    "Int",
	ObjReal:   "Real",
	ObjString: "String",
	ObjName:   "Name",
	ObjArray:  "Array",
	ObjDict:   "Dict",
	ObjStream: "Stream",
}

func (t ObjectType) String() string {
	if t < 0 || int(t) >= len(objectTypeNames) {
		return "Unknown"
	}
	return objectTypeNames[t]
}

// Null is the PDF null object. A dictionary entry holding Null is treated
// like an absent entry by the accessors below.
type Null struct{}

func (Null) Type() ObjectType { return ObjNull }
func (Null) String() string   { return "null" }

type Bool bool

func (Bool) Type() ObjectType { return ObjBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

type Int int64

func (Int) Type() ObjectType { return ObjInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

type Real float64

func (Real) Type() ObjectType { return ObjReal }
func (r Real) String() string { return strconv.FormatFloat(float64(r), 'f', -1, 64) }

// String holds the decoded bytes of a literal or hex string.
type String string

func (String) Type() ObjectType { return ObjString }
func (s String) String() string { return string(s) }

// Name holds a name without its leading slash, # escapes already decoded.
type Name string

func (Name) Type() ObjectType { return ObjName }
func (n Name) String() string { return "/" + string(n) }

type Array []Object

func (Array) Type() ObjectType { return ObjArray }

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, obj := range a {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(obj.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Dict maps keys (without the slash) to values.
type Dict map[string]Object

func (Dict) Type() ObjectType { return ObjDict }

// String prints the entries in key order so output is stable.
func (d Dict) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("<<")
	for _, k := range keys {
		fmt.Fprintf(&sb, "/%s %s", k, d[k])
	}
	sb.WriteString(">>")
	return sb.String()
}

// Get returns the raw value stored under key, or nil.
func (d Dict) Get(key string) Object {
	return d[key]
}

// lookup returns d[key] when it holds a T.
func lookup[T Object](d Dict, key string) (T, bool) {
	v, ok := d[key].(T)
	return v, ok
}

func (d Dict) GetName(key string) (Name, bool)      { return lookup[Name](d, key) }
func (d Dict) GetInt(key string) (Int, bool)        { return lookup[Int](d, key) }
func (d Dict) GetDict(key string) (Dict, bool)      { return lookup[Dict](d, key) }
func (d Dict) GetArray(key string) (Array, bool)    { return lookup[Array](d, key) }
func (d Dict) GetStream(key string) (*Stream, bool) { return lookup[*Stream](d, key) }

// Stream is a stream object: its dictionary and the raw (still encoded)
// bytes. Decoded applies the filter chain.
type Stream struct {
	Dict Dict
	Data []byte

	decoded []byte
}

func (*Stream) Type() ObjectType { return ObjStream }

func (s *Stream) String() string {
	return fmt.Sprintf("stream %s (%d bytes)", s.Dict, len(s.Data))
}
