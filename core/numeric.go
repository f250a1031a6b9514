package core

import "reflect"

// DefaultInheritDepth bounds the /Parent chain walked by Inherited.
const DefaultInheritDepth = 64

// ToFloat converts a numeric object (Int or Real) to float32.
func ToFloat(obj Object) (float32, bool) {
	switch v := obj.(type) {
	case Int:
		return float32(v), true
	case Real:
		return float32(v), true
	default:
		return 0, false
	}
}

// Floats converts every element to float32. It fails if any element is not
// numeric.
func (a Array) Floats() ([]float32, bool) {
	out := make([]float32, len(a))
	for i, obj := range a {
		f, ok := ToFloat(obj)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// GetNumber retrieves an integer or real value as float32
func (d Dict) GetNumber(key string) (float32, bool) {
	obj, ok := d[key]
	if !ok {
		return 0, false
	}
	return ToFloat(obj)
}

// Inherited looks key up in d and then along the /Parent chain, the way
// page attributes such as MediaBox and Resources are inherited.
func (d Dict) Inherited(key string) (Object, bool) {
	return d.InheritedDepth(key, DefaultInheritDepth)
}

// InheritedDepth is Inherited with an explicit limit on the number of
// parents visited. A chain that loops back on itself ends the walk.
func (d Dict) InheritedDepth(key string, maxDepth int) (Object, bool) {
	visited := make(map[uintptr]bool)
	node := d
	for depth := 0; node != nil && depth <= maxDepth; depth++ {
		id := reflect.ValueOf(node).Pointer()
		if visited[id] {
			return nil, false
		}
		visited[id] = true

		if obj, ok := node[key]; ok {
			return obj, true
		}

		parent, ok := node.GetDict("Parent")
		if !ok {
			return nil, false
		}
		node = parent
	}
	return nil, false
}
