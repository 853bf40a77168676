package formatter

import (
	"fmt"
	"reflect"
)

// maxWalkDepth bounds the cycle walk. Values nested deeper are treated as
// cyclic, the same limit encoding/json applies to pointer chains.
const maxWalkDepth = 1000

type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// cycleWalker tracks the maps, slices and pointers on the current path.
type cycleWalker struct {
	path map[visit]struct{}
}

// hasCycle reports whether v references itself through a map, slice or
// pointer. Shared references that do not loop back are not cycles.
func hasCycle(v any) bool {
	w := cycleWalker{path: make(map[visit]struct{})}
	return w.walk(reflect.ValueOf(v), 0)
}

func (w *cycleWalker) walk(v reflect.Value, depth int) bool {
	if depth > maxWalkDepth {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if v.Kind() == reflect.Slice {
			key.len = v.Len()
		}
		if _, ok := w.path[key]; ok {
			return true
		}
		w.path[key] = struct{}{}
		defer delete(w.path, key)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return w.walk(v.Elem(), depth+1)
	case reflect.Map:
		if !canReference(v.Type().Key()) && !canReference(v.Type().Elem()) {
			return false
		}
		iter := v.MapRange()
		for iter.Next() {
			if w.walk(iter.Key(), depth+1) || w.walk(iter.Value(), depth+1) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		if !canReference(v.Type().Elem()) {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if w.walk(v.Index(i), depth+1) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if w.walk(v.Field(i), depth+1) {
				return true
			}
		}
	}
	return false
}

// canReference reports whether values of t can hold a map, slice or
// pointer, directly or nested.
func canReference(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Array,
		reflect.Struct, reflect.Interface:
		return true
	default:
		return false
	}
}

func cyclicPlaceholder(v any) string {
	return fmt.Sprintf("<cyclic %T>", v)
}

// PlainValue returns v unchanged unless fmt could not print it: cyclic
// maps, slices, pointers and structs are replaced by a "<cyclic T>"
// placeholder.
func PlainValue(v any) any {
	if v == nil || !isObject(v) {
		return v
	}
	if hasCycle(v) {
		return cyclicPlaceholder(v)
	}
	return v
}
