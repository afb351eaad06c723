package userdata

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"time"
)

var (
	// ErrCyclicValue reports a container that directly or indirectly contains itself.
	ErrCyclicValue = errors.New("userdata: cannot clone cyclic value")
	// ErrUnsupportedValue reports a top-level value outside the cloneable set.
	ErrUnsupportedValue = errors.New("userdata: cannot clone unsupported value")
)

// DeepClone copies v so the result shares no container with the input.
//
// The supported set mirrors interchange-format values: nil, booleans,
// strings, numbers, time.Time, []any sequences and string-keyed maps. A
// cyclic container fails with ErrCyclicValue; a top-level value outside the
// set fails with ErrUnsupportedValue. Inside containers an unsupported value
// is absorbed: map entries are dropped, sequence slots and non-finite numbers
// become nil.
// containerKey identifies a container on the clone path. Slices need the
// length alongside the data pointer: a shorter subslice of an ancestor shares
// the pointer without being the same view, and only re-entering the identical
// view is a cycle.
type containerKey struct {
	ptr uintptr
	len int
}

func DeepClone(v any) (any, error) {
	out, ok, err := cloneValue(v, map[containerKey]struct{}{})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnsupportedValue
	}
	return out, nil
}

func cloneValue(v any, path map[containerKey]struct{}) (any, bool, error) {
	switch val := v.(type) {
	case nil:
		return nil, true, nil
	case bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return val, true, nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, true, nil
		}
		return val, true, nil
	case float32:
		wide := float64(val)
		if math.IsNaN(wide) || math.IsInf(wide, 0) {
			return nil, true, nil
		}
		return val, true, nil
	case time.Time:
		return val, true, nil
	case []any:
		return cloneSlice(val, path)
	case map[string]any:
		return cloneMap(val, path)
	default:
		return nil, false, nil
	}
}

func cloneSlice(src []any, path map[containerKey]struct{}) (any, bool, error) {
	// Only a non-empty container can reach itself, so empty ones skip the
	// cycle bookkeeping (their data pointers are not unique anyway).
	if len(src) > 0 {
		key := containerKey{reflect.ValueOf(src).Pointer(), len(src)}
		if _, onPath := path[key]; onPath {
			return nil, false, ErrCyclicValue
		}
		path[key] = struct{}{}
		defer delete(path, key)
	}
	out := make([]any, len(src))
	for i, elem := range src {
		cloned, ok, err := cloneValue(elem, path)
		if err != nil {
			return nil, false, err
		}
		if ok {
			out[i] = cloned
		}
	}
	return out, true, nil
}

func cloneMap(src map[string]any, path map[containerKey]struct{}) (any, bool, error) {
	if len(src) > 0 {
		key := containerKey{reflect.ValueOf(src).Pointer(), len(src)}
		if _, onPath := path[key]; onPath {
			return nil, false, ErrCyclicValue
		}
		path[key] = struct{}{}
		defer delete(path, key)
	}
	out := make(Record, len(src))
	for key, value := range src {
		cloned, ok, err := cloneValue(value, path)
		if err != nil {
			return nil, false, err
		}
		if ok {
			out[key] = cloned
		}
	}
	return out, true, nil
}
