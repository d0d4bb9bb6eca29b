package event

import "reflect"

// sameContext reports whether two subscription contexts are the same.
//
// Pointers, channels, maps and slices match by identity; slices also need the
// same length and capacity. Structs and arrays match field by field under the
// same rules, so a struct value carrying a slice still equals itself. Other
// values use ==. Non-nil functions never match; On rejects such contexts.
func sameContext(a, b any) bool {
	return sameValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func sameValue(v, w reflect.Value) bool {
	if !v.IsValid() || !w.IsValid() {
		return v.IsValid() == w.IsValid()
	}
	if v.Type() != w.Type() {
		return false
	}

	switch v.Kind() {
	case reflect.Map:
		return v.Pointer() == w.Pointer()
	case reflect.Slice:
		return v.Pointer() == w.Pointer() && v.Len() == w.Len() && v.Cap() == w.Cap()
	case reflect.Func:
		return v.IsNil() && w.IsNil()
	case reflect.Interface:
		if v.IsNil() || w.IsNil() {
			return v.IsNil() && w.IsNil()
		}
		return sameValue(v.Elem(), w.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !sameValue(v.Field(i), w.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !sameValue(v.Index(i), w.Index(i)) {
				return false
			}
		}
		return true
	}
	return v.Equal(w)
}

// matchable reports whether a context can be found again by Off.
// Functions have no identity, and every zero-capacity slice shares one
// address, so neither can tell two registrations apart.
func matchable(ctx any) bool {
	if ctx == nil {
		return true
	}
	v := reflect.ValueOf(ctx)
	if v.Kind() == reflect.Slice && v.Cap() == 0 {
		return false
	}
	return !holdsFunc(v)
}

func holdsFunc(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Func:
		return !v.IsNil()
	case reflect.Interface:
		return !v.IsNil() && holdsFunc(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if holdsFunc(v.Field(i)) {
				return true
			}
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if holdsFunc(v.Index(i)) {
				return true
			}
		}
	}
	return false
}
