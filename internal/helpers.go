package internal

import "strconv"

type paramType interface {
	~string | ~int | ~int64 | ~bool
}

// ContextValue returns the value stored under key, or T's zero value.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Param returns a typed path parameter. ok is false when it is missing or
// does not parse.
func Param[T paramType](c Context, name string) (T, bool) {
	return convertParam[T](c.Param(name))
}

// Form returns a typed form value. ok is false when it is missing or does
// not parse.
func Form[T paramType](c Context, name string) (T, bool) {
	return convertParam[T](c.Form(name))
}

// QueryDefault returns a typed query parameter, or def when it is missing
// or does not parse.
func QueryDefault[T paramType](c Context, name string, def T) T {
	if v, ok := convertParam[T](c.Query(name)); ok {
		return v
	}
	return def
}

func convertParam[T paramType](raw string) (T, bool) {
	var zero T
	if raw == "" {
		return zero, false
	}
	switch p := any(&zero).(type) {
	case *string:
		*p = raw
	case *int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return zero, false
		}
		*p = v
	case *int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return zero, false
		}
		*p = v
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return zero, false
		}
		*p = v
	default:
		return zero, false
	}
	return zero, true
}
