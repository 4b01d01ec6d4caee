package match

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

var (
	errFieldNotExported = errors.New("is not exported")
	errFieldUnreachable = errors.New("is not reachable")
	errNotAField        = errors.New("is not a field")
)

// HasField matches a struct, or a pointer to one, whose exported field or zero-argument
// single-result method called name has a value matching sub. Methods with pointer
// receivers are found on struct values too. Lookup problems are reported as mismatches:
//
//	HasField[User]("Email", ContainsString("@"))
func HasField[T any](name string, sub Matcher[any]) Matcher[T] {
	return FallibleFeature("has field "+strconv.Quote(name), name, sub, func(actual T) (any, error) {
		return fieldValue(actual, name)
	})
}

func fieldValue(actual any, name string) (value any, err error) {
	rv := reflect.ValueOf(actual)
	target := rv

	for target.Kind() == reflect.Pointer || target.Kind() == reflect.Interface {
		if target.IsNil() {
			return nil, errFieldUnreachable
		}

		target = target.Elem()
	}

	if target.Kind() == reflect.Struct {
		if field, ok := target.Type().FieldByName(name); ok {
			if !field.IsExported() {
				return nil, errFieldNotExported
			}

			fv, err := target.FieldByIndexErr(field.Index)
			if err != nil {
				return nil, errFieldUnreachable
			}

			return fv.Interface(), nil
		}
	}

	method := rv.MethodByName(name)
	if !method.IsValid() && target.Kind() == reflect.Struct && !target.CanAddr() {
		addressable := reflect.New(target.Type())
		addressable.Elem().Set(target)
		method = addressable.MethodByName(name)
	}

	if !method.IsValid() || method.Type().NumIn() != 0 || method.Type().NumOut() != 1 {
		return nil, errNotAField
	}

	defer func() {
		if r := recover(); r != nil {
			value, err = nil, fmt.Errorf("panicked: %v", r)
		}
	}()

	return method.Call(nil)[0].Interface(), nil
}
