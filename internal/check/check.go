// Package check builds test Outcomes from eagerly evaluated operands.
//
// Go cannot stringify an expression at its call site, so every helper takes the operand text
// from the caller. The text is only used in the failure message; comparisons always use the
// actual values. The failing call site is captured with runtime.Caller.
package check

import (
	"cmp"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"

	"ctest/internal/domain"
)

const prefix = "Assertion failed: "

// True succeeds when v is true
func True(v bool, text string) domain.Outcome {
	return isTrue(v, text, 2)
}

// False succeeds when v is false
func False(v bool, text string) domain.Outcome {
	return isFalse(v, text, 2)
}

// Eq succeeds when left == right
func Eq[T comparable](left, right T, leftText, rightText string) domain.Outcome {
	if left != right {
		return fail(2, domain.KindEquality, "left is different from right", leftText, rightText)
	}
	return domain.Success()
}

// Ne succeeds when left != right
func Ne[T comparable](left, right T, leftText, rightText string) domain.Outcome {
	if left == right {
		return fail(2, domain.KindInequality, "left is equal to right", leftText, rightText)
	}
	return domain.Success()
}

// Lt succeeds when left < right
func Lt[T cmp.Ordered](left, right T, leftText, rightText string) domain.Outcome {
	if left >= right {
		return fail(2, domain.KindLessThan, "left is greater or equal to right", leftText, rightText)
	}
	return domain.Success()
}

// Gt succeeds when left > right
func Gt[T cmp.Ordered](left, right T, leftText, rightText string) domain.Outcome {
	if left <= right {
		return fail(2, domain.KindGreaterThan, "left is less or equal to right", leftText, rightText)
	}
	return domain.Success()
}

// Le succeeds when left <= right
func Le[T cmp.Ordered](left, right T, leftText, rightText string) domain.Outcome {
	if left > right {
		return fail(2, domain.KindLessOrEqual, "left is greater than right", leftText, rightText)
	}
	return domain.Success()
}

// Ge succeeds when left >= right
func Ge[T cmp.Ordered](left, right T, leftText, rightText string) domain.Outcome {
	if left < right {
		return fail(2, domain.KindGreaterOrEqual, "left is less than right", leftText, rightText)
	}
	return domain.Success()
}

// InRange succeeds when low <= v <= high
func InRange[T cmp.Ordered](v, low, high T, vText, lowText, highText string) domain.Outcome {
	if v < low || v > high {
		msg := fmt.Sprintf("%svalue is out of range (value: '%s', range: ['%s', '%s'])", prefix, vText, lowText, highText)
		return failure(2, domain.KindRange, msg)
	}
	return domain.Success()
}

// Nil succeeds when v is nil, including typed nil pointers, maps, slices, channels and funcs.
func Nil(v any, text string) domain.Outcome {
	return isNil(v, text, 2)
}

// NotNil succeeds when v is not nil
func NotNil(v any, text string) domain.Outcome {
	return isNotNil(v, text, 2)
}

func isTrue(v bool, text string, skip int) domain.Outcome {
	if !v {
		return failure(skip+1, domain.KindBoolean, fmt.Sprintf("%s'%s' is false", prefix, text))
	}
	return domain.Success()
}

func isFalse(v bool, text string, skip int) domain.Outcome {
	if v {
		return failure(skip+1, domain.KindBoolean, fmt.Sprintf("%s'%s' is true", prefix, text))
	}
	return domain.Success()
}

func isNil(v any, text string, skip int) domain.Outcome {
	if !nilValue(v) {
		return failure(skip+1, domain.KindNull, fmt.Sprintf("%s'%s' is not nil", prefix, text))
	}
	return domain.Success()
}

func isNotNil(v any, text string, skip int) domain.Outcome {
	if nilValue(v) {
		return failure(skip+1, domain.KindNotNull, fmt.Sprintf("%s'%s' is nil", prefix, text))
	}
	return domain.Success()
}

func nilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func fail(skip int, kind domain.Kind, what, leftText, rightText string) domain.Outcome {
	msg := fmt.Sprintf("%s%s (left: '%s', right: '%s')", prefix, what, leftText, rightText)
	return failure(skip+1, kind, msg)
}

// failure builds a Failure at the frame skip levels up, where 0 is failure itself
func failure(skip int, kind domain.Kind, msg string) domain.Outcome {
	f := domain.Failure{Kind: kind, Message: msg, File: "???"}
	if _, file, line, ok := runtime.Caller(skip); ok {
		f.File = filepath.Base(file)
		f.Line = line
	}
	return domain.Fail(f)
}
