package check

import (
	"ctest/internal/domain"
)

// abort unwinds a body after its first failing check
type abort struct {
	failure domain.Failure
}

// C is handed to bodies built with Body. Its methods stop the body at the first failure.
type C struct{}

// Require stops the body if o is a failure
func (c *C) Require(o domain.Outcome) {
	if f, failed := o.Failure(); failed {
		panic(abort{failure: f})
	}
}

// True stops the body unless v is true
func (c *C) True(v bool, text string) {
	c.Require(isTrue(v, text, 2))
}

// False stops the body unless v is false
func (c *C) False(v bool, text string) {
	c.Require(isFalse(v, text, 2))
}

// Nil stops the body unless v is nil
func (c *C) Nil(v any, text string) {
	c.Require(isNil(v, text, 2))
}

// NotNil stops the body unless v is non-nil
func (c *C) NotNil(v any, text string) {
	c.Require(isNotNil(v, text, 2))
}

// Body adapts fn into a domain.TestFunc. The returned function reports the first failing
// check as its Outcome; checks after it never run. Panics that did not come from a check
// propagate unchanged.
func Body(fn func(c *C)) domain.TestFunc {
	return func() (outcome domain.Outcome) {
		defer func() {
			if r := recover(); r != nil {
				a, ok := r.(abort)
				if !ok {
					panic(r)
				}
				outcome = domain.Fail(a.failure)
			}
		}()
		fn(&C{})
		return domain.Success()
	}
}
