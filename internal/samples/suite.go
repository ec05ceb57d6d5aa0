package samples

import (
	"time"

	"ctest/internal/check"
	"ctest/internal/domain"
	"ctest/internal/registry"
)

// Options tunes the bundled suite
type Options struct {
	// Delay is slept by every arithmetic test, to make parallel execution visible
	Delay time.Duration
	// Failing adds tests that fail on purpose, to demonstrate failure reports
	Failing bool
}

// Register adds the bundled tests to reg
func Register(reg *registry.Registry, opts Options) {
	pause := func() {
		if opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}
	}

	reg.Register("add_test", check.Body(func(c *check.C) {
		c.True(true, "true")
		c.Require(check.Eq(Add(1, 1), 2, "Add(1, 1)", "2"))
		c.Require(check.Ne(Add(1, 1), 3, "Add(1, 1)", "3"))
		c.Require(check.Lt(Add(1, 2), 4, "Add(1, 2)", "4"))
		c.Require(check.Le(Add(1, 2), 3, "Add(1, 2)", "3"))
		c.Require(check.Gt(Add(1, 2), 2, "Add(1, 2)", "2"))
		c.Require(check.Ge(Add(1, 2), 3, "Add(1, 2)", "3"))
		pause()
	}))

	reg.Register("sub_test", check.Body(func(c *check.C) {
		c.Require(check.Eq(Sub(1, 1), 0, "Sub(1, 1)", "0"))
		c.Require(check.Ne(Sub(1, 1), 1, "Sub(1, 1)", "1"))
		c.Require(check.Lt(Sub(1, 1), 1, "Sub(1, 1)", "1"))
		pause()
	}))

	reg.Register("mul_test", check.Body(func(c *check.C) {
		c.Require(check.Eq(Mul(1, 1), 1, "Mul(1, 1)", "1"))
		c.Require(check.Eq(Mul(1, 0), 0, "Mul(1, 0)", "0"))
		c.Require(check.Eq(Mul(0, 1), 0, "Mul(0, 1)", "0"))
		c.Require(check.InRange(Mul(3, 3), 0, 10, "Mul(3, 3)", "0", "10"))
		pause()
	}))

	reg.Register("div_test", check.Body(func(c *check.C) {
		c.Require(check.Eq(Div(1, 1), 1, "Div(1, 1)", "1"))
		c.Require(check.Eq(Div(2, 2), 1, "Div(2, 2)", "1"))
		pause()
	}))

	reg.Register("strfind_test", func() domain.Outcome {
		return check.Eq(StrFind("hello, world", "world"), 7, "StrFind(\"hello, world\", \"world\")", "7")
	})

	reg.Register("strfind_missing_test", check.Body(func(c *check.C) {
		var err error
		c.Nil(err, "err")
		c.Require(check.Eq(StrFind("hello", "xyz"), -1, "StrFind(\"hello\", \"xyz\")", "-1"))
	}))

	if !opts.Failing {
		return
	}

	reg.Register("div_rounding_test", check.Body(func(c *check.C) {
		c.Require(check.Eq(Div(7, 2), 4, "Div(7, 2)", "4"))
	}))

	reg.Register("sub_range_test", func() domain.Outcome {
		return check.InRange(Sub(0, 5), 0, 10, "Sub(0, 5)", "0", "10")
	})
}
