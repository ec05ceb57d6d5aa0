package samples

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctest/internal/execution"
	"ctest/internal/registry"
	"ctest/internal/ui"
)

func TestStrFind(t *testing.T) {
	assert.Equal(t, 7, StrFind("hello, world", "world"))
	assert.Equal(t, 0, StrFind("abc", "a"))
	assert.Equal(t, -1, StrFind("abc", "z"))
}

func TestRegister_AllPass(t *testing.T) {
	reg := registry.New(16)
	Register(reg, Options{})
	require.Equal(t, 6, reg.Len())

	var buf bytes.Buffer
	reporter := ui.NewReporter(&buf, false)

	seq := execution.NewSequential(reg, reporter, execution.NewRunner()).Run("samples", true)
	assert.Equal(t, 6, seq.Passed)

	conc := execution.NewConcurrent(reg, reporter, execution.NewRunner(), execution.OrderRegistration).Run("samples", false)
	assert.Equal(t, 6, conc.Passed)
	assert.Contains(t, buf.String(), "PASS: add_test\n")
	assert.Contains(t, buf.String(), "samples: 6 tests: 6 PASS, 0 FAIL\n")
}

func TestRegister_Failing(t *testing.T) {
	reg := registry.New(16)
	Register(reg, Options{Failing: true})
	require.Equal(t, 8, reg.Len())

	var buf bytes.Buffer
	summary := execution.NewSequential(reg, ui.NewReporter(&buf, false), execution.NewRunner()).Run("samples", false)
	assert.Equal(t, 2, summary.Failed)
	assert.Contains(t, buf.String(), "FAILURE: div_rounding_test: suite.go:")
	assert.Contains(t, buf.String(), "(left: 'Div(7, 2)', right: '4')")
	assert.Contains(t, buf.String(), "FAILURE: sub_range_test: suite.go:")
}
