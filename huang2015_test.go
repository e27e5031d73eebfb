package deltae

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerFunctionHuang2015(t *testing.T) {
	assert.InDelta(t, 7.166977440869992, PowerFunctionHuang2015(10), 1e-9)
	assert.Equal(t, 0.0, PowerFunctionHuang2015(0))
	assert.InDelta(t, 1.43, PowerFunctionHuang2015(1), 1e-12)
}

func TestPowerFunctionHuang2015Compression(t *testing.T) {
	// Sub-unity exponent: expands small differences, compresses large
	// ones, and never reorders them.
	assert.Greater(t, PowerFunctionHuang2015(0.5), 0.5)
	assert.Less(t, PowerFunctionHuang2015(100), 100.0)
	assert.Less(t, PowerFunctionHuang2015(10), PowerFunctionHuang2015(20))
}
