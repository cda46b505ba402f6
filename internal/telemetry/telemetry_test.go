package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountOverlapCheckIsMonotonic(t *testing.T) {
	ResetCounters()
	CountOverlapCheck()
	CountOverlapCheck()
	assert.EqualValues(t, 2, OverlapChecks())
}

func TestSetLoggerReplacesPackageLogger(t *testing.T) {
	original := Logger()
	defer SetLogger(original)

	SetLogger(nil)
	assert.Nil(t, Logger())
}
