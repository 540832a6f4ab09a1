// internal/scpi/decode_test.go
package scpi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_ZeroNeverFails(t *testing.T) {
	assert.NoError(t, Decode(0, "No error."))
	assert.NoError(t, Decode(0, ""))
	// Even a cataloged message is ignored when the code is zero.
	assert.NoError(t, Decode(0, "Illegal parameter value"))
}

func TestDecode_CatalogMatch(t *testing.T) {
	err := Decode(-224, "Illegal parameter value")

	var devErr *DeviceError
	assert.True(t, errors.As(err, &devErr))
	assert.Equal(t, -224, devErr.Report.Code)
	assert.Equal(t, "Illegal parameter value", devErr.Report.Summary)
	assert.NotEmpty(t, devErr.Report.Detail)
}

func TestDecode_ReportedCodeWins(t *testing.T) {
	// The same message under a different firmware code keeps the
	// reported code for display.
	err := Decode(-9999, "Illegal parameter value")

	var devErr *DeviceError
	assert.True(t, errors.As(err, &devErr))
	assert.Equal(t, -9999, devErr.Report.Code)
	assert.NotEmpty(t, devErr.Report.Detail)
}

func TestDecode_UnknownMessageFallback(t *testing.T) {
	err := Decode(-777, "Mystery condition")

	var devErr *DeviceError
	assert.True(t, errors.As(err, &devErr))
	assert.Equal(t, -777, devErr.Report.Code)
	assert.Equal(t, "Mystery condition", devErr.Report.Summary)
	assert.Empty(t, devErr.Report.Detail)
}

func TestDeviceError_MessageCarriesCodeAndText(t *testing.T) {
	err := Decode(-231, "Data questionable;ZERO ERROR")
	assert.Contains(t, err.Error(), "-231")
	assert.Contains(t, err.Error(), "Data questionable;ZERO ERROR")
}
