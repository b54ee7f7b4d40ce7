package input

import (
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewCollector_Defaults(t *testing.T) {
	c := NewCollector()

	req := c.Request()
	assert.Equal(t, entities.PredictionRequest{Troponin: 0.01, CKMB: 5.0, Age: 50}, req)
	require.NoError(t, req.Validate())

	assert.Equal(t, "0.01", c.Troponin.Text())
	assert.Equal(t, "5.0", c.CKMB.Text())
	assert.Equal(t, "50", c.Age.Text())
	assert.Equal(t, "[0.00, 100.00]", c.Troponin.Bounds())
	assert.Equal(t, "[18, 120]", c.Age.Bounds())
}

func TestFloatField_SetClamps(t *testing.T) {
	c := NewCollector()

	c.Troponin.Set(250)
	assert.Equal(t, 100.0, c.Troponin.Value())

	c.Troponin.Set(-3)
	assert.Equal(t, 0.0, c.Troponin.Value())

	c.CKMB.Set(1e6)
	assert.Equal(t, 1000.0, c.CKMB.Value())
}

func TestFloatField_StepKeepsPrecision(t *testing.T) {
	c := NewCollector()

	for i := 0; i < 3; i++ {
		c.Troponin.Increment()
	}
	assert.Equal(t, 0.04, c.Troponin.Value())

	c.CKMB.Set(0.1)
	c.CKMB.Increment()
	c.CKMB.Increment()
	assert.Equal(t, 0.3, c.CKMB.Value())
	assert.Equal(t, "0.3", c.CKMB.Text())
}

func TestFloatField_StepStopsAtBounds(t *testing.T) {
	c := NewCollector()

	c.Troponin.Set(0)
	c.Troponin.Decrement()
	assert.Equal(t, 0.0, c.Troponin.Value())

	c.CKMB.Set(1000)
	c.CKMB.Increment()
	assert.Equal(t, 1000.0, c.CKMB.Value())
}

func TestFloatField_Parse(t *testing.T) {
	c := NewCollector()

	require.NoError(t, c.Troponin.Parse(" 0.456 "))
	assert.Equal(t, 0.46, c.Troponin.Value())

	require.NoError(t, c.CKMB.Parse("12,5"))
	assert.Equal(t, 12.5, c.CKMB.Value())

	require.NoError(t, c.CKMB.Parse("5000"))
	assert.Equal(t, 1000.0, c.CKMB.Value())

	err := c.Troponin.Parse("abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotANumber))
	assert.Equal(t, 0.46, c.Troponin.Value(), "rejected text must not change the value")

	require.Error(t, c.Troponin.Parse("NaN"))
}

func TestIntField(t *testing.T) {
	c := NewCollector()

	c.Age.Set(5)
	assert.Equal(t, 18, c.Age.Value())

	c.Age.Set(200)
	assert.Equal(t, 120, c.Age.Value())

	c.Age.Increment()
	assert.Equal(t, 120, c.Age.Value())

	c.Age.Decrement()
	assert.Equal(t, 119, c.Age.Value())

	require.NoError(t, c.Age.Parse("64"))
	assert.Equal(t, 64, c.Age.Value())

	err := c.Age.Parse("64.5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotANumber))
	assert.Equal(t, 64, c.Age.Value())
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector()
	c.Troponin.Set(3)
	c.CKMB.Set(40)
	c.Age.Set(80)

	c.Reset()

	assert.Equal(t, entities.PredictionRequest{Troponin: 0.01, CKMB: 5.0, Age: 50}, c.Request())
}

func TestCollector_RequestAlwaysValid(t *testing.T) {
	c := NewCollector()

	for _, f := range c.Fields() {
		for i := 0; i < 20000; i++ {
			f.Increment()
		}
	}
	require.NoError(t, c.Request().Validate())

	for _, f := range c.Fields() {
		for i := 0; i < 20000; i++ {
			f.Decrement()
		}
	}
	require.NoError(t, c.Request().Validate())
}
