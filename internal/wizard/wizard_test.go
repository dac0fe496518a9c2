package wizard_test

import (
	"testing"

	"skillbridge-backend/internal/wizard"
	"skillbridge-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

// failSteps builds a validator that fails exactly the given steps.
func failSteps(failing ...int) wizard.StepValidator {
	bad := map[int]bool{}
	for _, s := range failing {
		bad[s] = true
	}
	return func(step int) validation.Errors {
		if bad[step] {
			return validation.Errors{"field": "field is required"}
		}
		return validation.Errors{}
	}
}

func TestController(t *testing.T) {
	t.Run("Should start on step one", func(t *testing.T) {
		c := wizard.New(4, failSteps())
		assert.Equal(t, 1, c.Step())
		assert.Equal(t, 4, c.TotalSteps())
		assert.False(t, c.Done())
	})

	t.Run("Should refuse to advance past a failing step", func(t *testing.T) {
		c := wizard.New(4, failSteps(1))
		ok, errs := c.Next()
		assert.False(t, ok)
		assert.False(t, errs.Valid())
		assert.Equal(t, 1, c.Step())
	})

	t.Run("Should advance one step at a time on success", func(t *testing.T) {
		c := wizard.New(4, failSteps())
		for want := 2; want <= 4; want++ {
			ok, _ := c.Next()
			assert.True(t, ok)
			assert.Equal(t, want, c.Step())
		}
	})

	t.Run("Should not advance past the last step", func(t *testing.T) {
		c := wizard.New(2, failSteps())
		c.Next()
		ok, _ := c.Next()
		assert.True(t, ok)
		assert.Equal(t, 2, c.Step())
		assert.False(t, c.Done())
	})

	t.Run("Previous should move back without validating", func(t *testing.T) {
		calls := 0
		c := wizard.New(3, func(step int) validation.Errors {
			calls++
			return validation.Errors{}
		})
		c.Next()
		validateCalls := calls
		c.Previous()
		assert.Equal(t, 1, c.Step())
		assert.Equal(t, validateCalls, calls)
	})

	t.Run("Previous should clamp at step one", func(t *testing.T) {
		c := wizard.New(3, failSteps())
		c.Previous()
		assert.Equal(t, 1, c.Step())
	})

	t.Run("Submit should only fire on the last step", func(t *testing.T) {
		c := wizard.New(3, failSteps())
		ok, _ := c.Submit()
		assert.False(t, ok)
		assert.False(t, c.Done())
	})

	t.Run("Submit should re-validate the last step", func(t *testing.T) {
		c := wizard.New(2, failSteps(2))
		c.Next()
		ok, errs := c.Submit()
		assert.False(t, ok)
		assert.False(t, errs.Valid())
		assert.False(t, c.Submitted())
	})

	t.Run("Submit should terminate the wizard on success", func(t *testing.T) {
		c := wizard.New(2, failSteps())
		c.Next()
		ok, _ := c.Submit()
		assert.True(t, ok)
		assert.True(t, c.Done())
		assert.True(t, c.Submitted())
	})

	t.Run("Cancel should terminate without submitting", func(t *testing.T) {
		c := wizard.New(2, failSteps())
		c.Cancel()
		assert.True(t, c.Done())
		assert.False(t, c.Submitted())
	})

	t.Run("ToggleLoginMode should flip the mode and keep the step", func(t *testing.T) {
		c := wizard.New(4, failSteps())
		c.Next()
		c.ToggleLoginMode()
		assert.True(t, c.LoginMode())
		assert.Equal(t, 2, c.Step())
		c.ToggleLoginMode()
		assert.False(t, c.LoginMode())
	})

	t.Run("Should clamp a non-positive step count to one", func(t *testing.T) {
		c := wizard.New(0, failSteps())
		assert.Equal(t, 1, c.TotalSteps())
		ok, _ := c.Submit()
		assert.True(t, ok)
	})
}
