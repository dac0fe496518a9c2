// Package wizard sequences a multi-step form. Each step gates advancement
// on its own validation; the last step submits instead of advancing.
package wizard

import "skillbridge-backend/pkg/validation"

// StepValidator reports the field errors for one step of the active draft.
type StepValidator func(step int) validation.Errors

type Controller struct {
	validate  StepValidator
	step      int
	total     int
	loginMode bool
	done      bool
	submitted bool
}

func New(totalSteps int, validate StepValidator) *Controller {
	if totalSteps < 1 {
		totalSteps = 1
	}
	return &Controller{validate: validate, step: 1, total: totalSteps}
}

func (c *Controller) Step() int       { return c.step }
func (c *Controller) TotalSteps() int { return c.total }

// Done reports whether the wizard has terminated, by submit or by cancel.
func (c *Controller) Done() bool { return c.done }

// Submitted reports whether the wizard terminated with a successful submit.
func (c *Controller) Submitted() bool { return c.submitted }

func (c *Controller) LoginMode() bool { return c.loginMode }

// Next validates the current step and advances on success. The index never
// moves past the last step; submitting is a separate action there.
func (c *Controller) Next() (bool, validation.Errors) {
	errs := c.validate(c.step)
	if !errs.Valid() {
		return false, errs
	}
	if c.step < c.total {
		c.step++
	}
	return true, errs
}

// Previous moves back one step without re-validating anything.
func (c *Controller) Previous() {
	if c.step > 1 {
		c.step--
	}
}

// Submit is only fireable on the last step. It re-runs that step's
// validation and terminates the wizard on success.
func (c *Controller) Submit() (bool, validation.Errors) {
	if c.step != c.total {
		return false, validation.Errors{}
	}
	errs := c.validate(c.step)
	if !errs.Valid() {
		return false, errs
	}
	c.done = true
	c.submitted = true
	return true, errs
}

// ToggleLoginMode switches between the registration stepper and the
// single-step login view. No draft data is reset.
func (c *Controller) ToggleLoginMode() {
	c.loginMode = !c.loginMode
}

// Cancel terminates the wizard; the caller discards the draft.
func (c *Controller) Cancel() {
	c.done = true
}
