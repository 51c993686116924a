package commands

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var ErrAdvanceDeliveriesCommandIsNotConstructed = errors.New(
	"AdvanceDeliveriesCommand must be created via NewAdvanceDeliveriesCommand constructor",
)

// AdvanceDeliveriesCommand represents a request to advance all in-flight
// orders along the fulfillment path according to their age. Issued
// periodically by the delivery progression job; carries no parameters.
type AdvanceDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceDeliveriesCommand creates a command to advance in-flight deliveries.
func NewAdvanceDeliveriesCommand() (AdvanceDeliveriesCommand, error) {
	return AdvanceDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveriesCommandIsNotConstructed)
}
