package commands

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrConfigureServiceAreaCommandIsNotConstructed = errors.New(
	"ConfigureServiceAreaCommand must be created via NewConfigureServiceAreaCommand constructor",
)

// ConfigureServiceAreaCommand represents an operator's request to set the
// service area new jobs are admitted against.
type ConfigureServiceAreaCommand struct { //nolint:recvcheck //using for validation
	area kernel.ServiceArea

	guard guard.ConstructorGuard
}

// NewConfigureServiceAreaCommand creates a command to configure the service area.
func NewConfigureServiceAreaCommand(area kernel.ServiceArea) (ConfigureServiceAreaCommand, error) {
	areaCommand := ConfigureServiceAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := areaCommand.setArea(area); err != nil {
		return ConfigureServiceAreaCommand{}, err
	}

	return areaCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfigureServiceAreaCommand) Validate() error {
	return c.guard.Validate(ErrConfigureServiceAreaCommandIsNotConstructed)
}

// Area returns the service area to store.
func (c ConfigureServiceAreaCommand) Area() kernel.ServiceArea {
	return c.area
}

func (c *ConfigureServiceAreaCommand) setArea(area kernel.ServiceArea) error {
	if err := area.Validate(); err != nil {
		return err
	}

	c.area = area
	return nil
}
