package cli

import (
	"errors"
	"fmt"

	"mealweek/internal/keyring"
)

type ConfigSetConnectionCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the OS keyring."`
}

func (c *ConfigSetConnectionCmd) Run(ctx *Context) error {
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("✓ Connection string stored in the OS keyring.")
	fmt.Println("Run mealweek with --config postgres:// (no credentials) to use it.")
	return nil
}

type ConfigClearConnectionCmd struct{}

func (c *ConfigClearConnectionCmd) Run(ctx *Context) error {
	err := keyring.DeleteConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("No connection string stored.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("✓ Connection string removed from the OS keyring.")
	return nil
}
