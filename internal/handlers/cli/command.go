package cli

import (
	"strings"
)

// CommandHandler defines the interface for terminal command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetUsage returns the one line usage shown by help
	GetUsage() string

	// Handle runs the command with everything typed after its name
	Handle(args string) (string, error)
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Args        string
	Description string
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetUsage returns the one line usage shown by help
func (c *BaseCommand) GetUsage() string {
	usage := c.Name
	if c.Args != "" {
		usage += " " + c.Args
	}
	return usage + " - " + c.Description
}

// funcCommand adapts a function to a CommandHandler
type funcCommand struct {
	BaseCommand
	handle func(args string) (string, error)
}

// Handle runs the wrapped function
func (c *funcCommand) Handle(args string) (string, error) {
	return c.handle(args)
}

// splitCommand separates the command name from its arguments
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	name, args, _ := strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(args)
}
