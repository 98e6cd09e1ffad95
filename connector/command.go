package connector

import "fmt"

type CommandType uint8

const (
	CommandText            CommandType = iota // raw SQL with `?` placeholders
	CommandStoredProcedure                    // procedure name, invoked with its params in order
)

func (t CommandType) String() string {
	switch t {
	case CommandText:
		return "text"
	case CommandStoredProcedure:
		return "stored procedure"
	}
	return fmt.Sprintf("CommandType(%d)", uint8(t))
}

// Param is a command argument. Params bind positionally, in the order they were added;
// Name only identifies the param for AddParameterValue.
type Param struct {
	Name  string
	Value any
}

// Command is the statement a Connector executes next.
type Command struct {
	Text   string
	Type   CommandType
	Params []Param
}

// Args returns the param values in binding order.
func (c *Command) Args() []any {
	args := make([]any, len(c.Params))
	for i, p := range c.Params {
		args[i] = p.Value
	}
	return args
}

// Lookup returns the index of the named param.
func (c *Command) Lookup(name string) (int, bool) {
	for i, p := range c.Params {
		if p.Name == name {
			return i, true
		}
	}
	return -1, false
}
