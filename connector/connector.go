package connector

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/zeptools/gw-dbconn/db/sqldb"
)

var ErrNoCommand = errors.New("connector: no command set")

// Connector runs one configurable command at a time against a sqldb.Client.
// It is not safe for concurrent use.
type Connector struct {
	client sqldb.Client
	cmd    *Command
}

func New(client sqldb.Client) *Connector {
	return &Connector{client: client}
}

// Open builds a client for conf through the registered factories and initializes it.
// The impl for conf.Type must have been registered.
func Open(conf *sqldb.Conf) (*Connector, error) {
	client, err := sqldb.New(conf.Type, conf)
	if err != nil {
		return nil, fmt.Errorf("connector: %w", err)
	}
	if err = client.Init(); err != nil {
		return nil, fmt.Errorf("connector: open %s: %w", conf.Type, err)
	}
	return New(client), nil
}

func (c *Connector) Client() sqldb.Client { return c.client }

// SetProcedure makes the stored procedure name the next command.
// name must be a valid, optionally schema-qualified, identifier.
func (c *Connector) SetProcedure(name string) error {
	if _, err := sqldb.NewColumn(name); err != nil {
		return fmt.Errorf("connector: procedure name: %w", err)
	}
	c.cmd = &Command{Text: name, Type: CommandStoredProcedure}
	return nil
}

// SetCommand makes text the next command. Params bind to `?` placeholders,
// which are renumbered for drivers using `$n`.
func (c *Connector) SetCommand(text string) {
	c.cmd = &Command{Text: text, Type: CommandText}
}

// Command returns the current command, or nil when none is set.
func (c *Connector) Command() *Command { return c.cmd }

func (c *Connector) AddParameter(p Param) error {
	if c.cmd == nil {
		return ErrNoCommand
	}
	if p.Name != "" {
		if _, ok := c.cmd.Lookup(p.Name); ok {
			return fmt.Errorf("connector: parameter %q already added", p.Name)
		}
	}
	c.cmd.Params = append(c.cmd.Params, p)
	return nil
}

// AddParameterValue sets the value of the named param, appending the param when it is new.
func (c *Connector) AddParameterValue(name string, value any) error {
	if c.cmd == nil {
		return ErrNoCommand
	}
	if i, ok := c.cmd.Lookup(name); ok {
		c.cmd.Params[i].Value = value
		return nil
	}
	c.cmd.Params = append(c.cmd.Params, Param{Name: name, Value: value})
	return nil
}

// statement renders the current command for the client's driver.
func (c *Connector) statement() (string, []any, error) {
	if c.cmd == nil {
		return "", nil, ErrNoCommand
	}
	dbType := c.client.GetConf().Type
	switch c.cmd.Type {
	case CommandStoredProcedure:
		proc, err := sqldb.NewColumn(c.cmd.Text)
		if err != nil {
			return "", nil, fmt.Errorf("connector: procedure name: %w", err)
		}
		stmt, err := sqldb.CallStmt(dbType, proc, len(c.cmd.Params))
		if err != nil {
			return "", nil, fmt.Errorf("connector: %w", err)
		}
		return stmt, c.cmd.Args(), nil
	default:
		stmt := sqldb.ReplaceStaticPlaceholders(c.cmd.Text, sqldb.PlaceholderPrefixForDBType[dbType])
		return stmt, c.cmd.Args(), nil
	}
}

func (c *Connector) rows(ctx context.Context) (sqldb.Rows, error) {
	stmt, args, err := c.statement()
	if err != nil {
		return nil, err
	}
	return c.client.GetHandle().QueryRows(ctx, stmt, args...)
}

// ExecuteNonQuery runs the command and returns the number of rows affected.
func (c *Connector) ExecuteNonQuery(ctx context.Context) (int64, error) {
	stmt, args, err := c.statement()
	if err != nil {
		return 0, err
	}
	res, err := c.client.GetHandle().Exec(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ExecuteScalar returns the first column of the first row, or nil when the result is empty.
// Further rows and columns are not read.
func (c *Connector) ExecuteScalar(ctx context.Context) (v any, err error) {
	rows, err := c.rows(ctx)
	if err != nil {
		return nil, err
	}
	cur := sqldb.NewCursor(rows)
	defer func() {
		if cerr := cur.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			v = nil
		}
	}()
	layout, err := cur.Open()
	if err != nil {
		return nil, err
	}
	ok, err := cur.Next()
	if err != nil || !ok || layout.Len() == 0 {
		return nil, err
	}
	return cur.Cell(0), nil
}

// ExecuteReaderRaw returns the first result set as an untyped table.
func (c *Connector) ExecuteReaderRaw(ctx context.Context) (*sqldb.Table, error) {
	rows, err := c.rows(ctx)
	if err != nil {
		return nil, err
	}
	return sqldb.ReadTable(sqldb.NewCursor(rows))
}

// ExecuteReaderDataSet returns every result set of the command.
func (c *Connector) ExecuteReaderDataSet(ctx context.Context) ([]*sqldb.Table, error) {
	rows, err := c.rows(ctx)
	if err != nil {
		return nil, err
	}
	return sqldb.ReadTables(rows)
}

// BulkCopy writes all rows of src into target, matching src columns by name.
// It does not use the current command.
func (c *Connector) BulkCopy(ctx context.Context, src *sqldb.Table, target string) (int64, error) {
	if src == nil {
		return 0, errors.New("connector: nil source table")
	}
	return c.client.GetHandle().CopyFrom(ctx, target, src.Columns, src.Rows)
}

func (c *Connector) Close() error {
	dbType := c.client.GetConf().Type
	if err := c.client.Close(); err != nil {
		log.Printf("[ERROR][%s] Failed to close connector: %v", dbType, err)
		return err
	}
	log.Printf("[INFO][%s] connector closed", dbType)
	return nil
}
