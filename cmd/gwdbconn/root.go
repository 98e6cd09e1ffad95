package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/zeptools/gw-dbconn/conf"
	"github.com/zeptools/gw-dbconn/connector"
)

var Version = "0.1.0"

type options struct {
	cfgFile string
	format  string
	verbose bool
}

func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "gwdbconn",
		Short:         "Run SQL commands and stored procedures against configured databases",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !opts.verbose {
				log.SetOutput(io.Discard)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.cfgFile, "config", "c", "", "YAML config file")
	pf.StringVarP(&opts.format, "format", "f", "table", "Output format: table, csv, markdown, json")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log client lifecycle to stderr")
	pf.String("db", "", "Database name in the config (default from config)")
	pf.String("type", "", "Database type: mysql, pgsql, sqlite, duckdb")
	pf.String("dsn", "", "Driver DSN, overrides the other connection flags")
	pf.String("host", "", "Database host")
	pf.Int("port", 0, "Database port")
	pf.String("user", "", "Database user")
	pf.String("pw", "", "Database password")
	pf.String("name", "", "Database name, or file path for sqlite and duckdb")
	pf.String("tz", "", "Connection time zone")

	rootCmd.AddCommand(
		newQueryCmd(opts),
		newExecCmd(opts),
		newScalarCmd(opts),
		newProcCmd(opts),
		newCopyCmd(opts),
		newDriversCmd(),
	)
	return rootCmd
}

// openConnector loads the config and connects to the selected database.
func openConnector(cmd *cobra.Command, opts *options) (*connector.Connector, error) {
	flags := cmd.Root().PersistentFlags()
	c, err := conf.Load(opts.cfgFile, flags)
	if err != nil {
		return nil, err
	}
	if len(c.Databases) == 0 {
		return nil, fmt.Errorf("no database configured: use --config or --type")
	}
	dbConf, err := c.Database("")
	if err != nil {
		return nil, err
	}
	conf.RegisterImpls()
	return connector.Open(dbConf)
}

// bindArgs adds positional args as params named by their position.
func bindArgs(conn *connector.Connector, args []string) error {
	for i, a := range args {
		if err := conn.AddParameterValue(fmt.Sprintf("p%d", i+1), a); err != nil {
			return err
		}
	}
	return nil
}
