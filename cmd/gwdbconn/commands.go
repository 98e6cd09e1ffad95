package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeptools/gw-dbconn/conf"
	"github.com/zeptools/gw-dbconn/connector"
	"github.com/zeptools/gw-dbconn/db/sqldb"
)

func newQueryCmd(opts *options) *cobra.Command {
	var allSets bool
	cmd := &cobra.Command{
		Use:   "query SQL [ARG...]",
		Short: "Run a query and print its result",
		Long:  "Run a query and print its result. ARGs bind to `?` placeholders in order.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openConnector(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			conn.SetCommand(args[0])
			if err := bindArgs(conn, args[1:]); err != nil {
				return err
			}
			var tbls []*sqldb.Table
			if allSets {
				tbls, err = conn.ExecuteReaderDataSet(cmd.Context())
			} else {
				var tbl *sqldb.Table
				tbl, err = conn.ExecuteReaderRaw(cmd.Context())
				tbls = []*sqldb.Table{tbl}
			}
			if err != nil {
				return err
			}
			return renderTables(cmd.OutOrStdout(), tbls, opts.format)
		},
	}
	cmd.Flags().BoolVar(&allSets, "all-sets", false, "Print every result set, not only the first")
	return cmd
}

func newExecCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exec SQL [ARG...]",
		Short: "Run a statement and print the number of rows affected",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openConnector(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			conn.SetCommand(args[0])
			if err := bindArgs(conn, args[1:]); err != nil {
				return err
			}
			n, err := conn.ExecuteNonQuery(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d rows affected\n", n)
			return nil
		},
	}
}

func newScalarCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scalar SQL [ARG...]",
		Short: "Print the first column of the first row",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openConnector(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			conn.SetCommand(args[0])
			if err := bindArgs(conn, args[1:]); err != nil {
				return err
			}
			v, err := conn.ExecuteScalar(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatValue(v))
			return nil
		},
	}
}

func newProcCmd(opts *options) *cobra.Command {
	var params []string
	var nonQuery bool
	cmd := &cobra.Command{
		Use:   "proc NAME",
		Short: "Call a stored procedure (mysql, pgsql)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openConnector(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			if err := conn.SetProcedure(args[0]); err != nil {
				return err
			}
			for _, p := range params {
				name, value, ok := strings.Cut(p, "=")
				if !ok || name == "" {
					return fmt.Errorf("invalid --param %q: want name=value", p)
				}
				if err := conn.AddParameter(connector.Param{Name: name, Value: value}); err != nil {
					return err
				}
			}
			if nonQuery {
				n, err := conn.ExecuteNonQuery(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d rows affected\n", n)
				return nil
			}
			tbls, err := conn.ExecuteReaderDataSet(cmd.Context())
			if err != nil {
				return err
			}
			return renderTables(cmd.OutOrStdout(), tbls, opts.format)
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Procedure argument as name=value, in call order")
	cmd.Flags().BoolVar(&nonQuery, "no-rows", false, "Print rows affected instead of result sets")
	return cmd
}

func newCopyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "copy TABLE CSV_FILE",
		Short: "Bulk copy a CSV file with a header row into a table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readCSV(args[1])
			if err != nil {
				return err
			}
			conn, err := openConnector(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			n, err := conn.BulkCopy(cmd.Context(), src, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d rows copied\n", n)
			return nil
		},
	}
}

func newDriversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List the supported database types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			conf.RegisterImpls()
			for _, t := range sqldb.Registered() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
			}
		},
	}
}

// readCSV loads a CSV file into a Table. Empty fields become NULL.
func readCSV(path string) (*sqldb.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}
	tbl := &sqldb.Table{Columns: records[0], Rows: make([][]any, 0, len(records)-1)}
	for _, rec := range records[1:] {
		row := make([]any, len(rec))
		for i, v := range rec {
			if v != "" {
				row[i] = v
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}
