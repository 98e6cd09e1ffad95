package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/zeptools/gw-dbconn/db/sqldb"
)

func renderTables(w io.Writer, tbls []*sqldb.Table, format string) error {
	if format == "json" {
		return renderJSON(w, tbls)
	}
	for i, tbl := range tbls {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		if err := renderTable(w, tbl, format); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, tbl *sqldb.Table, format string) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(tbl.Columns))
	for i, col := range tbl.Columns {
		header[i] = col
	}
	t.AppendHeader(header)
	for _, r := range tbl.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = formatValue(v)
		}
		t.AppendRow(row)
	}

	switch format {
	case "table", "":
		t.Render()
		_, _ = fmt.Fprintf(w, "(%d rows)\n", len(tbl.Rows))
	case "csv":
		t.RenderCSV()
	case "md", "markdown":
		t.RenderMarkdown()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func renderJSON(w io.Writer, tbls []*sqldb.Table) error {
	sets := make([][]map[string]any, len(tbls))
	for i, tbl := range tbls {
		records := make([]map[string]any, len(tbl.Rows))
		for j, r := range tbl.Rows {
			rec := make(map[string]any, len(tbl.Columns))
			for k, col := range tbl.Columns {
				v := r[k]
				if b, ok := v.([]byte); ok {
					v = string(b)
				}
				rec[col] = v
			}
			records[j] = rec
		}
		sets[i] = records
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(sets) == 1 {
		return enc.Encode(sets[0])
	}
	return enc.Encode(sets)
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return sqldb.CellText(v)
}
