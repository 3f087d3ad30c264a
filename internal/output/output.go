// Package output renders statement results for the terminal.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/joeandaverde/tinydbc/client"
)

// Output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

// ValidateFormat reports whether format is one Rows understands.
func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatCSV:
		return nil
	}
	return fmt.Errorf("invalid format %q", format)
}

// Rows writes every remaining row of rs to w. The cursor of rs is left
// after the last row.
func Rows(w io.Writer, format string, rs *client.ResultSet) error {
	header := rs.Columns()

	var data [][]string
	for rs.Next() {
		values, err := rs.Values()
		if err != nil {
			return err
		}

		row := make([]string, 0, len(values))
		for _, v := range values {
			row = append(row, formatValue(v))
		}
		data = append(data, row)
	}

	switch format {
	case FormatTable:
		table := tablewriter.NewWriter(w)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.SetHeader(header)
		table.AppendBulk(data)
		table.Render()
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		if err := cw.WriteAll(data); err != nil {
			return err
		}
		return cw.Error()
	default:
		return ValidateFormat(format)
	}

	return nil
}

// RowsAffected writes the update count of a mutation.
func RowsAffected(w io.Writer, n int64) error {
	_, err := fmt.Fprintf(w, "Rows affected: %d\n", n)
	return err
}

// Batch writes one line per batch entry with its outcome.
func Batch(w io.Writer, commands []string, outcomes []int64) error {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"#", "Command", "Outcome"})

	for i, outcome := range outcomes {
		command := ""
		if i < len(commands) {
			command = commands[i]
		}
		table.Append([]string{strconv.Itoa(i + 1), command, Outcome(outcome)})
	}

	table.Render()
	return nil
}

// Outcome names a batch outcome.
func Outcome(n int64) string {
	switch n {
	case client.SuccessNoInfo:
		return "SUCCESS_NO_INFO"
	case client.ExecuteFailed:
		return "EXECUTE_FAILED"
	}
	return strconv.FormatInt(n, 10)
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	case string:
		return v
	}
	return fmt.Sprintf("%v", v)
}
