package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	if len(data) <= 1 {
		fmt.Fprintln(writer, pterm.Gray("nothing to show"))
		return
	}

	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("failed to render table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
