package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cubesql/cubesql/aggregates"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the available aggregate functions",
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"name", "requires measure", "coalesces"})
		table.SetAutoFormatHeaders(false)
		table.SetRowLine(false)

		for _, name := range aggregates.AvailableAggregateFunctions() {
			function, err := aggregates.GetAggregateFunction(name)
			if err != nil {
				continue
			}
			requires := "no"
			if function.RequiresMeasure() {
				requires = "yes"
			}
			table.Append([]string{function.Name(), requires, function.Coalesce().String()})
		}
		table.Render()
	},
}
