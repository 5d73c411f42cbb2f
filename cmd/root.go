package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/cubesql/cubesql/browser"
	"github.com/cubesql/cubesql/config"
)

var (
	cubePath  string
	drilldown []string
	coalesce  bool
)

var rootCmd = &cobra.Command{
	Use:   "cubesql [aggregates...]",
	Short: "Generate SQL aggregation statements from a cube model",
	Example: `cubesql --cube sales.yaml total_revenue record_count
cubesql --cube sales.yaml --drilldown region --coalesce`,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cube, err := config.ReadCubeConfig(cubePath)
		if err != nil {
			return fmt.Errorf("couldn't read cube model: %w", err)
		}

		sql, sqlArgs, err := browser.NewBrowser(cube).AggregationSQL(args, drilldown, coalesce)
		if err != nil {
			return fmt.Errorf("couldn't build aggregation statement: %w", err)
		}

		fmt.Println(sql)
		for i, arg := range sqlArgs {
			fmt.Printf("-- $%d = %v\n", i+1, arg)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cubePath, "cube", "c", "cube.yaml", "path to the yaml cube model")
	rootCmd.Flags().StringSliceVar(&drilldown, "drilldown", nil, "dimensions to group by")
	rootCmd.Flags().BoolVar(&coalesce, "coalesce", false, "coalesce NULLs to the configured missing values")
	rootCmd.AddCommand(functionsCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
