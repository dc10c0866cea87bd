package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput  string
	setOutput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy sets of data",
		Long:  `Copy a set of data from an ARFF, CSV, SQLite3, PostgreSQL or MongoDB input onto a CSV, SQLite3, PostgreSQL or MongoDB output`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := config.Context()
			d, err := config.readDataset(ctx, config.setInput)
			if err != nil {
				config.exit(fmt.Errorf("reading set: %v", err), exitTrainingInput)
			}
			err = config.writeDataset(ctx, config.setOutput, d)
			if err != nil {
				config.exit(fmt.Errorf("writing set: %v", err), exitOutput)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", "path to an input ARFF, CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the set (defaults to STDIN)")
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to an output CSV or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL onto which to write the set (defaults to STDOUT as CSV)")
	return cmd
}
