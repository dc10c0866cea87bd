package main

import (
	"fmt"

	"github.com/pbanos/id3"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput    string
	output       string
	minInstances int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict its class and write it in JSON format.`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := config.Context()
			trainingSet, err := config.readDataset(ctx, config.dataInput)
			if err != nil {
				config.exit(fmt.Errorf("reading training set: %v", err), exitTrainingInput)
			}
			ps := &id3.PruningStrategy{MinInstances: config.minInstances, MaxDepth: config.maxDepth}
			t, err := config.grow(ctx, trainingSet, ps)
			if err != nil {
				config.exit(err, exitGrowing)
			}
			if config.redisAddr != "" {
				config.Logf("Tree stored on redis with root node %s", t.RootID)
			}
			config.Logf("%v", t)
			err = outputTree(ctx, config.output, t, trainingSet.Features())
			if err != nil {
				config.exit(fmt.Errorf("writing tree: %v", err), exitOutput)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input ARFF, CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written in JSON format (defaults to STDOUT)")
	cmd.Flags().IntVar(&(config.minInstances), "min-instances", id3.DefaultMinInstances, "minimum number of instances a node needs to be split")
	return cmd
}
