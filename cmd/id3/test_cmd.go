package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	treeInput string
	rootID    string
	dataInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test data set`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := config.Context()
			testSet, err := config.readDataset(ctx, config.dataInput)
			if err != nil {
				config.exit(fmt.Errorf("reading test set: %v", err), exitTestInput)
			}
			t, err := config.loadTree(ctx, config.treeInput, config.rootID, testSet.Features(), testSet.Class())
			if err != nil {
				config.exit(err, exitValidation)
			}
			evaluation, err := t.Test(ctx, testSet.Instances())
			if err != nil {
				config.exit(fmt.Errorf("testing tree: %v", err), exitClassification)
			}
			_, err = evaluation.WriteTo(os.Stdout)
			if err != nil {
				config.exit(fmt.Errorf("writing test results: %v", err), exitOutput)
			}
			config.Logf("Accuracy: %f", evaluation.Accuracy())
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to test will be read and parsed as JSON")
	cmd.Flags().StringVar(&(config.rootID), "root-id", "", "ID of the root node of a tree stored on redis, to test it instead of one in a file")
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input ARFF, CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to test the tree (defaults to STDIN)")
	return cmd
}
