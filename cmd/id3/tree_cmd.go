package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	treeInput   string
	rootID      string
	schemaInput string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print a tree",
		Long:  `Print a tree, a line per branch with the class counts of the training instances that reached it`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := config.Context()
			features, class, err := config.schema(ctx, config.schemaInput)
			if err != nil {
				config.exit(err, exitTrainingInput)
			}
			t, err := config.loadTree(ctx, config.treeInput, config.rootID, features, class)
			if err != nil {
				config.exit(err, exitValidation)
			}
			err = t.Print(ctx, os.Stdout)
			if err != nil {
				config.exit(fmt.Errorf("printing tree: %v", err), exitOutput)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to show will be read and parsed as JSON")
	cmd.Flags().StringVar(&(config.rootID), "root-id", "", "ID of the root node of a tree stored on redis, to show it instead of one in a file")
	cmd.Flags().StringVarP(&(config.schemaInput), "input", "i", "", "path to an ARFF file describing the features of the tree, when no metadata is given")
	return cmd
}
