package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/dataset/inputsample"
	"github.com/pbanos/id3/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	treeInput   string
	rootID      string
	schemaInput string
}

type stdoutFeatureValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of a sample answering questions",
		Long:  `Use the loaded tree to predict the class label for a sample answering a reduced set of questions about its features`,
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
			sample := inputsample.New(os.Stdin, stdoutFeatureValueRequester{})
			label, err := t.Classify(ctx, sample)
			if err != nil {
				config.exit(fmt.Errorf("predicting: %v", err), exitClassification)
			}
			fmt.Printf("Predicted %s is %s\n", class.Name(), label)
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to use will be read and parsed as JSON")
	cmd.Flags().StringVar(&(config.rootID), "root-id", "", "ID of the root node of a tree stored on redis, to use it instead of one in a file")
	cmd.Flags().StringVarP(&(config.schemaInput), "input", "i", "", "path to an ARFF file describing the features of the tree, when no metadata is given")
	return cmd
}

func (stdoutFeatureValueRequester) RequestValueFor(f feature.Feature) error {
	switch f := f.(type) {
	case *feature.NominalFeature:
		fmt.Printf("Please provide the sample's %s:\n(valid values are %v)\n", f.Name(), f.AvailableValues())
	case *feature.ContinuousFeature:
		fmt.Printf("Please provide the sample's %s:\n(valid values are real numbers)\n", f.Name())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}

func (stdoutFeatureValueRequester) RejectValueFor(f feature.Feature, value string) error {
	switch f := f.(type) {
	case *feature.NominalFeature:
		fmt.Printf("%s is not a valid value for the sample's %s. Please provide one of %v.\n", value, f.Name(), f.AvailableValues())
	case *feature.ContinuousFeature:
		fmt.Printf("%s is not a valid value for the sample's %s. Please provide a real number.\n", value, f.Name())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}
