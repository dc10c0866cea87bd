package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/pbanos/id3"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitValidation = iota + 1
	exitTrainingInput
	exitTestInput
	exitGrowing
	exitOutput
	exitClassification
)

type rootCmdConfig struct {
	verbose        bool
	metadataInput  string
	table          string
	maxDepth       int
	profileMode    string
	redisAddr      string
	redisPassword  string
	redisDB        int
	redisPrefix    string
	ctx            context.Context
	cancelFunc     context.CancelFunc
	profileStopper interface{ Stop() }
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(exitValidation)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "id3 TRAINING_SET TEST_SET MIN_INSTANCES",
		Short: "id3 is a tool to grow binary classification trees",
		Long: `A tool to grow binary classification trees with the ID3 algorithm from your data, test them, and use them to make predictions.

Run with a training set, a test set and the minimum number of instances a node needs to be split, it grows a tree from the training set, prints it and then the classification of every instance in the test set.`,
		Args: cobra.ExactArgs(3),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.startProfile()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.stopProfile()
		},
		Run: func(cmd *cobra.Command, args []string) {
			minInstances, err := strconv.Atoi(args[2])
			if err != nil {
				config.exit(fmt.Errorf("parsing minimum number of instances %q: %v", args[2], err), exitValidation)
			}
			ctx := config.Context()
			trainingSet, err := config.readDataset(ctx, args[0])
			if err != nil {
				config.exit(fmt.Errorf("reading training set: %v", err), exitTrainingInput)
			}
			testSet, err := config.readTestSet(ctx, args[1], trainingSet.Features())
			if err != nil {
				config.exit(fmt.Errorf("reading test set: %v", err), exitTestInput)
			}
			ps := &id3.PruningStrategy{MinInstances: minInstances, MaxDepth: config.maxDepth}
			t, err := config.grow(ctx, trainingSet, ps)
			if err != nil {
				config.exit(err, exitGrowing)
			}
			err = t.Print(ctx, os.Stdout)
			if err != nil {
				config.exit(fmt.Errorf("printing tree: %v", err), exitOutput)
			}
			evaluation, err := t.Test(ctx, testSet.Instances())
			if err != nil {
				config.exit(fmt.Errorf("testing tree: %v", err), exitClassification)
			}
			_, err = evaluation.WriteTo(os.Stdout)
			if err != nil {
				config.exit(fmt.Errorf("writing test results: %v", err), exitOutput)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress on STDERR")
	rootCmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features and class of CSV, SQL and MongoDB inputs (ARFF files describe their own)")
	rootCmd.PersistentFlags().StringVar(&(config.table), "table", "instances", "name of the SQL table or MongoDB collection holding instances")
	rootCmd.PersistentFlags().IntVar(&(config.maxDepth), "max-depth", 0, "level at which nodes become leaves (defaults to 0: no limit)")
	rootCmd.PersistentFlags().StringVar(&(config.profileMode), "profile", "", "write a cpu or mem profile onto the working directory")
	rootCmd.PersistentFlags().StringVar(&(config.redisAddr), "redis-addr", "", "address of a redis server on which to store tree nodes instead of memory")
	rootCmd.PersistentFlags().StringVar(&(config.redisPassword), "redis-password", "", "password for the redis server")
	rootCmd.PersistentFlags().IntVar(&(config.redisDB), "redis-db", 0, "redis database on which to store tree nodes")
	rootCmd.PersistentFlags().StringVar(&(config.redisPrefix), "redis-prefix", "id3", "prefix for the redis keys of tree nodes")
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), treeCmd(config), predictCmd(config), setCmd(config))
	return rootCmd
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	logger(rcc.verbose).Logf(format, a...)
}

/*
Context returns a context for the command to run that is cancelled when the
process receives an interrupt signal.
*/
func (rcc *rootCmdConfig) Context() context.Context {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = context.WithCancel(context.Background())
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)
		go func() {
			<-signals
			rcc.Logf("Interrupted, cancelling...")
			rcc.cancelFunc()
		}()
	}
	return rcc.ctx
}

func (rcc *rootCmdConfig) startProfile() error {
	switch rcc.profileMode {
	case "":
		return nil
	case "cpu":
		rcc.profileStopper = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		rcc.profileStopper = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		return fmt.Errorf("unknown profile %q, valid are cpu and mem", rcc.profileMode)
	}
	rcc.Logf("Writing %s profile onto the working directory", rcc.profileMode)
	return nil
}

func (rcc *rootCmdConfig) stopProfile() {
	if rcc.profileStopper != nil {
		rcc.profileStopper.Stop()
		rcc.profileStopper = nil
	}
}

func (rcc *rootCmdConfig) exit(err error, code int) {
	rcc.stopProfile()
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
}
