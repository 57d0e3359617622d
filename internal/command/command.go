// Package command wires the sift CLI: a k-nearest-neighbors classifier over
// CSV data with two operations, predict and search.
package command

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sift/internal/logging"
	"sift/internal/runenv"
	"sift/internal/setup"
	"sift/internal/sift"
)

// Execute loads the configuration, builds the run environment and runs the
// requested subcommand.
func Execute(ctx context.Context) error {
	config := sift.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}

	logger := logging.NewLogger(config.Verbose)
	defer func() { _ = logger.Sync() }()
	ctx = logging.WithLogger(ctx, logger)

	return newRootCmd(&config, env).ExecuteContext(ctx)
}

func newRootCmd(config *sift.Config, env *runenv.Env) *cobra.Command {
	root := &cobra.Command{
		Use:   "sift",
		Short: "k-nearest-neighbors classification over csv data",
		Long: `sift loads a csv file of labeled records and either predicts the label
distribution for a novel datapoint or greedily searches for the column
subset that maximizes held-out classification accuracy.

Columns are selected by header name or zero-based index. All selected
columns must contain numeric data.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newPredictCmd(config, env),
		newSearchCmd(config, env),
		newVersionCmd(),
	)
	return root
}

// fileArgs holds the csv input flags shared by both subcommands.
type fileArgs struct {
	file     string
	noHeader bool
	columns  []string
	label    string
}

func (a *fileArgs) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.file, "file", "f", "", "path to the csv file to load")
	cmd.Flags().BoolVar(&a.noHeader, "no-header", false, "indicates that the csv contains no header row")
	cmd.Flags().StringArrayVarP(&a.columns, "col", "c", nil, "column to use as a datapoint, by header name or zero-based index (repeatable)")
	cmd.Flags().StringVar(&a.label, "label", "", "column to use as the label")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("label")
}

func parseDatapoint(given string) ([]float64, error) {
	parts := strings.Split(given, ",")
	datapoint := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse datapoint: %q", part)
		}
		datapoint = append(datapoint, value)
	}
	return datapoint, nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("the requested csv file was not found: %s", path)
		}
		return nil, fmt.Errorf("failed to load csv file: %w", err)
	}
	return f, nil
}
