package command

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"sift/internal/csvutil"
	"sift/internal/dataset"
	"sift/internal/krange"
	"sift/internal/predict"
	"sift/internal/runenv"
	"sift/internal/sift"
)

func newPredictCmd(config *sift.Config, env *runenv.Env) *cobra.Command {
	var (
		args      fileArgs
		kSpec     string
		algo      string
		datapoint string
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Estimate the label distribution for a datapoint",
		Long: `Classify a comma-delimited datapoint against the csv records for every k
the k specification yields, reporting each label with its neighbor count
and share of the effective k.

Examples:
  sift predict -f iris.csv -c sepal_length -c sepal_width --label species --datapoint 5.1,3.5
  sift predict -f points.csv --no-header -c 0 -c 1 --label 2 --datapoint 1.5,1.0 -k 2-5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPredict(cmd, env, &args, kSpec, algo, datapoint)
		},
	}

	args.register(cmd)
	cmd.Flags().StringVarP(&kSpec, "k", "k", config.Predict.K, "number of neighbors to lookup: a value, a range low-high or a range with step low-high,step")
	cmd.Flags().StringVar(&algo, "algo", config.Predict.Algo, "distance algorithm: euclidean or manhattan")
	cmd.Flags().StringVar(&datapoint, "datapoint", "", "comma-delimited list of numbers to estimate the group for")
	_ = cmd.MarkFlagRequired("datapoint")

	return cmd
}

func runPredict(cmd *cobra.Command, env *runenv.Env, args *fileArgs, kSpec, algo, datapoint string) error {
	if len(args.columns) == 0 {
		return fmt.Errorf("no columns specified to pull numeric data from")
	}

	kr, err := krange.Parse(kSpec)
	if err != nil {
		return fmt.Errorf("malformed k specification: %w", err)
	}
	distFn, err := env.ProvideDistance()(algo)
	if err != nil {
		return err
	}
	query, err := parseDatapoint(datapoint)
	if err != nil {
		return err
	}

	f, err := openFile(args.file)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csvutil.NewReader(bufio.NewReader(f), !args.noHeader)
	label, columns, err := reader.ResolveColumns(csvutil.ParseColumn(args.label), csvutil.ParseColumns(args.columns))
	if err != nil {
		return err
	}
	if len(query) != len(columns) {
		return fmt.Errorf("number of datapoints does not match number of columns")
	}

	records, err := reader.Collect(label, columns)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records found in the csv file")
	}

	results, err := predict.Predict(dataset.NewView(records), distFn, kr, query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, result := range results {
		fmt.Fprintf(out, "k value: %d |", result.K)
		for _, v := range query {
			fmt.Fprintf(out, " %v", v)
		}
		fmt.Fprintln(out)
		for _, share := range result.Shares {
			fmt.Fprintf(out, "  %s: %d %.2f\n", share.Label, share.Count, share.Share)
		}
	}
	return nil
}
