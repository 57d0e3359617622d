package command

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sift/internal/csvutil"
	"sift/internal/krange"
	"sift/internal/runenv"
	"sift/internal/search"
	"sift/internal/sift"
)

func newSearchCmd(config *sift.Config, env *runenv.Env) *cobra.Command {
	var (
		args         fileArgs
		kSpec        string
		algo         string
		testFraction float64
		topResults   int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Greedy forward feature search over the csv columns",
		Long: `Search for the column subset that maximizes classification accuracy on a
held-out test split. At each step every remaining column is tried as an
addition to the current selection and the best scoring one is committed,
repeated until no columns remain, for every k the k specification yields.

Examples:
  sift search -f iris.csv -c 0 -c 1 -c 2 -c 3 --label species
  sift search -f iris.csv -c 0 -c 1 --label 4 -k 2-10,2 --test 0.3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, env, &args, kSpec, algo, testFraction, topResults)
		},
	}

	args.register(cmd)
	cmd.Flags().StringVarP(&kSpec, "k", "k", config.Search.K, "number of neighbors to lookup: a value, a range low-high or a range with step low-high,step")
	cmd.Flags().StringVar(&algo, "algo", config.Search.Algo, "distance algorithm: euclidean or manhattan")
	cmd.Flags().Float64Var(&testFraction, "test", config.Search.TestFraction, "fraction of each label group to hold out for scoring")
	cmd.Flags().IntVar(&topResults, "top", config.Search.TopResults, "number of best configurations to summarize, 0 disables the summary")

	return cmd
}

func runSearch(cmd *cobra.Command, env *runenv.Env, args *fileArgs, kSpec, algo string, testFraction float64, topResults int) error {
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
	records, err := reader.Collect(label, columns)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records found in the csv file")
	}

	out := cmd.OutOrStdout()
	var lastK int
	engine, err := env.ProvideSearchEngine()(distFn,
		search.WithTestFraction(testFraction),
		search.WithObserver(func(step search.Step) {
			if step.K != lastK {
				fmt.Fprintf(out, "k: %d\n", step.K)
				lastK = step.K
			}
			fmt.Fprint(out, "       ")
			for _, col := range step.Selected {
				fmt.Fprintf(out, " %d", col)
			}
			fmt.Fprintf(out, " %d | passed: %d %.2f failed: %d unknown: %d\n",
				step.Trial, step.Passed, step.Accuracy, step.Failed, step.Unknown)
		}),
	)
	if err != nil {
		return err
	}

	results, err := engine.Search(cmd.Context(), records, columns, kr)
	if err != nil {
		return err
	}

	for _, result := range results {
		printResult(out, result)
	}
	if topResults > 0 && len(results) > 0 {
		fmt.Fprintln(out, "top configurations:")
		for _, result := range search.Top(results, topResults) {
			fmt.Fprint(out, "  ")
			printResult(out, result)
		}
	}
	return nil
}

func printResult(out io.Writer, result search.Result) {
	fmt.Fprintf(out, "k %d %% %.2f cols:", result.K, result.Percent)
	for _, col := range result.Columns {
		fmt.Fprintf(out, " %d", col)
	}
	fmt.Fprintln(out)
}
