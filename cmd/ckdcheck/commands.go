package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"
	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/services"
	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
)

const defaultPredictURL = "http://127.0.0.1:9000/predict"

type rootOptions struct {
	v       *viper.Viper
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}
	opts.v.SetDefault("PREDICT_URL", defaultPredictURL)
	opts.v.SetDefault("PREDICT_TIMEOUT", "10s")
	opts.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "ckdcheck",
		Short:         "Check lab values against the CKD prediction service",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			utils.SetupLogger("development", level)
		},
	}

	root.PersistentFlags().String("url", defaultPredictURL, "prediction endpoint (env PREDICT_URL)")
	root.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout (env PREDICT_TIMEOUT)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")
	_ = opts.v.BindPFlag("PREDICT_URL", root.PersistentFlags().Lookup("url"))
	_ = opts.v.BindPFlag("PREDICT_TIMEOUT", root.PersistentFlags().Lookup("timeout"))

	root.AddCommand(newPredictCmd(opts), newTestCaseCmd(opts), newFieldsCmd())
	return root
}

func (o *rootOptions) service() *services.SymptomService {
	url := o.v.GetString("PREDICT_URL")
	timeout := o.v.GetDuration("PREDICT_TIMEOUT")
	log.WithFields(log.Fields{"url": url, "timeout": timeout}).Debug("using prediction endpoint")
	return services.NewSymptomService(services.NewHTTPPredictor(url, timeout), timeout, time.Minute, nil, nil)
}

func newPredictCmd(opts *rootOptions) *cobra.Command {
	values := make(map[string]*string)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Validate the given lab values and request a prediction",
		Example: "  ckdcheck predict --age 45 --bp 120 --sg 1.02 --bgr 90 --bu 15 --sc 1.0 \\\n" +
			"    --sod 140 --pot 4.5 --hemo 16 --pcv 48 --wbcc 8000 --rbcc 5",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := make(map[string]string)
			for key, v := range values {
				if cmd.Flags().Changed(key) {
					input[key] = *v
				}
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), opts.service(), input)
		},
	}
	for _, fs := range models.Fields() {
		key := string(fs.Key)
		values[key] = cmd.Flags().String(key, "", fmt.Sprintf("%s [%s..%s]", fs.Label,
			strconv.FormatFloat(fs.Min, 'f', -1, 64), strconv.FormatFloat(fs.Max, 'f', -1, 64)))
	}
	return cmd
}

func newTestCaseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "testcase <1|2>",
		Short:     "Run one of the reference cases (1 = CKD-like, 2 = non-CKD-like)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"1", "2"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid test case %q", args[0])
			}
			for _, tc := range models.SampleCases() {
				if tc.ID == id {
					fmt.Fprintf(cmd.OutOrStdout(), "Test case %d (%s)\n", tc.ID, tc.Description)
					return runCheck(cmd.Context(), cmd.OutOrStdout(), opts.service(), tc.Values)
				}
			}
			return fmt.Errorf("unknown test case %d", id)
		},
	}
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Print the accepted fields and their ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFields(cmd.OutOrStdout())
		},
	}
}

func runCheck(ctx context.Context, out io.Writer, svc *services.SymptomService, values map[string]string) error {
	sub, err := svc.Check(ctx, values)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, sub.Outcome.Message)
	fmt.Fprintf(out, "Prediction: %s\n", sub.Outcome.Result.Prediction)
	fmt.Fprintf(out, "Timestamp:  %s\n", sub.Outcome.Result.Timestamp)
	if p := sub.Outcome.Result.Probability; p != nil {
		fmt.Fprintf(out, "Probability: %.3f\n", *p)
	}
	return nil
}

func printFields(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tLABEL\tMIN\tMAX\tGROUP")
	for _, fs := range models.Fields() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", fs.Key, fs.Label,
			strconv.FormatFloat(fs.Min, 'f', -1, 64), strconv.FormatFloat(fs.Max, 'f', -1, 64), fs.Group)
	}
	return tw.Flush()
}
