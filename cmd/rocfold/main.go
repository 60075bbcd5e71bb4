package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"rocfold/adapters/excel"
	"rocfold/adapters/render"
	"rocfold/adapters/svm"
	"rocfold/app"
	"rocfold/domain/evaluation"
	"rocfold/internal/config"
	"rocfold/ui"
)

const description = `Receiver operating characteristic (ROC) with cross validation.

Trains a linear support vector classifier on a two-class subset of the
bundled iris dataset augmented with noise features, evaluates it with
stratified k-fold cross validation, and draws one ROC curve per fold plus
the fold-averaged mean curve with area-under-curve annotations.`

func main() {
	// Optional .env for local runs; absence is not an error.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "rocfold",
		Short: "Cross-validated ROC evaluation of a linear SVM",
		Long:  description,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newServeCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// registerEvalFlags adds the flags shared by every subcommand. Flag values
// override the environment configuration only when explicitly set.
func registerEvalFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("seed", 0, "Base random seed for noise generation and training")
	cmd.Flags().Int("folds", 6, "Number of stratified cross-validation folds")
	cmd.Flags().Int("noise-per-feature", 200, "Noise columns appended per original feature")
	cmd.Flags().Bool("parallel", false, "Evaluate folds concurrently")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Evaluation.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("folds") {
		cfg.Evaluation.Folds, _ = cmd.Flags().GetInt("folds")
	}
	if cmd.Flags().Changed("noise-per-feature") {
		cfg.Evaluation.NoisePerFeature, _ = cmd.Flags().GetInt("noise-per-feature")
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Evaluation.Parallel, _ = cmd.Flags().GetBool("parallel")
	}
	return cfg, nil
}

func runPipeline(cmd *cobra.Command) (*evaluation.Report, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	classifier := svm.NewLinearSVC(svm.Config{
		C:       cfg.Classifier.C,
		Tol:     cfg.Classifier.Tol,
		MaxIter: cfg.Classifier.MaxIter,
		Seed:    cfg.Evaluation.Seed,
	})

	report, err := app.NewPipeline(cfg.Evaluation, classifier).Run(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return report, cfg, nil
}

func printSummary(report *evaluation.Report) {
	for _, fold := range report.FoldResults {
		fmt.Println(fold.Label())
	}
	fmt.Println(report.Mean.Label())
	fmt.Printf("fold areas: mean %0.3f, std dev %0.3f\n", report.MeanAUC, report.StdDevAUC)
}

func newRunCmd() *cobra.Command {
	var figurePath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the evaluation and capture the figure to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(description)

			report, cfg, err := runPipeline(cmd)
			if err != nil {
				return err
			}
			printSummary(report)

			if figurePath == "" {
				figurePath = cfg.Output.FigurePath
			}
			png, err := render.NewChartRenderer().Render(report)
			if err != nil {
				return err
			}
			if err := os.WriteFile(figurePath, png, 0o644); err != nil {
				return fmt.Errorf("failed to write figure: %w", err)
			}
			fmt.Printf("wrote %s\n", figurePath)
			return nil
		},
	}

	registerEvalFlags(cmd)
	cmd.Flags().StringVar(&figurePath, "out", "", "Figure output path (default from ROCFOLD_FIGURE)")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the evaluation and serve the figure over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, cfg, err := runPipeline(cmd)
			if err != nil {
				return err
			}
			printSummary(report)

			server := ui.NewServer(report, render.NewChartRenderer(), render.DefaultTitle, cfg.Server.GinMode)
			fmt.Printf("serving figure on :%s\n", cfg.Server.Port)
			return server.Run(cfg.Server.Port)
		},
	}

	registerEvalFlags(cmd)
	return cmd
}

func newExportCmd() *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run the evaluation and export the report as an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, cfg, err := runPipeline(cmd)
			if err != nil {
				return err
			}
			printSummary(report)

			if reportPath == "" {
				reportPath = cfg.Output.ReportPath
			}
			if err := excel.NewReportWriter().Export(report, reportPath); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", reportPath)
			return nil
		},
	}

	registerEvalFlags(cmd)
	cmd.Flags().StringVar(&reportPath, "out", "", "Report output path (default from ROCFOLD_REPORT)")
	return cmd
}
