package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/olsdiag/regression"
)

// highLeverageFactor times the mean leverage p/n flags a point, p being the
// number of coefficients.
const highLeverageFactor = 2

func newFitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fit",
		Short: "Fit the dataset and print per-point diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.loadDataset()
			if err != nil {
				return err
			}

			sample := ds.Sample()
			model, err := regression.FitSample(sample)
			if err != nil {
				return fmt.Errorf("fit %s: %w", ds, err)
			}
			summary, err := model.Summarize(sample.X, sample.Y)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dataset: %s\n", ds)
			fmt.Fprintf(out, "Model:   %s\n", model.Formula())
			fmt.Fprintf(out, "Slope:   %.6f\nIntercept: %.6f\n", model.Slope, model.Intercept)
			fmt.Fprintf(out, "%s\n\n", summary)

			return writeFitTable(out, sample, model)
		},
	}
}

// writeFitTable prints one row per point. Points whose hat diagonal exceeds
// twice the mean leverage are flagged.
func writeFitTable(out io.Writer, sample regression.Sample, model *regression.Model) error {
	residuals, err := regression.Residuals(sample.X, sample.Y, model.Slope, model.Intercept)
	if err != nil {
		return err
	}

	threshold := highLeverageFactor * float64(len(model.Coefficients())) / float64(sample.Len())
	flag := color.New(color.FgRed, color.Bold).SprintFunc()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tx\ty\tfitted\tresidual\that\tdelta\t")
	for i, h := range model.HatDiagonal() {
		x, y := sample.X[i], sample.Y[i]
		mark := ""
		if h > threshold {
			mark = flag("high leverage")
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.4f\t%.4f\t%.4f\t%s\t%s\n",
			i, x, y, model.Estimate(x), residuals[i], h, leverageDeltaCell(sample, i, residuals[i]), mark)
	}

	return tw.Flush()
}

// leverageDeltaCell is the leave-one-out leverage delta of point i, or "n/a"
// when it is undefined.
func leverageDeltaCell(sample regression.Sample, i int, residualWith float64) string {
	pivot, err := regression.LeaveOneOut(sample, i)
	if err != nil {
		return "n/a"
	}

	x, y := sample.X[i], sample.Y[i]
	delta, err := regression.LeverageDelta(residualWith, regression.Residual(x, y, pivot.Slope, pivot.Intercept))
	if err != nil {
		return "n/a"
	}

	return strconv.FormatFloat(delta, 'f', 4, 64)
}
