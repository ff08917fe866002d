package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/olsdiag/interact"
	"github.com/arloliu/olsdiag/scene"
)

type dragFlags struct {
	index int
	to    []string
}

func (f *dragFlags) register(cmd *cobra.Command, required bool) {
	cmd.Flags().IntVar(&f.index, "index", -1, "index of the dragged point")
	cmd.Flags().StringArrayVar(&f.to, "to", nil, "drag target as x,y in data units (repeatable)")
	if required {
		_ = cmd.MarkFlagRequired("index")
		_ = cmd.MarkFlagRequired("to")
	}
}

// targets parses the --to values.
func (f *dragFlags) targets() ([][2]float64, error) {
	out := make([][2]float64, 0, len(f.to))
	for _, s := range f.to {
		p, err := parsePoint(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

func newDragCmd(a *app) *cobra.Command {
	var flags dragFlags

	cmd := &cobra.Command{
		Use:   "drag",
		Short: "Drag one point through the given positions and print the diagnostics of each frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := flags.targets()
			if err != nil {
				return err
			}
			ds, err := a.loadDataset()
			if err != nil {
				return err
			}

			sess, frame, err := interact.Start(ds.Sample(), flags.index, interact.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeFrame(out, "start", frame)
			for _, p := range targets {
				frame, err = sess.Move(p[0], p[1])
				if err != nil {
					return err
				}
				writeFrame(out, fmt.Sprintf("move %d", sess.Moves()), frame)
			}

			base, err := sess.End()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "end: point %d restored to (%.2f, %.2f)\n", base.Index, base.X, base.Y)

			return nil
		},
	}
	flags.register(cmd, true)

	return cmd
}

func writeFrame(out io.Writer, title string, f *interact.Frame) {
	fmt.Fprintf(out, "%s: point %d at (%.2f, %.2f), %s\n", title, f.Index, f.X, f.Y, f.Model.Formula())
	for _, line := range scene.InfoLines(f) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintf(out, "  Regression gap: %s\n", scene.FormatDistance(f.RegressionGap))
}

// parsePoint parses "x,y".
func parsePoint(s string) ([2]float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]float64{}, fmt.Errorf("point %q: want x,y", s)
	}

	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err := errors.Join(errX, errY); err != nil {
		return [2]float64{}, fmt.Errorf("point %q: %w", s, err)
	}

	return [2]float64{x, y}, nil
}
