package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/olsdiag/interact"
	"github.com/arloliu/olsdiag/regression"
	"github.com/arloliu/olsdiag/scene"
)

type sceneOutput struct {
	State     *scene.State   `json:"state"`
	Reference *scene.Segment `json:"reference,omitempty"`
	Overlay   *scene.Overlay `json:"overlay,omitempty"`
}

func newSceneCmd(a *app) *cobra.Command {
	var (
		flags     dragFlags
		reference string
	)

	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Print the chart view state as JSON",
		Long: `Print the chart view state as JSON. With --index the overlay of the
last --to position is included; without --to it shows the undragged point.
With --reference slope,intercept a fixed line is laid out on the same scales.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := flags.targets()
			if err != nil {
				return err
			}
			if len(targets) > 0 && flags.index < 0 {
				return errors.New("--to needs --index")
			}
			var ref regression.Estimator
			if reference != "" {
				p, err := parsePoint(reference)
				if err != nil {
					return fmt.Errorf("--reference: %w", err)
				}
				ref = regression.NewLine(p[0], p[1])
			}

			ds, err := a.loadDataset()
			if err != nil {
				return err
			}
			dims, err := a.cfg.Dimensions()
			if err != nil {
				return err
			}

			sample := ds.Sample()
			model, err := regression.FitSample(sample)
			if err != nil {
				return fmt.Errorf("fit %s: %w", ds, err)
			}
			state, err := scene.Compute(sample, model, dims)
			if err != nil {
				return err
			}

			res := sceneOutput{State: state}
			if ref != nil {
				seg, err := scene.ReferenceLine(state, ref)
				if err != nil {
					return err
				}
				res.Reference = &seg
			}
			if flags.index >= 0 {
				res.Overlay, err = dragOverlay(a, state, sample, flags.index, targets)
				if err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(res)
		},
	}
	flags.register(cmd, false)
	cmd.Flags().StringVar(&reference, "reference", "", "fixed line to draw as slope,intercept")

	return cmd
}

// dragOverlay replays the drag and lays out its last frame.
func dragOverlay(a *app, state *scene.State, sample regression.Sample, index int, targets [][2]float64) (*scene.Overlay, error) {
	sess, frame, err := interact.Start(sample, index, interact.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	for _, p := range targets {
		if frame, err = sess.Move(p[0], p[1]); err != nil {
			return nil, err
		}
	}
	if _, err := sess.End(); err != nil {
		return nil, err
	}

	return scene.ComputeFrame(state, frame)
}
