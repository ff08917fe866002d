package interact

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/olsdiag/errs"
	"github.com/arloliu/olsdiag/regression"
)

const tolerance = 1e-9

func testSample() regression.Sample {
	return regression.Sample{
		X: []float64{1, 2, 3, 4, 5},
		Y: []float64{2.1, 3.9, 6.2, 7.8, 10.1},
	}
}

func TestStart_BaselineFrame(t *testing.T) {
	sess, frame, err := Start(testSample(), 4)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Same(t, frame, sess.Baseline())
	require.Same(t, frame, sess.Last())
	require.Equal(t, 4, sess.Index())
	require.False(t, sess.Closed())

	require.Equal(t, 4, frame.Index)
	require.Equal(t, 5.0, frame.X)
	require.Equal(t, 10.1, frame.Y)
	require.InDelta(t, 3.0, frame.XMean, tolerance)
	require.InDelta(t, 1.99, frame.Model.Slope, tolerance)
	require.InDelta(t, 1.94, frame.Pivot.Slope, tolerance)
	require.Equal(t, sess.Pivot(), frame.Pivot)
	require.Equal(t, 4, frame.Pivot.N())

	require.InDelta(t, 0.10, frame.ResidualWith, tolerance)
	require.InDelta(t, 0.25, frame.ResidualWithout, tolerance)
	require.InDelta(t, 0.84, frame.LeverageDelta, 1e-6)
	require.NoError(t, frame.LeverageDeltaErr)
	require.InDelta(t, 0.6, frame.HatDiagonal, tolerance)
	require.InDelta(t, (1.94-1.99)/1.99, frame.SlopeRelativeChange, 1e-9)
	require.InDelta(t, frame.ResidualWith-frame.ResidualWithout, frame.RegressionGap, tolerance)
	require.InDelta(t, -0.15, frame.RegressionGap, tolerance)
}

func TestStart_Errors(t *testing.T) {
	t.Run("index out of range", func(t *testing.T) {
		_, _, err := Start(testSample(), 5)
		require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	})

	t.Run("mismatched sample", func(t *testing.T) {
		_, _, err := Start(regression.Sample{X: []float64{1, 2}, Y: []float64{1}}, 0)
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("degenerate pivot", func(t *testing.T) {
		// Without point 2 only x = 1 remains.
		_, _, err := Start(regression.Sample{X: []float64{1, 1, 2}, Y: []float64{1, 2, 3}}, 2)
		require.ErrorIs(t, err, errs.ErrSingularMatrix)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, _, err := Start(testSample(), 0, WithLogger(nil))
		require.Error(t, err)
	})
}

func TestSession_Move(t *testing.T) {
	sample := testSample()
	sess, base, err := Start(sample, 4)
	require.NoError(t, err)

	frame, err := sess.Move(5, 14)
	require.NoError(t, err)
	require.Same(t, frame, sess.Last())
	require.Equal(t, 1, sess.Moves())

	require.Equal(t, 5.0, frame.X)
	require.Equal(t, 14.0, frame.Y)
	require.Equal(t, []float64{2.1, 3.9, 6.2, 7.8, 14}, frame.Sample.Y)
	require.Equal(t, 10.1, sample.Y[4], "caller's sample is untouched")
	require.Equal(t, 10.1, base.Sample.Y[4], "baseline frame is untouched")

	want, err := regression.Fit(frame.Sample.X, frame.Sample.Y)
	require.NoError(t, err)
	require.InDelta(t, want.Slope, frame.Model.Slope, tolerance)
	require.InDelta(t, want.Intercept, frame.Model.Intercept, tolerance)
	require.Equal(t, base.Pivot, frame.Pivot, "the pivot fit is computed once per session")
	require.NotSame(t, base.Pivot, frame.Pivot)
	require.Greater(t, frame.Model.Slope, base.Model.Slope)

	require.Equal(t, regression.Residual(5, 14, frame.Model.Slope, frame.Model.Intercept), frame.ResidualWith)
	require.Equal(t, regression.Residual(5, 14, frame.Pivot.Slope, frame.Pivot.Intercept), frame.ResidualWithout)
	require.NotEqual(t, base.Fingerprint, frame.Fingerprint)

	// Dragging an outlier along x changes the x mean.
	frame, err = sess.Move(9, 10.1)
	require.NoError(t, err)
	require.InDelta(t, 3.8, frame.XMean, tolerance)
	require.Greater(t, frame.HatDiagonal, base.HatDiagonal, "moving away from x̄ raises leverage")
	require.Equal(t, 2, sess.Moves())
}

func TestSession_MoveOntoPivotLine(t *testing.T) {
	sess, _, err := Start(testSample(), 4)
	require.NoError(t, err)

	x := 6.0
	frame, err := sess.Move(x, sess.Pivot().Estimate(x))
	require.NoError(t, err)

	require.Equal(t, 0.0, frame.ResidualWithout)
	require.True(t, math.IsNaN(frame.LeverageDelta))
	require.ErrorIs(t, frame.LeverageDeltaErr, errs.ErrDivisionByZero)
	// A point on the leave-one-out line does not move the fit.
	require.InDelta(t, sess.Pivot().Slope, frame.Model.Slope, tolerance)
	require.InDelta(t, 0.0, frame.RegressionGap, tolerance)
}

func TestSession_MoveErrorKeepsLastFrame(t *testing.T) {
	sess, _, err := Start(testSample(), 1)
	require.NoError(t, err)

	good, err := sess.Move(2.5, 4)
	require.NoError(t, err)

	frame, err := sess.Move(math.NaN(), 4)
	require.Nil(t, frame)
	require.ErrorIs(t, err, errs.ErrNonFiniteValue)
	require.Same(t, good, sess.Last())
	require.Equal(t, 1, sess.Moves())

	// The session stays usable.
	_, err = sess.Move(2.5, 5)
	require.NoError(t, err)
}

func TestSession_FramesDoNotAliasSession(t *testing.T) {
	sample := regression.Sample{
		X: []float64{1, 2, 3, 4, 5},
		Y: []float64{2, 4, 5, 4, 5},
	}
	sess, base, err := Start(sample, 1)
	require.NoError(t, err)

	first, err := sess.Move(1, 2)
	require.NoError(t, err)

	base.Sample.X[1] = 100
	base.Sample.Y[0] = -50
	first.Sample.X[3] = 100

	second, err := sess.Move(1, 2)
	require.NoError(t, err)

	want, err := regression.Fit([]float64{1, 1, 3, 4, 5}, []float64{2, 2, 5, 4, 5})
	require.NoError(t, err)
	require.Equal(t, want.Slope, second.Model.Slope)
	require.Equal(t, want.Intercept, second.Model.Intercept)
	require.Equal(t, []float64{1, 1, 3, 4, 5}, second.Sample.X)

	base.Pivot.Slope = 1e6
	sess.Pivot().Intercept = 1e6
	third, err := sess.Move(1, 2)
	require.NoError(t, err)
	require.Equal(t, second.Pivot, third.Pivot)
	require.Equal(t, second.ResidualWithout, third.ResidualWithout)

	// The caller's sample is not touched either.
	require.Equal(t, []float64{1, 2, 3, 4, 5}, sample.X)
	require.Equal(t, []float64{2, 4, 5, 4, 5}, sample.Y)
}

func TestSession_End(t *testing.T) {
	sess, base, err := Start(testSample(), 0)
	require.NoError(t, err)
	_, err = sess.Move(0, 0)
	require.NoError(t, err)

	restored, err := sess.End()
	require.NoError(t, err)
	require.Same(t, base, restored)
	require.True(t, sess.Closed())
	require.Nil(t, sess.Last())

	_, err = sess.Move(1, 1)
	require.ErrorIs(t, err, errs.ErrSessionClosed)

	_, err = sess.End()
	require.ErrorIs(t, err, errs.ErrSessionClosed)
}

func TestSession_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	sess, _, err := Start(testSample(), 2, WithLogger(logger))
	require.NoError(t, err)
	_, err = sess.Move(math.Inf(1), 0)
	require.Error(t, err)
	_, err = sess.End()
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("drag started").Len())
	require.Equal(t, 1, logs.FilterMessage("degenerate drag position").FilterLevelExact(zapcore.WarnLevel).Len())

	ended := logs.FilterMessage("drag ended").All()
	require.Len(t, ended, 1)
	require.Equal(t, int64(0), ended[0].ContextMap()["moves"])
	require.Equal(t, int64(2), ended[0].ContextMap()["index"])
}

func TestSession_LoggingRejectedStart(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	_, _, err := Start(regression.Sample{X: []float64{1, 1, 2}, Y: []float64{1, 2, 3}}, 2, WithLogger(zap.New(core)))
	require.ErrorIs(t, err, errs.ErrSingularMatrix)
	require.Equal(t, 1, logs.FilterMessage("drag start rejected").Len())
}
