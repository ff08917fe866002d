package interact

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/olsdiag/errs"
	"github.com/arloliu/olsdiag/internal/hash"
	"github.com/arloliu/olsdiag/internal/options"
	"github.com/arloliu/olsdiag/regression"
)

// Session is the state of one drag gesture on one point.
type Session struct {
	cfg    SessionConfig
	index  int
	origin regression.Sample
	pivot  *regression.Model
	base   *Frame
	last   *Frame
	moves  int
	closed bool
}

// Start begins a drag gesture on point index of sample.
//
// It fits the full sample and the leave-one-out sample once and returns the
// session together with the baseline frame (the point at its original
// position).
//
// Returns:
//   - errs.ErrIndexOutOfRange: index is not a point of sample
//   - errs.ErrDimensionMismatch: sample X and Y differ in length
//   - errs.ErrSingularMatrix: either fit is degenerate
func Start(sample regression.Sample, index int, opts ...Option) (*Session, *Frame, error) {
	cfg := defaultSessionConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, nil, err
	}

	if _, _, err := sample.Point(index); err != nil {
		return nil, nil, fmt.Errorf("start drag: %w", err)
	}
	origin := sample.Clone()
	fingerprint := hash.Floats(origin.X, origin.Y)
	logger := cfg.Logger.With(zap.Int("index", index), zap.String("sample", fmt.Sprintf("%016x", fingerprint)))

	model, err := regression.FitSample(origin)
	if err != nil {
		logger.Warn("drag start rejected", zap.Error(err))
		return nil, nil, fmt.Errorf("start drag: %w", err)
	}
	pivot, err := regression.LeaveOneOut(origin, index)
	if err != nil {
		logger.Warn("drag start rejected", zap.Error(err))
		return nil, nil, fmt.Errorf("start drag: %w", err)
	}

	base, err := newFrame(origin.Clone(), index, model, pivot, fingerprint)
	if err != nil {
		return nil, nil, fmt.Errorf("start drag: %w", err)
	}

	cfg.Logger = logger
	logger.Debug("drag started",
		zap.Float64("slope", model.Slope),
		zap.Float64("pivot_slope", pivot.Slope),
		zap.Float64("hat", base.HatDiagonal),
	)

	s := &Session{
		cfg:    cfg,
		index:  index,
		origin: origin,
		pivot:  pivot,
		base:   base,
		last:   base,
	}

	return s, base, nil
}

// Move places the dragged point at (x, y) and recomputes the frame.
//
// On error the session is unchanged and Last still returns the previous good
// frame. Returns errs.ErrSessionClosed after End, and errs.ErrSingularMatrix
// when the new position makes every x equal.
func (s *Session) Move(x, y float64) (*Frame, error) {
	if s.closed {
		return nil, fmt.Errorf("move: %w", errs.ErrSessionClosed)
	}

	moved, err := s.origin.WithPoint(s.index, x, y)
	if err != nil {
		return nil, fmt.Errorf("move: %w", err)
	}

	model, err := regression.FitSample(moved)
	if err != nil {
		s.cfg.Logger.Warn("degenerate drag position", zap.Float64("x", x), zap.Float64("y", y), zap.Error(err))
		return nil, fmt.Errorf("move to (%g, %g): %w", x, y, err)
	}

	frame, err := newFrame(moved, s.index, model, s.pivot, hash.Floats(moved.X, moved.Y))
	if err != nil {
		return nil, fmt.Errorf("move to (%g, %g): %w", x, y, err)
	}
	if frame.LeverageDeltaErr != nil {
		s.cfg.Logger.Debug("leverage delta undefined", zap.Error(frame.LeverageDeltaErr))
	}

	s.moves++
	s.last = frame

	return frame, nil
}

// End closes the session and returns the baseline frame, with the dragged
// point back at its original position. Calling End twice returns
// errs.ErrSessionClosed.
func (s *Session) End() (*Frame, error) {
	if s.closed {
		return nil, fmt.Errorf("end: %w", errs.ErrSessionClosed)
	}

	s.closed = true
	s.last = nil
	s.cfg.Logger.Debug("drag ended", zap.Int("moves", s.moves))

	return s.base, nil
}

// Index returns the dragged point.
func (s *Session) Index() int {
	return s.index
}

// Baseline returns the frame of the undragged sample.
func (s *Session) Baseline() *Frame {
	return s.base
}

// Pivot returns a copy of the leave-one-out model fit at Start.
func (s *Session) Pivot() *regression.Model {
	return s.pivot.Clone()
}

// Last returns the most recent successful frame, or nil once the session is closed.
func (s *Session) Last() *Frame {
	return s.last
}

// Moves returns the number of successful Move calls.
func (s *Session) Moves() int {
	return s.moves
}

// Closed reports whether End was called.
func (s *Session) Closed() bool {
	return s.closed
}
