// Package interact implements the drag-session lifecycle of the regression
// scatterplot: idle → dragging → idle.
//
// A Session is created when a gesture starts on point i. It fits the full
// model and the leave-one-out ("pivot") model once, then refits the full
// model on every Move with point i placed at the pointer position. End closes
// the session and hands back the baseline frame so the caller can restore its
// view. All gesture state lives in the Session value; there is nothing shared
// between sessions.
//
//	sess, frame, err := interact.Start(sample, i, interact.WithLogger(logger))
//	if err != nil {
//	    return err // e.g. errs.ErrSingularMatrix for a degenerate pivot fit
//	}
//	render(frame)
//	for ev := range pointerMoves {
//	    frame, err := sess.Move(ev.X, ev.Y)
//	    if err != nil {
//	        continue // keep showing the last good frame
//	    }
//	    render(frame)
//	}
//	base, _ := sess.End()
//	render(base)
//
// Coordinates are in data space; converting pixels is the caller's job (see
// scene.LinearScale.Invert).
//
// A Session is not safe for concurrent use. Each Move runs one synchronous
// recomputation and must complete before the next event is handled.
package interact
