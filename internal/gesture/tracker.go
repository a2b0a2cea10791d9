package gesture

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Config tunes the classifiers.
type Config struct {
	Hand          string  // hand label to follow; empty follows the first hand
	Threshold     float64 // translation threshold in pixels
	Mirror        bool    // camera image is mirrored
	PinchDistance float64 // thumb-index distance that counts as a pinch
}

// DefaultConfig returns the thresholds used with a 640x480 webcam.
func DefaultConfig() Config {
	return Config{
		Threshold:     5,
		Mirror:        true,
		PinchDistance: 20,
	}
}

// Tracker classifies frames from a Source and publishes them into a Cell.
type Tracker struct {
	src    Source
	cfg    Config
	cell   *Cell
	logger *log.Logger
	moves  map[string]*Translation
	bad    int
}

// NewTracker creates a tracker publishing into cell.
func NewTracker(src Source, cfg Config, cell *Cell, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{
		src:    src,
		cfg:    cfg,
		cell:   cell,
		logger: logger,
		moves:  make(map[string]*Translation),
	}
}

// Run reads frames until the stream ends or ctx is cancelled. Undecodable
// frames are skipped; any other read error is returned. If the source is
// an io.Closer it is closed on cancellation so a blocked read returns.
func (t *Tracker) Run(ctx context.Context) error {
	if c, ok := t.src.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { c.Close() }) //nolint:errcheck
		defer stop()
	}
	defer t.cell.Publish(DirectionImmobile, ThumbNeutral, Pointer{})

	t.logger.Info("gesture tracker started", "hand", t.cfg.Hand, "threshold", t.cfg.Threshold)
	for {
		if ctx.Err() != nil {
			return nil
		}
		f, err := t.src.Next()
		if err != nil {
			var bad *FrameError
			switch {
			case ctx.Err() != nil:
				return nil
			case errors.Is(err, io.EOF):
				t.logger.Info("landmark stream ended", "frames", t.cell.Frames(), "bad_frames", t.bad)
				return nil
			case errors.As(err, &bad):
				t.bad++
				t.logger.Warn("skipping frame", "line", bad.Line, "err", bad.Err)
				continue
			default:
				return fmt.Errorf("gesture tracker: %w", err)
			}
		}
		t.Process(f)
	}
}

// Process classifies one frame and publishes the result.
func (t *Tracker) Process(f Frame) {
	hand, ok := f.Find(t.cfg.Hand)
	if !ok {
		t.cell.Publish(DirectionImmobile, ThumbNeutral, Pointer{})
		return
	}

	move, thumb := DirectionImmobile, ThumbNeutral
	wrist, hasWrist := f.Pixel(hand, Wrist)
	if hasWrist {
		tr := t.moves[hand.Label]
		if tr == nil {
			tr = NewTranslation(t.cfg.Threshold, t.cfg.Mirror)
			t.moves[hand.Label] = tr
		}
		move = tr.Classify(wrist.X)
	}

	var ptr Pointer
	thumbTip, hasThumb := f.Pixel(hand, ThumbTip)
	if hasWrist && hasThumb {
		thumb = ClassifyThumb(thumbTip, wrist)
	}
	if index, ok := f.Pixel(hand, IndexTip); ok {
		ptr = Pointer{X: index.X, Y: index.Y, Present: true}
		ptr.Pinch = hasThumb && IsPinch(thumbTip, index, t.cfg.PinchDistance)
	}

	t.cell.Publish(move, thumb, ptr)
}
