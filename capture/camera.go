// Package capture reads webcam frames with gocv and feeds detected points
// to the game without ever blocking its loop.
package capture

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hand-snake/config"
	"hand-snake/game/sensor"
	"hand-snake/game/types"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

const retryDelay = 10 * time.Millisecond

// Camera is a sensor.PointSource backed by a video device. Frames are
// read and analysed on a worker goroutine; Poll only looks at the most
// recent result.
type Camera struct {
	*sensor.Latest

	cfg      config.Camera
	vc       *gocv.VideoCapture
	detector Detector
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func Open(cfg config.Camera, detector Detector, logger *slog.Logger) (*Camera, error) {
	vc, err := gocv.OpenVideoCapture(cfg.Device)
	if err != nil {
		return nil, errors.Wrapf(err, "open camera %d", cfg.Device)
	}
	vc.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))

	return &Camera{
		Latest:   sensor.NewLatest(cfg.MaxAge.Duration),
		cfg:      cfg,
		vc:       vc,
		detector: detector,
		logger:   logger,
	}, nil
}

// Start launches the capture worker. It stops when ctx ends or Close is called.
func (c *Camera) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	c.wg.Add(1)
	go c.readLoop(ctx)
}

func (c *Camera) readLoop(ctx context.Context) {
	defer c.wg.Done()

	frame := gocv.NewMat()
	defer frame.Close()

	for ctx.Err() == nil {
		if ok := c.vc.Read(&frame); !ok || frame.Empty() {
			c.Publish(types.Point{}, false, errors.Wrap(sensor.ErrCaptureFailed, "read frame"))
			select {
			case <-ctx.Done():
			case <-time.After(retryDelay):
			}
			continue
		}
		if c.cfg.Mirror {
			gocv.Flip(frame, &frame, 1)
		}

		p, ok, err := c.detector.Detect(frame)
		if err != nil {
			c.logger.Debug("detect failed", "err", err)
			ok = false
		}
		c.Publish(scale(p, frame.Cols(), frame.Rows(), c.cfg), ok, nil)
	}
}

// scale maps a pixel position into the configured source resolution in
// case the device ignored the requested frame size.
func scale(p types.Point, cols, rows int, cfg config.Camera) types.Point {
	if cols <= 0 || rows <= 0 {
		return p
	}
	return types.Point{
		X: p.X * float64(cfg.Width) / float64(cols),
		Y: p.Y * float64(cfg.Height) / float64(rows),
	}
}

func (c *Camera) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()

	err := c.detector.Close()
	if cerr := c.vc.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return errors.Wrap(err, "close camera")
}
