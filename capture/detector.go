package capture

import (
	"hand-snake/config"
	"hand-snake/game/types"

	"gocv.io/x/gocv"
)

// Detector finds the tracked point in a BGR frame.
type Detector interface {
	// Detect returns the point in frame pixel coordinates, or ok=false
	// if nothing was found.
	Detect(frame gocv.Mat) (p types.Point, ok bool, err error)

	// Close releases any resources held by the detector.
	Close() error
}

// MarkerDetector tracks the centroid of the largest colour match, e.g. a
// glove or a sticker on the index finger.
type MarkerDetector struct {
	lower, upper gocv.Scalar
	minArea      int

	hsv  gocv.Mat
	mask gocv.Mat
}

func NewMarkerDetector(cfg config.Marker) *MarkerDetector {
	return &MarkerDetector{
		lower:   gocv.NewScalar(cfg.Lower[0], cfg.Lower[1], cfg.Lower[2], 0),
		upper:   gocv.NewScalar(cfg.Upper[0], cfg.Upper[1], cfg.Upper[2], 0),
		minArea: cfg.MinArea,
		hsv:     gocv.NewMat(),
		mask:    gocv.NewMat(),
	}
}

func (d *MarkerDetector) Detect(frame gocv.Mat) (types.Point, bool, error) {
	if frame.Empty() {
		return types.Point{}, false, nil
	}
	gocv.CvtColor(frame, &d.hsv, gocv.ColorBGRToHSV)
	gocv.InRangeWithScalar(d.hsv, d.lower, d.upper, &d.mask)
	if gocv.CountNonZero(d.mask) < d.minArea {
		return types.Point{}, false, nil
	}

	m := gocv.Moments(d.mask, true)
	if m["m00"] == 0 {
		return types.Point{}, false, nil
	}
	return types.Point{X: m["m10"] / m["m00"], Y: m["m01"] / m["m00"]}, true, nil
}

func (d *MarkerDetector) Close() error {
	if err := d.hsv.Close(); err != nil {
		return err
	}
	return d.mask.Close()
}
