package types

import "math"

// Point is a position in either source-image or arena space.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Food is the single pickup item in the arena.
type Food struct {
	Pos  Point
	Size float64
}

// Grid represents the arena dimensions
type Grid struct {
	Width  int
	Height int
}

// Arena maps points from the camera frame into the play field.
type Arena struct {
	Grid
	Source Grid // assumed resolution of incoming points
}

// Remap linearly interpolates p from source space into arena space.
// Each axis is clamped to the source range first.
func (a Arena) Remap(p Point) Point {
	return Point{
		X: interp(p.X, float64(a.Source.Width), float64(a.Width)),
		Y: interp(p.Y, float64(a.Source.Height), float64(a.Height)),
	}
}

func interp(v, from, to float64) float64 {
	if from <= 0 {
		return 0
	}
	v = math.Max(0, math.Min(v, from))
	return v / from * to
}

// Game constants
const (
	ArenaWidth   = 960
	ArenaHeight  = 720
	SourceWidth  = 640
	SourceHeight = 480

	InitialLength   = 10 // Target length of a fresh snake
	GrowthPerFood   = 5  // Target length added per food
	SelfExclusion   = 10 // Most recent segments skipped by the self check
	SelfHitRadius   = 10 // Head-to-segment distance that counts as a hit
	PickupRadius    = 25 // Cursor-to-food distance that counts as eating
	FoodMargin      = 50 // Keep food this far from the edges
	FoodSize        = 20 // Side of the food square
	SegmentRadius   = 10 // Drawn radius of a trail segment
	PaletteSize     = 4  // Number of trail colours
	SegmentsPerTone = 10 // Consecutive segments sharing a colour
	SmoothKeep      = 0.75
	SmoothTake      = 0.25
)

// StartPos is where a fresh snake begins.
var StartPos = Point{X: 100, Y: 50}
