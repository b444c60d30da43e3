package entity

import (
	"hand-snake/game/types"
)

// Snake is the trail of past cursor positions. The head is the last element.
type Snake struct {
	Body         []types.Point
	TargetLength int
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:         []types.Point{startPos},
		TargetLength: types.InitialLength,
	}
}

// Advance appends p as the new head and drops old segments from the
// tail until the body fits TargetLength.
func (s *Snake) Advance(p types.Point) {
	s.Move(p)
	for len(s.Body) > s.TargetLength {
		s.RemoveTail()
	}
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

// Grow raises the target length; the body catches up over later ticks.
func (s *Snake) Grow() {
	s.TargetLength += types.GrowthPerFood
}

// Reset puts the snake back to a single segment at startPos.
func (s *Snake) Reset(startPos types.Point) {
	s.Body = []types.Point{startPos}
	s.TargetLength = types.InitialLength
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}
