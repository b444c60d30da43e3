package game

import (
	"hand-snake/game/entity"
	"hand-snake/game/manager"
	"hand-snake/game/sensor"
	"hand-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Segment is one drawn trail element.
type Segment struct {
	Pos        types.Point
	ColorIndex int
}

// Snapshot is everything a renderer needs for one frame. It owns its
// slices, so renderers may keep it around.
type Snapshot struct {
	Segments  []Segment
	Food      types.Food
	Score     int
	Level     int
	Speed     int
	HighScore int
	Tracking  bool // a point was seen this tick
}

// StepResult tells the loop what happened in one session step.
type StepResult struct {
	Ate   bool
	Reset bool
}

// Session holds all state of one play session. It is owned by a single
// goroutine and is not safe for concurrent use.
type Session struct {
	UUID  string
	Arena types.Arena
	Snake *entity.Snake

	smoother     *sensor.Smoother
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	tracking     bool
}

func NewSession(arena types.Arena, rng *rand.Rand) *Session {
	collisionMgr := manager.NewCollisionManager(arena.Grid)
	return &Session{
		UUID:         uuid.New().String(),
		Arena:        arena,
		Snake:        entity.NewSnake(types.StartPos),
		smoother:     sensor.NewSmoother(arena, types.Point{}),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(arena.Grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(),
	}
}

// Step advances the session by one tick given this tick's raw sample.
func (s *Session) Step(raw types.Point, ok bool) StepResult {
	var res StepResult
	s.tracking = ok

	cursor := s.smoother.Update(raw, ok)
	s.Snake.Advance(cursor)

	if ok && s.foodMgr.TryConsume(cursor) {
		s.Snake.Grow()
		s.stateMgr.AddPoint()
		res.Ate = true
	}

	if s.collisionMgr.IsSelfCollision(s.Snake) {
		s.stateMgr.EndRun()
		s.Snake.Reset(types.StartPos)
		res.Reset = true
	}
	return res
}

// Snapshot copies the drawable state.
func (s *Session) Snapshot() Snapshot {
	segs := make([]Segment, len(s.Snake.Body))
	for i, p := range s.Snake.Body {
		segs[i] = Segment{Pos: p, ColorIndex: s.stateMgr.ColorIndex(i)}
	}
	score := s.stateMgr.Score()
	return Snapshot{
		Segments:  segs,
		Food:      s.foodMgr.GetFood(),
		Score:     score,
		Level:     manager.Level(score),
		Speed:     manager.Speed(score),
		HighScore: s.stateMgr.GetHighScore(),
		Tracking:  s.tracking,
	}
}

func (s *Session) Score() int {
	return s.stateMgr.Score()
}

func (s *Session) HighScore() int {
	return s.stateMgr.GetHighScore()
}

func (s *Session) ScoreHistory() []int {
	return s.stateMgr.GetScoreHistory()
}

func (s *Session) Food() types.Food {
	return s.foodMgr.GetFood()
}

func (s *Session) Cursor() types.Point {
	return s.smoother.Cursor()
}
