package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	// WalkingSpeedKmh is the fixed average walking speed.
	WalkingSpeedKmh = 4.4
	secondsPerHour  = 3600
)

// SegmentKind tags the Segment variants.
type SegmentKind int

const (
	SegmentRail SegmentKind = iota + 1
	SegmentWalk
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentRail:
		return "rail"
	case SegmentWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// Segment is a directed edge. Rail segments carry a line id, walk segments derive
// their duration from the distance.
type Segment struct {
	kind     SegmentKind
	start    *Node
	end      *Node
	distance float64 // km
	duration int     // seconds
	line     string
}

func newSegment(kind SegmentKind, start, end *Node, distance float64, duration int) (*Segment, error) {
	switch {
	case start == nil:
		return nil, fmt.Errorf("%w: segment start must not be nil", ErrInvalidArgument)
	case end == nil:
		return nil, fmt.Errorf("%w: segment end must not be nil", ErrInvalidArgument)
	case start.Is(end):
		return nil, fmt.Errorf("%w: segment start and end must differ (%s)", ErrInvalidArgument, start.Name())
	case distance < 0 || math.IsNaN(distance):
		return nil, fmt.Errorf("%w: segment distance must not be negative", ErrInvalidArgument)
	case duration < 0:
		return nil, fmt.Errorf("%w: segment duration must not be negative", ErrInvalidArgument)
	}
	return &Segment{kind: kind, start: start, end: end, distance: distance, duration: duration}, nil
}

// NewRailSegment creates a rail edge on line.
func NewRailSegment(start, end *Node, distance float64, duration int, line string) (*Segment, error) {
	if strings.TrimSpace(line) == "" {
		return nil, fmt.Errorf("%w: line must not be blank", ErrInvalidArgument)
	}
	s, err := newSegment(SegmentRail, start, end, distance, duration)
	if err != nil {
		return nil, err
	}
	s.line = line
	return s, nil
}

// NewWalkSegment creates a walk edge of the given length.
func NewWalkSegment(start, end *Node, distance float64) (*Segment, error) {
	return newSegment(SegmentWalk, start, end, distance, WalkingDuration(distance))
}

// NewWalkSegmentBetween creates a walk edge spanning the great-circle distance.
func NewWalkSegmentBetween(start, end *Node) (*Segment, error) {
	if start == nil || end == nil {
		return nil, fmt.Errorf("%w: segment endpoints must not be nil", ErrInvalidArgument)
	}
	return NewWalkSegment(start, end, start.DistanceTo(end))
}

// WalkingDuration converts kilometres to whole seconds at WalkingSpeedKmh.
func WalkingDuration(distance float64) int {
	if distance <= 0 {
		return 0
	}
	return int(distance * secondsPerHour / WalkingSpeedKmh)
}

func (s *Segment) Kind() SegmentKind { return s.kind }
func (s *Segment) Start() *Node      { return s.start }
func (s *Segment) End() *Node        { return s.end }
func (s *Segment) Distance() float64 { return s.distance }
func (s *Segment) Duration() int     { return s.duration }
func (s *Segment) IsRail() bool      { return s.kind == SegmentRail }
func (s *Segment) IsWalk() bool      { return s.kind == SegmentWalk }

// LineID is empty for walk segments.
func (s *Segment) LineID() string { return s.line }

// Same compares by (kind, start, end) plus the line id for rail segments.
func (s *Segment) Same(other *Segment) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.kind == other.kind &&
		s.start.Is(other.start) &&
		s.end.Is(other.end) &&
		s.line == other.line
}

func (s *Segment) String() string {
	if s.kind == SegmentRail {
		return fmt.Sprintf("rail[%s] %s -> %s (%.3f km, %ds)", s.line, s.start.Name(), s.end.Name(), s.distance, s.duration)
	}
	return fmt.Sprintf("walk %s -> %s (%.3f km, %ds)", s.start.Name(), s.end.Name(), s.distance, s.duration)
}
