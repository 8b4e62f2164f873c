package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/logger"
)

// frameStats aggregates frame times over a reporting window.
type frameStats struct {
	window   time.Duration
	lastSent time.Duration
	started  bool

	count int
	total time.Duration
	min   time.Duration
	max   time.Duration
}

func newFrameStats(window time.Duration) *frameStats {
	return &frameStats{window: window}
}

func (s *frameStats) record(d time.Duration) {
	if s.count == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.count++
	s.total += d
}

// due reports whether a window has elapsed since the last report. The
// first call starts the window.
func (s *frameStats) due(now time.Duration) bool {
	if !s.started {
		s.started = true
		s.lastSent = now
		return false
	}
	return now-s.lastSent >= s.window
}

func (s *frameStats) average() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.total / time.Duration(s.count)
}

// fps returns the frame rate over the current window.
func (s *frameStats) fps(now time.Duration) float64 {
	elapsed := (now - s.lastSent).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.count) / elapsed
}

// report logs the window's stats, starts a new window and returns the
// frame rate it measured.
func (s *frameStats) report(now time.Duration) float64 {
	fps := s.fps(now)
	logger.Debug("frame stats",
		zap.Int("frames", s.count),
		zap.Float64("fps", fps),
		zap.Duration("avg", s.average()),
		zap.Duration("min", s.min),
		zap.Duration("max", s.max),
	)
	s.reset(now)
	return fps
}

func (s *frameStats) reset(now time.Duration) {
	s.lastSent = now
	s.count = 0
	s.total = 0
	s.min = 0
	s.max = 0
}
