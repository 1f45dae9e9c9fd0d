package trace

import (
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Cumulative statistics of the engine's decisions during one game
type Session struct {
	Searches int
	Openings int // moves played by the opening shortcut
	Nodes    int
	Prunes   int
	MaxDepth int
	Elapsed  time.Duration
}

// Returns a new session with 'td' folded in, nil counts as an opening move
func (s Session) Add(td *minimax.ThinkingData) Session {
	if td == nil {
		s.Openings++
		return s
	}

	s.Searches++
	s.Nodes += td.Nodes
	s.Prunes += td.Prunes
	s.MaxDepth = max(s.MaxDepth, td.MaxDepth)
	s.Elapsed += td.Elapsed
	return s
}

func (s Session) NodesPerMs() float64 {
	return NodesPerMs(s.Nodes, s.Elapsed)
}
