package sim

// Snapshot is a copy of the world handed to render callbacks and
// observers. It shares no memory with the World.
type Snapshot struct {
	Mode          Mode
	Width         int
	Height        int
	Tick          uint64
	Ball          Ball
	Player        Paddle
	HasPlayer     bool
	Opponent      Paddle
	HasOpponent   bool
	Blocks        []Block
	BlocksTotal   int
	PlayerScore   int
	OpponentScore int
	Lives         int
}

// SnapshotInto fills s from the world, reusing s.Blocks' storage.
func (w *World) SnapshotInto(s *Snapshot) {
	s.Mode = w.cfg.Mode
	s.Width = w.cfg.Width
	s.Height = w.cfg.Height
	s.Tick = w.tick
	s.Ball = w.Ball
	s.HasPlayer = w.Player != nil
	if s.HasPlayer {
		s.Player = *w.Player
	}
	s.HasOpponent = w.Opponent != nil
	if s.HasOpponent {
		s.Opponent = *w.Opponent
	}
	s.Blocks = s.Blocks[:0]
	s.BlocksTotal = 0
	if w.Blocks != nil {
		s.Blocks = w.Blocks.AppendTo(s.Blocks)
		s.BlocksTotal = w.Blocks.Total()
	}
	s.PlayerScore = w.PlayerScore
	s.OpponentScore = w.OpponentScore
	s.Lives = w.Lives
}

// Snapshot returns a fresh copy of the world.
func (w *World) Snapshot() Snapshot {
	var s Snapshot
	w.SnapshotInto(&s)
	return s
}
