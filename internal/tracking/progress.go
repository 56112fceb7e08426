package tracking

// Progress is the derived tracking state of a habit. Completed, Streak and
// LongestStreak are always recomputed from Log, never adjusted incrementally.
type Progress struct {
	Log           Log `db:"tracking" json:"tracking"`
	Completed     int `db:"completed" json:"completed"`
	Streak        int `db:"streak" json:"streak"`
	LongestStreak int `db:"longest_streak" json:"longest_streak"`
}

// Record sets the completion flag for d and recomputes all derived counters.
// Recording the same (d, completed) twice leaves the counters unchanged.
func (p *Progress) Record(d Date, completed bool) {
	p.Log.Set(d, completed)
	p.Recompute()
}

// Recompute refreshes the derived counters from the log. LongestStreak never
// decreases.
func (p *Progress) Recompute() {
	p.Completed = p.Log.CompletedCount()
	p.Streak = p.Log.Streak()
	if p.Streak > p.LongestStreak {
		p.LongestStreak = p.Streak
	}
}
