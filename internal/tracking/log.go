package tracking

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

type Entry struct {
	Date      Date
	Completed bool
}

// Log is a sparse per-day completion record kept sorted by date ascending.
// Absent days are untracked, which is different from an explicit false.
type Log struct {
	entries []Entry
}

func NewLog(entries map[Date]bool) Log {
	var l Log
	for d, completed := range entries {
		l.Set(d, completed)
	}
	return l
}

// Set inserts or overwrites the entry for d.
func (l *Log) Set(d Date, completed bool) {
	i := l.search(d)
	if i < len(l.entries) && l.entries[i].Date == d {
		l.entries[i].Completed = completed
		return
	}
	l.entries = append(l.entries, Entry{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = Entry{Date: d, Completed: completed}
}

func (l Log) Get(d Date) (completed bool, ok bool) {
	i := l.search(d)
	if i < len(l.entries) && l.entries[i].Date == d {
		return l.entries[i].Completed, true
	}
	return false, false
}

func (l Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log in ascending date order.
func (l Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Latest returns the most recent tracked day.
func (l Log) Latest() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// CompletedCount counts entries marked complete.
func (l Log) CompletedCount() int {
	n := 0
	for _, e := range l.entries {
		if e.Completed {
			n++
		}
	}
	return n
}

// Streak counts consecutive completed entries walking back from the most recent
// tracked day. Only present entries are visited: an untracked gap does not end a
// streak, an explicit false does.
func (l Log) Streak() int {
	n := 0
	for i := len(l.entries) - 1; i >= 0; i-- {
		if !l.entries[i].Completed {
			break
		}
		n++
	}
	return n
}

func (l Log) search(d Date) int {
	return sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].Date >= d
	})
}

func (l Log) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool, len(l.entries))
	for _, e := range l.entries {
		m[string(e.Date)] = e.Completed
	}
	return json.Marshal(m)
}

func (l *Log) UnmarshalJSON(data []byte) error {
	var m map[string]bool
	err := json.Unmarshal(data, &m)
	if err != nil {
		return err
	}

	l.entries = make([]Entry, 0, len(m))
	for key, completed := range m {
		d, err := ParseDate(key)
		if err != nil {
			return err
		}
		l.entries = append(l.entries, Entry{Date: d, Completed: completed})
	}
	sort.Slice(l.entries, func(i, j int) bool {
		return l.entries[i].Date < l.entries[j].Date
	})
	return nil
}

// Scan reads the JSON column representation.
func (l *Log) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		l.entries = nil
		return nil
	case string:
		return l.UnmarshalJSON([]byte(v))
	case []byte:
		return l.UnmarshalJSON(v)
	default:
		return fmt.Errorf("tracking: cannot scan %T into Log", src)
	}
}

func (l Log) Value() (driver.Value, error) {
	b, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
