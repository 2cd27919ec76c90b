package models

import (
	"time"

	"github.com/google/uuid"
)

type (
	SessionID string
	EntryID   string
	SetID     string
)

func NewSessionID() SessionID { return SessionID(uuid.New().String()) }
func NewEntryID() EntryID     { return EntryID(uuid.New().String()) }
func NewSetID() SetID         { return SetID(uuid.New().String()) }

// Session is one visit to the gym. Date carries full precision but is grouped by day.
type Session struct {
	ID    SessionID `json:"id"`
	Date  time.Time `json:"date"`
	Notes string    `json:"notes"`
}

// Entry is one exercise's worth of sets inside a session.
type Entry struct {
	ID         EntryID    `json:"id"`
	ExerciseID ExerciseID `json:"exercise_id"`
	SessionID  SessionID  `json:"session_id,omitempty"` // Empty when detached from any session.
	Sets       []Set      `json:"sets"`
}

func (e Entry) Detached() bool {
	return e.SessionID == ""
}

type Set struct {
	ID     SetID   `json:"id"`
	Reps   int     `json:"reps"`
	LoadKg float64 `json:"load_kg"`
	Note   string  `json:"note"`
}

//
// Draft state of the session currently being logged, kept in TOML between commands.
//

type DraftSession struct {
	SessionID    SessionID    `toml:"session_id"`
	Date         time.Time    `toml:"date"`
	Notes        string       `toml:"notes"`
	TemplateName string       `toml:"template_name,omitempty"`
	Entries      []DraftEntry `toml:"entry"`
}

type DraftEntry struct {
	ExerciseID   ExerciseID `toml:"exercise_id"`
	ExerciseName string     `toml:"exercise_name"`
	Sets         []DraftSet `toml:"set"`
}

type DraftSet struct {
	Reps   int     `toml:"reps"`
	LoadKg float64 `toml:"load_kg"`
	Note   string  `toml:"note,omitempty"`
}

// EntryFor returns the draft entry for the exercise, appending an empty one if
// the exercise is not part of the draft yet.
func (d *DraftSession) EntryFor(id ExerciseID, name string) *DraftEntry {
	for i := range d.Entries {
		if d.Entries[i].ExerciseID == id {
			return &d.Entries[i]
		}
	}
	d.Entries = append(d.Entries, DraftEntry{ExerciseID: id, ExerciseName: name})
	return &d.Entries[len(d.Entries)-1]
}
