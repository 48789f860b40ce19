package model

import "time"

// FieldNote is an unstructured daily report entry.
type FieldNote struct {
	ProjectID      string    `json:"project_id"`
	NoteID         string    `json:"note_id"`
	Date           time.Time `json:"date"`
	Author         string    `json:"author"`
	NoteType       string    `json:"note_type"`
	Content        string    `json:"content"`
	PhotosAttached int       `json:"photos_attached"`
	Weather        string    `json:"weather"`
	TempHigh       int       `json:"temp_high"`
	TempLow        int       `json:"temp_low"`
}
