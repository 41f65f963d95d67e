package entity

import (
	"encoding/json"
	"strconv"
	"time"
)

type Job struct {
	ID          string       `json:"_id,omitempty"`
	Title       string       `json:"title"`
	Status      string       `json:"status"`
	Submissions []Submission `json:"submissions"`
}

type Submission struct {
	SubmittedAt Timestamp `json:"submittedAt"`
	Notes       string    `json:"notes,omitempty"`
	Files       []FileRef `json:"files"`
}

// Timestamp is a submission time as sent by the server. It is only displayed,
// so any value decodes; Time reports whether it can be read as a date.
type Timestamp string

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Timestamp(s)
		return nil
	}
	if string(data) == "null" {
		*t = ""
		return nil
	}
	*t = Timestamp(data)
	return nil
}

// Time parses an RFC 3339 date or a number of milliseconds since the epoch.
func (t Timestamp) Time() (time.Time, bool) {
	if parsed, err := time.Parse(time.RFC3339Nano, string(t)); err == nil {
		return parsed, true
	}
	if ms, err := strconv.ParseInt(string(t), 10, 64); err == nil {
		return time.Unix(0, ms*int64(time.Millisecond)), true
	}
	return time.Time{}, false
}

// FileRef names a stored file. Key is the opaque storage identifier needed to
// resolve a download link.
type FileRef struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

type DownloadLink struct {
	URL string `json:"url"`
}
