package entity

import (
	"io"
	"strings"
)

// CodeLength is the number of digits in a submission code.
const CodeLength = 6

// Session is a lookup result binding a submission code to a job.
type Session struct {
	Code     string `json:"code"`
	JobTitle string `json:"jobTitle"`
}

// Attachment is a single binary file attached to a draft. Open is called once
// per submit attempt so a failed attempt can be retried.
type Attachment interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// Draft is the submission being composed by the submitter.
type Draft struct {
	File  Attachment
	URL   string
	Notes string
}

// HasFile reports whether a file is attached.
func (d Draft) HasFile() bool {
	return d.File != nil
}

// IsSubmittable reports whether the draft carries a file or a non-blank URL.
func (d Draft) IsSubmittable() bool {
	return d.HasFile() || strings.TrimSpace(d.URL) != ""
}

// LinkSubmission is the JSON body of a submission without a file.
type LinkSubmission struct {
	URL   string `json:"url"`
	Notes string `json:"notes"`
}

// SanitizeCode keeps the digits of raw, in order, up to CodeLength of them.
func SanitizeCode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == CodeLength {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
