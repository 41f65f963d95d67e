package main

import (
	"fmt"

	"github.com/nativebridge/portal-go/internal/portal/entity"
)

const timeLayout = "2006-01-02 15:04"

func printBanner(msg string) {
	if msg == "" {
		return
	}
	fmt.Println("! " + msg)
}

func printSession(session entity.Session) {
	fmt.Println("Job:  " + session.JobTitle)
	fmt.Println("Code: " + session.Code)
}

func printDone(msg string) {
	fmt.Println("Submission Complete")
	if msg != "" {
		fmt.Println(msg)
	}
	fmt.Println("Your client will review your submission inside NativeBridge.")
}

// printJob lists submissions with files numbered in the order download
// --index expects.
func printJob(job entity.Job) {
	fmt.Println(job.Title)
	fmt.Println("Status: " + job.Status)
	fmt.Println()

	if len(job.Submissions) == 0 {
		fmt.Println("No submissions yet.")
		return
	}

	n := 0
	for _, submission := range job.Submissions {
		fmt.Println("Submitted: " + formatSubmittedAt(submission.SubmittedAt))
		if submission.Notes != "" {
			fmt.Println("Notes: " + submission.Notes)
		}
		for _, file := range submission.Files {
			n++
			suffix := ""
			if file.Key == "" {
				suffix = " (unavailable)"
			}
			fmt.Printf("  [%d] %s%s\n", n, file.Name, suffix)
		}
		fmt.Println()
	}
}

// formatSubmittedAt shows a readable date in local time, or the raw value the
// server sent when it is not one.
func formatSubmittedAt(ts entity.Timestamp) string {
	if t, ok := ts.Time(); ok {
		return t.Local().Format(timeLayout)
	}
	if ts == "" {
		return "unknown"
	}
	return string(ts)
}
