package domain

// SubmissionState is the lifecycle of a translation flashcard submission
type SubmissionState string

const (
	SubmissionIdle    SubmissionState = "idle"
	SubmissionLoading SubmissionState = "loading"
	SubmissionSuccess SubmissionState = "success"
	SubmissionError   SubmissionState = "error"
)
