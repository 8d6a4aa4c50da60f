package models

// Task is the closed set of analysis operations the assistant can run.
// Every task renders to exactly one prompt (the job-search task to two,
// issued sequentially) and is routed through a single dispatch.
type Task int

const (
	TaskSummarize Task = iota
	TaskSummarizeResume
	TaskSummarizeRequirements
	TaskAnalyzeAlignment
	TaskScoreATS
	TaskGenerateCoverLetter
	TaskGenerateJobSearchQuery
)

func (t Task) String() string {
	switch t {
	case TaskSummarize:
		return "summarize"
	case TaskSummarizeResume:
		return "summarize_resume"
	case TaskSummarizeRequirements:
		return "summarize_requirements"
	case TaskAnalyzeAlignment:
		return "analyze_alignment"
	case TaskScoreATS:
		return "score_ats"
	case TaskGenerateCoverLetter:
		return "generate_cover_letter"
	case TaskGenerateJobSearchQuery:
		return "generate_job_search_query"
	default:
		return "unknown"
	}
}

// TaskInput carries the free-text inputs a task variant may need. Which
// fields are read depends on the variant; session-held state (the resume
// summary) is never passed here.
type TaskInput struct {
	Text           string
	JobDescription string
	Instructions   string
}

// TaskResult is the structured outcome of one task run. Report is always
// set for report-producing tasks; FitPercentage is only recovered for
// alignment analysis and may legitimately be nil; URL is only set for the
// job-search task.
type TaskResult struct {
	Report        string
	FitPercentage *int
	URL           string
}
