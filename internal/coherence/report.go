package coherence

// IssueCategory tags a validation finding.
type IssueCategory string

const (
	IssueTheme       IssueCategory = "theme"
	IssueNarrative   IssueCategory = "narrative"
	IssueTone        IssueCategory = "tone"
	IssueAudience    IssueCategory = "audience"
	IssueBenefit     IssueCategory = "benefit"
	IssueCompletion  IssueCategory = "completion"
	IssueSpecificity IssueCategory = "specificity"
)

// Issue is one human-readable validation finding.
type Issue struct {
	Category IssueCategory
	Message  string
}

// Report is the outcome of validating a headline/caption pair. It is derived
// per call and never persisted.
type Report struct {
	Score         int
	Issues        []Issue
	DominantTheme string
	DominantTone  string
	Coherent      bool
}

// IsCoherent reports whether the pair passes the acceptance rule: a clean
// perfect run passes outright, but any finding demands a materially higher
// score, so a lucky high score with a named defect still fails.
func (r Report) IsCoherent() bool {
	return r.Coherent
}
