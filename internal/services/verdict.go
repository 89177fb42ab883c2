package services

// Verdict is the discrete hiring-likelihood label for an overall score.
type Verdict string

const (
	VerdictExcellent Verdict = "Excellent"
	VerdictModerate  Verdict = "Moderate"
	VerdictWeak      Verdict = "Weak"
)

// ClassifyVerdict maps an overall score to its verdict band. Band lower
// bounds are inclusive: exactly 80 is Excellent, exactly 60 is Moderate.
func ClassifyVerdict(overallScore float64) Verdict {
	switch {
	case overallScore >= 80:
		return VerdictExcellent
	case overallScore >= 60:
		return VerdictModerate
	default:
		return VerdictWeak
	}
}
