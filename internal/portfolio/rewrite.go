package portfolio

import "regexp"

// phraseRewrite is one (pattern, replacement) pair. The list below is
// applied in order; later patterns see the output of earlier ones.
type phraseRewrite struct {
	re   *regexp.Regexp
	repl string
}

// phraseRewrites is the fixed, ordered substitution table used to punch
// up imported summaries and role descriptions. Deterministic text
// rewriting only — no generation.
var phraseRewrites = []phraseRewrite{
	{regexp.MustCompile(`(?i)\bresponsible for\b`), "spearheaded"},
	{regexp.MustCompile(`(?i)\bworked on\b`), "delivered"},
	{regexp.MustCompile(`(?i)\bhelped\b`), "drove"},
	{regexp.MustCompile(`(?i)\bparticipated in\b`), "co-led"},
	{regexp.MustCompile(`(?i)\bdeveloper\b`), "mission-critical developer"},
	{regexp.MustCompile(`(?i)\bdeveloped\b`), "engineered"},
	{regexp.MustCompile(`(?i)\bimproved\b`), "dramatically improved"},
	{regexp.MustCompile(`(?i)\bmanaged\b`), "orchestrated"},
}

// Fixed framing applied around rewritten hero summaries and project
// descriptions on import.
const (
	summaryPrefix  = "🚀 Building software that ships and scales.\n\n"
	summaryClosing = "\n\nAlways open to hard problems and good coffee."
	projectPrefix  = "🚀 "
	projectClosing = " Built to production standards, end to end."
)

// ApplyPhraseRewrites runs the fixed substitution table over s, in order.
func ApplyPhraseRewrites(s string) string {
	for _, pr := range phraseRewrites {
		s = pr.re.ReplaceAllString(s, pr.repl)
	}
	return s
}

// RewriteSummary applies the phrase table and wraps the result in the
// fixed hero framing.
func RewriteSummary(s string) string {
	if s == "" {
		return ""
	}
	return summaryPrefix + ApplyPhraseRewrites(s) + summaryClosing
}

// RewriteProjectDescription applies the fixed project framing.
func RewriteProjectDescription(s string) string {
	if s == "" {
		return ""
	}
	return projectPrefix + ApplyPhraseRewrites(s) + projectClosing
}
