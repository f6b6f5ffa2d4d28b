package models

type RuleKind string

const (
	RuleStatMatch  RuleKind = "stat_match"
	RuleRegexMatch RuleKind = "regex_match"
	RuleTextMatch  RuleKind = "text_match"
)

// ContentRule is one check applied to the fetched file content. Target is
// only consulted for stat_match (the line selector); regex_match and
// text_match keep it for reporting.
type ContentRule struct {
	Kind     RuleKind `json:"type"`
	Target   string   `json:"target"`
	Expected string   `json:"expected"`
}

type TargetFile struct {
	Path   string `json:"path"`
	Branch string `json:"branch"`
}

type CommitVerification struct {
	MessagePattern string `json:"msg_pattern"`
	MaxCommits     int    `json:"max_commits"`
}

type VerificationConfig struct {
	TargetRepo         string              `json:"target_repo"`
	TargetFile         TargetFile          `json:"target_file"`
	RequiredStructures []string            `json:"required_structures"`
	ContentRules       []ContentRule       `json:"content_rules"`
	CommitVerification *CommitVerification `json:"commit_verification"`
}
