package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/evalhq/asset-verify/models"
)

// numberPattern extracts the first integer or decimal token on a line.
var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// RuleFailure identifies the first content rule that did not match.
type RuleFailure struct {
	Rule models.ContentRule
}

func (f *RuleFailure) String() string {
	return fmt.Sprintf("rule %s on %q: expected %q, not matched", f.Rule.Kind, f.Rule.Target, f.Rule.Expected)
}

type ContentService interface {
	// MissingStructures returns every required structure absent from content,
	// in config order.
	MissingStructures(content string, required []string) []string
	// CheckRules evaluates rules in order and returns the first failure, or
	// nil when all rules match.
	CheckRules(content string, rules []models.ContentRule) *RuleFailure
}

type contentService struct{}

func NewContentService() ContentService {
	return &contentService{}
}

func (s *contentService) MissingStructures(content string, required []string) []string {
	var missing []string
	for _, structure := range required {
		if !strings.Contains(content, structure) {
			missing = append(missing, structure)
		}
	}
	return missing
}

func (s *contentService) CheckRules(content string, rules []models.ContentRule) *RuleFailure {
	for _, rule := range rules {
		if !matches(content, rule) {
			return &RuleFailure{Rule: rule}
		}
	}
	return nil
}

func matches(content string, rule models.ContentRule) bool {
	switch rule.Kind {
	case models.RuleStatMatch:
		return statMatches(content, rule)
	case models.RuleRegexMatch:
		re, err := regexp.Compile(rule.Expected)
		return err == nil && re.MatchString(content)
	case models.RuleTextMatch:
		return strings.Contains(content, rule.Expected)
	default:
		return false
	}
}

// statMatches lets the first line containing the target decide: its first
// numeric token must equal the expected value as text. "1000" does not match
// an expected "1000.0"; the comparison is on the extracted string, not the
// number.
func statMatches(content string, rule models.ContentRule) bool {
	for _, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, rule.Target) {
			continue
		}
		return numberPattern.FindString(line) == rule.Expected
	}
	return false
}
