package classify

import (
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
)

// Classify maps free text to exactly one intent. The rule table is
// scanned top to bottom and the first rule with a trigger substring
// present wins; there is no scoring or longest-match preference.
//
// Unrecognized text falls back to a follow intent. That keeps the agent
// responsive to chatter instead of standing still; it is deliberate
// policy, not an error path.
func Classify(text string) agent.Intent {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, r := range rules {
		if !hasAnyTrigger(normalized, r.triggers) {
			continue
		}
		intent, ok := r.build(normalized)
		if !ok {
			continue
		}
		return intent
	}
	return agent.Intent{Kind: agent.IntentFollow}
}

func hasAnyTrigger(text string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
