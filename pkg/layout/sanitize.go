package layout

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

func sanitizeFragment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(fragmentSanitizer().Sanitize(trimmed))
}

// fragmentSanitizer allows the structural and text markup a form fragment
// legitimately emits while stripping scripts and event handlers. Form
// controls themselves are pack territory and stay disallowed here.
func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("fieldset", "legend", "label", "output")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs("class", "id").Globally()

		fragmentPolicy = policy
	})
	return fragmentPolicy
}
