package llm

import (
	"errors"
	"net/http"
	"strings"

	"github.com/evandrarf/adaptive-learning-be/internal/pkg/apperr"
)

// classifyError turns a provider failure into the application taxonomy. The
// structured status code wins; the message is only inspected when the
// transport reported none.
func classifyError(err error) error {
	var tErr *TransportError
	if errors.As(err, &tErr) && tErr.StatusCode != 0 {
		if tErr.StatusCode == http.StatusTooManyRequests || tErr.Status == "RESOURCE_EXHAUSTED" {
			return apperr.QuotaExceeded(err)
		}
		return apperr.Generation("generate content failed", err)
	}

	if looksLikeQuota(err.Error()) {
		return apperr.QuotaExceeded(err)
	}
	return apperr.Generation("generate content failed", err)
}

func looksLikeQuota(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit")
}
