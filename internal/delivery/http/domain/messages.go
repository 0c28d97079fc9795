package domain

import "github.com/evandrarf/adaptive-learning-be/internal/pkg/apperr"

var (
	AI_QUOTA_EXCEEDED = "AI service quota exceeded. Please try again later."
	AI_NOT_CONFIGURED = "AI service not configured. Please check server configuration."

	EXPLAIN_FAILED          = "Failed to generate explanation"
	CONTENT_GENERATE_FAILED = "Failed to generate content"
	LESSON_GENERATE_FAILED  = "Failed to generate lesson"
	STUDY_TOOL_FAILED       = "Study tool failed"
	COURSE_GENERATE_FAILED  = "Failed to generate course"
	SAGA_GENERATE_FAILED    = "Failed to personalize saga"
	MODELS_LIST_FAILED      = "Failed to list models"
	INVALID_REQUEST_BODY    = "Invalid request body"
	COURSE_TOPIC_REQUIRED   = "Topic is required"
)

// ErrorMessage picks the detail shown to the client. Quota and configuration
// failures get fixed wording, invalid requests echo their own message, and
// everything else gets failed with the cause appended.
func ErrorMessage(err error, failed string) string {
	switch apperr.KindOf(err) {
	case apperr.KindQuotaExceeded:
		return AI_QUOTA_EXCEEDED
	case apperr.KindConfiguration:
		return AI_NOT_CONFIGURED
	case apperr.KindInvalidRequest:
		return err.Error()
	}
	return failed + ": " + err.Error()
}
