package usecase

import (
	"io"

	"github.com/evandrarf/adaptive-learning-be/internal/pkg/llm"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func mockClient(responses ...llm.MockResponse) (*llm.Client, *llm.MockProvider) {
	p := llm.NewMockProvider(responses...)
	return llm.NewClientWithProvider(p, "test-model", quietLogger()), p
}

func text(s string) llm.MockResponse {
	return llm.MockResponse{Text: s}
}

func fail(status int) llm.MockResponse {
	return llm.MockResponse{Err: &llm.TransportError{StatusCode: status, Err: io.ErrUnexpectedEOF}}
}

func intPtr(v int) *int { return &v }
