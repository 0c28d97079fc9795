package usecase

import "context"

// ContentGenerator issues one completion call per invocation.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}
