package docs2prompt

import "context"

// TokenCounter estimates how many model tokens a text occupies.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
