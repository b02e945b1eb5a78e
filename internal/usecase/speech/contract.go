package speech

import "context"

// Speaker synthesizes WAV audio from text.
type Speaker interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
