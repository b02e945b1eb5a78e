package domain

import "errors"

var (
	// ErrMissingInput signals a required request field that is absent or blank.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidInput signals a request field that is present but unacceptable.
	ErrInvalidInput = errors.New("invalid input")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrDatasetInvalid signals a pose dataset that cannot be read or decoded.
	ErrDatasetInvalid = errors.New("invalid pose dataset")

	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationProviderError signals a text generation provider failure.
	ErrGenerationProviderError = errors.New("generation provider error")
	// ErrProviderRejected signals a provider refusal that retrying will not fix (bad request, auth, unknown model).
	ErrProviderRejected = errors.New("request rejected by provider")
	// ErrSpeechProviderError signals a speech synthesis provider failure.
	ErrSpeechProviderError = errors.New("speech provider error")
)
