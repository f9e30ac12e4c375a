package usecases

import (
	"context"
	"fmt"

	"dictcc-go/internal/domain/dictionary"
)

// TranslationUseCase performs dictionary lookups end to end: normalize the
// term, generate the pattern groups, open the database, and stream every
// match to the caller's consumer.
type TranslationUseCase struct {
	opener    dictionary.StoreOpener
	generator *dictionary.Generator
}

// NewTranslationUseCase creates a new translation use case
func NewTranslationUseCase(opener dictionary.StoreOpener, generator *dictionary.Generator) *TranslationUseCase {
	return &TranslationUseCase{
		opener:    opener,
		generator: generator,
	}
}

// Translate looks up term in the database at dbPath and feeds each match to
// consumer in ranked order. The database is opened for the duration of this
// call only. A consumer error stops the stream and is returned unchanged;
// zero matches is a success.
func (uc *TranslationUseCase) Translate(
	ctx context.Context,
	dbPath string,
	term string,
	direction dictionary.Direction,
	consumer dictionary.Consumer,
) error {
	store, err := uc.opener.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer store.Close()

	patterns := uc.generator.Generate(dictionary.CollapseSpaces(term))

	return store.StreamMatches(ctx, patterns, direction, consumer)
}
