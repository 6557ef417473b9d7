package counterparty

import (
	"context"
	"fmt"
	"strings"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

// ListSavedSendersUseCase lists remembered sender names.
type ListSavedSendersUseCase struct {
	savedSenderRepo adapter.SavedSenderRepository
}

// NewListSavedSendersUseCase creates a new ListSavedSendersUseCase instance.
func NewListSavedSendersUseCase(savedSenderRepo adapter.SavedSenderRepository) *ListSavedSendersUseCase {
	return &ListSavedSendersUseCase{
		savedSenderRepo: savedSenderRepo,
	}
}

// Execute returns all distinct saved sender names, ascending.
func (uc *ListSavedSendersUseCase) Execute(ctx context.Context) ([]string, error) {
	senders, err := uc.savedSenderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved senders: %w", err)
	}
	return senders, nil
}

// SaveSenderUseCase remembers a sender name for entry-form suggestions.
type SaveSenderUseCase struct {
	savedSenderRepo adapter.SavedSenderRepository
}

// NewSaveSenderUseCase creates a new SaveSenderUseCase instance.
func NewSaveSenderUseCase(savedSenderRepo adapter.SavedSenderRepository) *SaveSenderUseCase {
	return &SaveSenderUseCase{
		savedSenderRepo: savedSenderRepo,
	}
}

// Execute trims and stores the sender name. Saving a name that already
// exists is not an error.
func (uc *SaveSenderUseCase) Execute(ctx context.Context, sender string) (string, error) {
	trimmed := strings.TrimSpace(sender)
	if trimmed == "" {
		return "", domainerror.NewCounterpartyError(
			domainerror.ErrCodeEmptySenderName,
			"sender is required and must be a non-empty string",
			domainerror.ErrEmptySenderName,
		)
	}

	if err := uc.savedSenderRepo.Save(ctx, trimmed); err != nil {
		return "", fmt.Errorf("failed to save sender: %w", err)
	}
	return trimmed, nil
}

// DeleteSenderUseCase removes a remembered sender name.
type DeleteSenderUseCase struct {
	savedSenderRepo adapter.SavedSenderRepository
}

// NewDeleteSenderUseCase creates a new DeleteSenderUseCase instance.
func NewDeleteSenderUseCase(savedSenderRepo adapter.SavedSenderRepository) *DeleteSenderUseCase {
	return &DeleteSenderUseCase{
		savedSenderRepo: savedSenderRepo,
	}
}

// Execute deletes the sender name; deleting an unknown name succeeds.
func (uc *DeleteSenderUseCase) Execute(ctx context.Context, sender string) error {
	trimmed := strings.TrimSpace(sender)
	if trimmed == "" {
		return domainerror.NewCounterpartyError(
			domainerror.ErrCodeEmptySenderName,
			"sender parameter is required",
			domainerror.ErrEmptySenderName,
		)
	}

	if err := uc.savedSenderRepo.Delete(ctx, trimmed); err != nil {
		return fmt.Errorf("failed to delete sender: %w", err)
	}
	return nil
}
