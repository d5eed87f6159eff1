package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/repo"
)

type MarketingService struct {
	Repo *repo.GormRepo
}

// Subscribe reactivates a previously unsubscribed email; an already
// active subscription is a conflict.
func (s *MarketingService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email required", ErrValidation)
	}

	existing, err := s.Repo.GetSubscription(ctx, email)
	if err == nil {
		if existing.IsActive {
			return fmt.Errorf("%w: %s", ErrAlreadySubscribed, email)
		}
		return s.Repo.SetSubscriptionActive(ctx, email, true)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.Repo.CreateSubscription(ctx, &models.Newsletter{Email: email})
}

func (s *MarketingService) Unsubscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return fmt.Errorf("%w: email required", ErrValidation)
	}
	err := s.Repo.SetSubscriptionActive(ctx, email, false)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s not subscribed", ErrNotFound, email)
	}
	return err
}

func (s *MarketingService) RequestCallback(ctx context.Context, userID uint, phone, message string) (*models.CallbackRequest, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone required", ErrValidation)
	}
	req := models.CallbackRequest{
		UserID:  userID,
		Phone:   phone,
		Message: message,
	}
	if err := s.Repo.CreateCallbackRequest(ctx, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *MarketingService) ListCallbacks(ctx context.Context, userID uint) ([]models.CallbackRequest, error) {
	return s.Repo.ListCallbackRequests(ctx, userID)
}
