package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// subscriptionService implements the SubscriptionService interface
type subscriptionService struct {
	client *Client
}

func (s *subscriptionService) List(ctx context.Context, params *ListParams) (*SubscriptionList, error) {
	raw, err := s.client.fetchList(ctx, ResourceSubscriptions, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	var subscriptions []*Subscription
	pg, err := decodeList(raw, "subscriptions", &subscriptions)
	if err != nil {
		return nil, err
	}

	return &SubscriptionList{Subscriptions: subscriptions, Pagination: pg}, nil
}

func (s *subscriptionService) Get(ctx context.Context, subscriptionID string) (*Subscription, error) {
	raw, err := s.client.fetchOne(ctx, ResourceSubscriptions, subscriptionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get subscription")
	}

	var subscription Subscription
	if err := decodeObject(raw, "subscription", &subscription); err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (s *subscriptionService) Create(ctx context.Context, params *CreateSubscriptionParams) (*Subscription, error) {
	if params == nil {
		params = &CreateSubscriptionParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.client.mutate(ctx, http.MethodPost, "/subscriptions", ResourceSubscriptions, params, &raw, "Subscription created"); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	var subscription Subscription
	if err := decodeObject(raw, "subscription", &subscription); err != nil {
		return nil, err
	}
	return &subscription, nil
}

// Cancel cancels a subscription. The record survives with status canceled;
// Delete removes it outright.
func (s *subscriptionService) Cancel(ctx context.Context, subscriptionID string) (*Subscription, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, ErrInvalidID
	}

	body := map[string]string{"status": string(SubscriptionCanceled)}

	var raw json.RawMessage
	if err := s.client.mutate(ctx, http.MethodPut, "/subscriptions/"+subscriptionID, ResourceSubscriptions, body, &raw, "Subscription canceled"); err != nil {
		return nil, errors.Wrap(err, "failed to cancel subscription")
	}

	var subscription Subscription
	if err := decodeObject(raw, "subscription", &subscription); err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (s *subscriptionService) Delete(ctx context.Context, subscriptionID string) error {
	if strings.TrimSpace(subscriptionID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/subscriptions/"+subscriptionID, ResourceSubscriptions, nil, nil, "Subscription deleted"),
		"failed to delete subscription")
}
