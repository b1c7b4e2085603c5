package repository

import (
	"context"

	"fricoach/internal/model"
)

// ConversationRepository defines data access for conversation messages using
// SQL queries only. No business logic here — strictly persistence operations.
type ConversationRepository interface {
	// Append inserts a new conversation message. The caller provides required
	// fields (ID, CreatedAt); the stored row is returned.
	Append(ctx context.Context, msg *model.ConversationMessage) (*model.ConversationMessage, error)

	// ListByCustomer returns a page of a customer's messages ordered oldest
	// first, plus the customer's total message count.
	ListByCustomer(ctx context.Context, customerID string, pq PageQuery) (*PageResult[model.ConversationMessage], error)

	// CountByCustomer returns the number of stored messages for a customer.
	CountByCustomer(ctx context.Context, customerID string) (int, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
