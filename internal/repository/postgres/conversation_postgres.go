package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"fricoach/internal/model"
	"fricoach/internal/repository"
)

// ConversationPostgres is a PostgreSQL implementation of
// repository.ConversationRepository. It uses database/sql with parameterized
// queries and contains no business logic.
type ConversationPostgres struct {
	db *sql.DB
}

// NewConversationPostgres creates a new ConversationPostgres repository.
func NewConversationPostgres(db *sql.DB) *ConversationPostgres {
	return &ConversationPostgres{db: db}
}

var _ repository.ConversationRepository = (*ConversationPostgres)(nil)

// Append inserts a new message row and returns the stored record.
func (r *ConversationPostgres) Append(ctx context.Context, msg *model.ConversationMessage) (*model.ConversationMessage, error) {
	meta, err := marshalMetadata(msg.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	const q = `
		INSERT INTO conversation_messages (id, customer_id, role, content, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, customer_id, role, content, metadata, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		msg.ID,
		msg.CustomerID,
		msg.Role,
		msg.Content,
		meta,
		msg.CreatedAt,
	)
	return scanMessage(row)
}

// ListByCustomer returns messages using LIMIT/OFFSET pagination, oldest first,
// and the customer's total message count.
func (r *ConversationPostgres) ListByCustomer(ctx context.Context, customerID string, pq repository.PageQuery) (*repository.PageResult[model.ConversationMessage], error) {
	total, err := r.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, customer_id, role, content, metadata, created_at
		FROM conversation_messages
		WHERE customer_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, customerID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ConversationMessage, 0)
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ConversationMessage]{
		Items: items,
		Total: total,
	}, nil
}

// CountByCustomer returns the number of stored messages for a customer.
func (r *ConversationPostgres) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	const q = `SELECT COUNT(*) FROM conversation_messages WHERE customer_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, q, customerID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (*model.ConversationMessage, error) {
	var (
		out  model.ConversationMessage
		meta []byte
	)
	if err := row.Scan(
		&out.ID,
		&out.CustomerID,
		&out.Role,
		&out.Content,
		&meta,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &out.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return &out, nil
}

func marshalMetadata(m map[string]string) ([]byte, error) {
	if m == nil {
		return []byte(`{}`), nil
	}
	return json.Marshal(m)
}
