package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"fricoach/internal/model"
	"fricoach/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var messageColumns = []string{"id", "customer_id", "role", "content", "metadata", "created_at"}

func TestConversationPostgres_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewConversationPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	msg := &model.ConversationMessage{
		ID:         "test-uuid",
		CustomerID: "CUST_001",
		Role:       model.RoleUser,
		Content:    "I am worried about money",
		Metadata:   map[string]string{"stress_level": "MODERATE"},
		CreatedAt:  now,
	}

	rows := sqlmock.NewRows(messageColumns).
		AddRow(msg.ID, msg.CustomerID, msg.Role, msg.Content, []byte(`{"stress_level":"MODERATE"}`), msg.CreatedAt)

	mock.ExpectQuery("INSERT INTO conversation_messages").
		WithArgs(msg.ID, msg.CustomerID, msg.Role, msg.Content, []byte(`{"stress_level":"MODERATE"}`), msg.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Append(ctx, msg)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, msg.ID, result.ID)
	assert.Equal(t, map[string]string{"stress_level": "MODERATE"}, result.Metadata)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationPostgres_Append_NilMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewConversationPostgres(db)
	now := time.Now().UTC()
	msg := &model.ConversationMessage{
		ID:         "test-uuid",
		CustomerID: "CUST_001",
		Role:       model.RoleAssistant,
		Content:    "reply",
		CreatedAt:  now,
	}

	rows := sqlmock.NewRows(messageColumns).
		AddRow(msg.ID, msg.CustomerID, msg.Role, msg.Content, []byte(`{}`), msg.CreatedAt)

	mock.ExpectQuery("INSERT INTO conversation_messages").
		WithArgs(msg.ID, msg.CustomerID, msg.Role, msg.Content, []byte(`{}`), msg.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Append(context.Background(), msg)

	assert.NoError(t, err)
	assert.Empty(t, result.Metadata)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationPostgres_ListByCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewConversationPostgres(db)
	ctx := context.Background()

	t.Run("returns page and total", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM conversation_messages").
			WithArgs("CUST_001").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(messageColumns).
			AddRow("id-1", "CUST_001", "user", "hello", []byte(`{}`), time.Now()).
			AddRow("id-2", "CUST_001", "assistant", "hi", []byte(`{}`), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM conversation_messages WHERE customer_id").
			WithArgs("CUST_001", 10, 0).
			WillReturnRows(rows)

		res, err := repo.ListByCustomer(ctx, "CUST_001", repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, "id-1", res.Items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM conversation_messages").
			WithArgs("CUST_001").
			WillReturnError(errors.New("count fail"))

		res, err := repo.ListByCustomer(ctx, "CUST_001", repository.PageQuery{Limit: 10})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestConversationPostgres_CountByCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewConversationPostgres(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM conversation_messages").
		WithArgs("CUST_002").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.CountByCustomer(context.Background(), "CUST_002")

	assert.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
