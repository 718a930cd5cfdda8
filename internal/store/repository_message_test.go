package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/models"
)

func newTestMessageRepo(t *testing.T) (MessageRepository, sqlmock.Sqlmock) {
	db, mock, _ := newTestDB(t)
	return NewMessageRepository(db, logger.Nop()), mock
}

func messageRows(messages ...models.Message) *sqlmock.Rows {
	rows := sqlmock.NewRows(messageColumns)
	for _, m := range messages {
		rows.AddRow(m.MessageID, m.AuthorID, m.Algorithm, m.Content, m.Key, m.CreatedAt, m.UpdatedAt)
	}
	return rows
}

func TestSaveMessage_Success(t *testing.T) {
	repo, mock := newTestMessageRepo(t)
	now := time.Now().UTC()

	in := models.Message{AuthorID: 1, Algorithm: "caesar", Content: "Ifmmp", Key: "1"}
	stored := in
	stored.MessageID = 10
	stored.CreatedAt = now
	stored.UpdatedAt = now

	mock.ExpectQuery("INSERT INTO messages \\(author_id,algorithm,content,cipher_key,created_at,updated_at\\)").
		WithArgs(int64(1), "caesar", "Ifmmp", "1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(messageRows(stored))

	saved, err := repo.SaveMessage(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, stored, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMessage_DBError(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectQuery("INSERT INTO messages").
		WillReturnError(pgError("23503"))

	_, err := repo.SaveMessage(context.Background(), models.Message{AuthorID: 99})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetMessage(t *testing.T) {
	repo, mock := newTestMessageRepo(t)
	m := models.Message{MessageID: 3, AuthorID: 1, Algorithm: "hill", Content: "e0", Key: "3,2;5,7"}

	mock.ExpectQuery("SELECT .* FROM messages WHERE message_id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(messageRows(m))

	got, err := repo.GetMessage(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestGetMessage_NotFound(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectQuery("SELECT .* FROM messages").
		WithArgs(int64(404)).
		WillReturnRows(messageRows())

	_, err := repo.GetMessage(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestGetLatestMessage(t *testing.T) {
	repo, mock := newTestMessageRepo(t)
	m := models.Message{MessageID: 8, Algorithm: "playfair", Content: "CD", Key: "{}"}

	mock.ExpectQuery("ORDER BY message_id DESC LIMIT 1").
		WillReturnRows(messageRows(m))

	got, err := repo.GetLatestMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.MessageID)
}

func TestGetLatestMessage_Empty(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectQuery("ORDER BY message_id DESC LIMIT 1").
		WillReturnRows(messageRows())

	_, err := repo.GetLatestMessage(context.Background())
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestListMessages(t *testing.T) {
	repo, mock := newTestMessageRepo(t)
	a := models.Message{MessageID: 1, Algorithm: "caesar", Content: "x", Key: "1"}
	b := models.Message{MessageID: 2, Algorithm: "hill", Content: "y", Key: "1"}

	mock.ExpectQuery("SELECT .* FROM messages ORDER BY message_id ASC$").
		WillReturnRows(messageRows(a, b))

	got, err := repo.ListMessages(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []models.Message{a, b}, got)
}

func TestListMessages_WithLimit(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectQuery("ORDER BY message_id ASC LIMIT 5").
		WillReturnRows(messageRows())

	got, err := repo.ListMessages(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListMessages_QueryError(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.ListMessages(context.Background(), 0)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListMessages_ScanError(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"message_id"}).AddRow(1))

	_, err := repo.ListMessages(context.Background(), 0)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListMessages_RowsError(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	rows := messageRows(models.Message{MessageID: 1}).RowError(0, errors.New("broken row"))
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.ListMessages(context.Background(), 0)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestUpdateMessage_OnlyPatchedFields(t *testing.T) {
	repo, mock := newTestMessageRepo(t)
	content := "new ciphertext"
	m := models.Message{MessageID: 7, Content: content}

	mock.ExpectQuery("UPDATE messages SET content = \\$1, updated_at = \\$2 WHERE message_id = \\$3 RETURNING").
		WithArgs(content, sqlmock.AnyArg(), int64(7)).
		WillReturnRows(messageRows(m))

	got, err := repo.UpdateMessage(context.Background(), 7, models.MessagePatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, content, got.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMessage_NotFound(t *testing.T) {
	repo, mock := newTestMessageRepo(t)
	key := "5"

	mock.ExpectQuery("UPDATE messages").
		WillReturnRows(messageRows())

	_, err := repo.UpdateMessage(context.Background(), 1, models.MessagePatch{Key: &key})
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
