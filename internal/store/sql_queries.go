package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/cipher-chat/models"
)

const (
	usersTable    = "users"
	messagesTable = "messages"
)

var (
	userColumns    = []string{"user_id", "login", "password_hash", "created_at"}
	messageColumns = []string{"message_id", "author_id", "algorithm", "content", "cipher_key", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("login", "password_hash", "created_at").
		Values(user.Login, user.PasswordHash, now).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSaveMessageQuery(b sq.StatementBuilderType, message models.Message, now time.Time) (string, []any, error) {
	query, args, err := b.Insert(messagesTable).
		Columns("author_id", "algorithm", "content", "cipher_key", "created_at", "updated_at").
		Values(message.AuthorID, message.Algorithm, message.Content, message.Key, now, now).
		Suffix(returning(messageColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetMessageQuery(b sq.StatementBuilderType, messageID int64) (string, []any, error) {
	query, args, err := b.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"message_id": messageID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListMessagesQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	sb := b.Select(messageColumns...).
		From(messagesTable).
		OrderBy("message_id ASC")
	if limit > 0 {
		sb = sb.Limit(limit)
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLatestMessageQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(messageColumns...).
		From(messagesTable).
		OrderBy("message_id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateMessageQuery sets only the non-nil fields of patch and
// always bumps updated_at.
func buildUpdateMessageQuery(b sq.StatementBuilderType, messageID int64, patch models.MessagePatch, now time.Time) (string, []any, error) {
	ub := b.Update(messagesTable)
	if patch.Algorithm != nil {
		ub = ub.Set("algorithm", *patch.Algorithm)
	}
	if patch.Content != nil {
		ub = ub.Set("content", *patch.Content)
	}
	if patch.Key != nil {
		ub = ub.Set("cipher_key", *patch.Key)
	}

	query, args, err := ub.Set("updated_at", now).
		Where(sq.Eq{"message_id": messageID}).
		Suffix(returning(messageColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (models.User, error) {
	var user models.User
	err := s.Scan(&user.UserID, &user.Login, &user.PasswordHash, &user.CreatedAt)
	return user, err
}

func scanMessage(s scanner) (models.Message, error) {
	var m models.Message
	err := s.Scan(&m.MessageID, &m.AuthorID, &m.Algorithm, &m.Content, &m.Key, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
