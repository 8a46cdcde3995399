//go:generate go run go.uber.org/mock/mockgen -source=conversation_repository.go -destination=../mocks/mock_conversation_repository.go -package=mocks

package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/pr-poehali-dev/meega-creation/internal/apperrors"
	"github.com/pr-poehali-dev/meega-creation/internal/models"
)

type ConversationRepository interface {
	ListChatSummaries(ctx context.Context, callerID int64) ([]*models.ChatSummary, error)
	ListMessages(ctx context.Context, chatID int64) ([]*models.MessageView, error)
	ListVoiceRooms(ctx context.Context) ([]*models.VoiceRoom, error)
	CreateMessage(ctx context.Context, chatID, senderID int64, content string) (*models.MessageView, error)
	AddReaction(ctx context.Context, messageID, userID int64, emoji string) error
	CreateChat(ctx context.Context, name, chatType string, creatorID int64) (int64, error)
	InitializeTables() error
}

type conversationRepository struct {
	db *sql.DB
}

func NewConversationRepository(db *sql.DB) ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

func (r *conversationRepository) InitializeTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		display_name TEXT NOT NULL,
		avatar_color TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS chats (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'group',
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS chat_members (
		id BIGSERIAL PRIMARY KEY,
		chat_id BIGINT NOT NULL REFERENCES chats(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id),
		role TEXT NOT NULL DEFAULT 'member',
		UNIQUE(chat_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		chat_id BIGINT NOT NULL REFERENCES chats(id) ON DELETE CASCADE,
		sender_id BIGINT NOT NULL REFERENCES users(id),
		content TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS message_reactions (
		id BIGSERIAL PRIMARY KEY,
		message_id BIGINT NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id),
		emoji TEXT NOT NULL,
		UNIQUE(message_id, user_id, emoji)
	);

	CREATE INDEX IF NOT EXISTS idx_chat_members_user_id ON chat_members(user_id);
	CREATE INDEX IF NOT EXISTS idx_messages_chat_id ON messages(chat_id);
	CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at);
	CREATE INDEX IF NOT EXISTS idx_message_reactions_message_id ON message_reactions(message_id);
	`

	_, err := r.db.Exec(query)
	return err
}

func (r *conversationRepository) ListChatSummaries(ctx context.Context, callerID int64) ([]*models.ChatSummary, error) {
	query := `
	SELECT DISTINCT c.id, c.name, c.type, c.created_at,
		(SELECT COUNT(*) FROM chat_members WHERE chat_id = c.id) AS member_count,
		(SELECT content FROM messages WHERE chat_id = c.id ORDER BY created_at DESC LIMIT 1) AS last_message,
		(SELECT created_at FROM messages WHERE chat_id = c.id ORDER BY created_at DESC LIMIT 1) AS last_message_time,
		(SELECT COUNT(*) FROM messages m
			WHERE m.chat_id = c.id AND m.sender_id != $1
			AND m.created_at > COALESCE((SELECT MAX(created_at) FROM messages WHERE chat_id = c.id AND sender_id = $1), '1970-01-01')) AS unread_count
	FROM chats c
	JOIN chat_members cm ON c.id = cm.chat_id
	WHERE cm.user_id = $1
	ORDER BY last_message_time DESC NULLS LAST
	`

	rows, err := r.db.QueryContext(ctx, query, callerID)
	if err != nil {
		return nil, apperrors.NewStorage("list chat summaries", err)
	}
	defer rows.Close()

	var summaries []*models.ChatSummary
	for rows.Next() {
		var s models.ChatSummary
		var lastMessage sql.NullString
		var lastMessageTime sql.NullTime
		err := rows.Scan(
			&s.ID, &s.Name, &s.Type, &s.CreatedAt,
			&s.MemberCount, &lastMessage, &lastMessageTime, &s.UnreadCount,
		)
		if err != nil {
			return nil, apperrors.NewStorage("scan chat summary", err)
		}
		if lastMessage.Valid {
			s.LastMessage = &lastMessage.String
		}
		if lastMessageTime.Valid {
			s.LastMessageTime = &lastMessageTime.Time
		}
		summaries = append(summaries, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorage("list chat summaries", err)
	}

	return summaries, nil
}

func (r *conversationRepository) ListMessages(ctx context.Context, chatID int64) ([]*models.MessageView, error) {
	query := `
	SELECT m.id, m.chat_id, m.content, m.created_at, m.sender_id,
		u.display_name, u.avatar_color,
		ARRAY_AGG(DISTINCT mr.emoji) FILTER (WHERE mr.emoji IS NOT NULL) AS reactions
	FROM messages m
	JOIN users u ON m.sender_id = u.id
	LEFT JOIN message_reactions mr ON m.id = mr.message_id
	WHERE m.chat_id = $1
	GROUP BY m.id, u.display_name, u.avatar_color
	ORDER BY m.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, apperrors.NewStorage("list messages", err)
	}
	defer rows.Close()

	var messages []*models.MessageView
	for rows.Next() {
		var m models.MessageView
		var reactions []string
		err := rows.Scan(
			&m.ID, &m.ChatID, &m.Content, &m.CreatedAt, &m.SenderID,
			&m.SenderName, &m.AvatarColor, pq.Array(&reactions),
		)
		if err != nil {
			return nil, apperrors.NewStorage("scan message", err)
		}
		if reactions == nil {
			reactions = []string{}
		}
		m.Reactions = reactions
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorage("list messages", err)
	}

	return messages, nil
}

func (r *conversationRepository) ListVoiceRooms(ctx context.Context) ([]*models.VoiceRoom, error) {
	query := `
	SELECT c.id, c.name, COUNT(cm.user_id) AS participants
	FROM chats c
	LEFT JOIN chat_members cm ON c.id = cm.chat_id
	WHERE c.type = 'voice'
	GROUP BY c.id, c.name
	ORDER BY c.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorage("list voice rooms", err)
	}
	defer rows.Close()

	var rooms []*models.VoiceRoom
	for rows.Next() {
		var room models.VoiceRoom
		if err := rows.Scan(&room.ID, &room.Name, &room.Participants); err != nil {
			return nil, apperrors.NewStorage("scan voice room", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorage("list voice rooms", err)
	}

	return rooms, nil
}

// CreateMessage inserts the message and re-reads it joined with the
// sender profile inside one transaction, so the returned record always
// reflects a committed row.
func (r *conversationRepository) CreateMessage(ctx context.Context, chatID, senderID int64, content string) (*models.MessageView, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewStorage("begin send transaction", err)
	}
	defer tx.Rollback()

	insertQuery := `
	INSERT INTO messages (chat_id, sender_id, content)
	VALUES ($1, $2, $3)
	RETURNING id
	`

	var messageID int64
	if err := tx.QueryRowContext(ctx, insertQuery, chatID, senderID, content).Scan(&messageID); err != nil {
		return nil, apperrors.NewStorage("insert message", err)
	}

	selectQuery := `
	SELECT m.id, m.chat_id, m.content, m.created_at, m.sender_id,
		u.display_name, u.avatar_color
	FROM messages m
	JOIN users u ON m.sender_id = u.id
	WHERE m.id = $1
	`

	var m models.MessageView
	err = tx.QueryRowContext(ctx, selectQuery, messageID).Scan(
		&m.ID, &m.ChatID, &m.Content, &m.CreatedAt, &m.SenderID,
		&m.SenderName, &m.AvatarColor,
	)
	if err != nil {
		return nil, apperrors.NewStorage("read back message", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.NewStorage("commit send transaction", err)
	}

	m.Reactions = []string{}
	return &m, nil
}

// AddReaction records the (message, user, emoji) triple. A duplicate
// triple hits the unique constraint and is absorbed by the store as a
// no-op rather than reported as a conflict.
func (r *conversationRepository) AddReaction(ctx context.Context, messageID, userID int64, emoji string) error {
	query := `
	INSERT INTO message_reactions (message_id, user_id, emoji)
	VALUES ($1, $2, $3)
	ON CONFLICT (message_id, user_id, emoji) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, messageID, userID, emoji); err != nil {
		return apperrors.NewStorage("insert reaction", err)
	}

	return nil
}

// CreateChat creates the chat and the creator's admin membership as one
// transaction. A failed membership insert rolls the chat back.
func (r *conversationRepository) CreateChat(ctx context.Context, name, chatType string, creatorID int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperrors.NewStorage("begin create-chat transaction", err)
	}
	defer tx.Rollback()

	chatQuery := `
	INSERT INTO chats (name, type, created_by)
	VALUES ($1, $2, $3)
	RETURNING id
	`

	var chatID int64
	if err := tx.QueryRowContext(ctx, chatQuery, name, chatType, creatorID).Scan(&chatID); err != nil {
		return 0, apperrors.NewStorage("insert chat", err)
	}

	memberQuery := `
	INSERT INTO chat_members (chat_id, user_id, role)
	VALUES ($1, $2, 'admin')
	`

	if _, err := tx.ExecContext(ctx, memberQuery, chatID, creatorID); err != nil {
		return 0, apperrors.NewStorage("insert creator membership", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, apperrors.NewStorage("commit create-chat transaction", err)
	}

	return chatID, nil
}
