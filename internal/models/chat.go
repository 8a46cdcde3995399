package models

import (
	"time"
)

type User struct {
	ID          int64
	DisplayName string
	AvatarColor string
}

type Chat struct {
	ID        int64
	Name      string
	Type      string
	CreatedBy int64
	CreatedAt time.Time
}

type ChatMember struct {
	ID     int64
	ChatID int64
	UserID int64
	Role   string
}

type Message struct {
	ID        int64
	ChatID    int64
	SenderID  int64
	Content   string
	CreatedAt time.Time
}

type MessageReaction struct {
	ID        int64
	MessageID int64
	UserID    int64
	Emoji     string
}

// ChatSummary is one row of the chat listing: a chat the caller belongs
// to, annotated with membership and message aggregates. LastMessage and
// LastMessageTime are nil for chats without messages.
type ChatSummary struct {
	ID              int64
	Name            string
	Type            string
	CreatedAt       time.Time
	MemberCount     int
	LastMessage     *string
	LastMessageTime *time.Time
	UnreadCount     int
}

// MessageView is a message joined with its sender profile and the
// distinct set of emoji reacted to it. Reactions is never nil.
type MessageView struct {
	ID          int64
	ChatID      int64
	SenderID    int64
	SenderName  string
	AvatarColor string
	Content     string
	CreatedAt   time.Time
	Reactions   []string
}

type VoiceRoom struct {
	ID           int64
	Name         string
	Participants int
}
