package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pr-poehali-dev/meega-creation/internal/apperrors"
	"github.com/pr-poehali-dev/meega-creation/internal/mocks"
	"github.com/pr-poehali-dev/meega-creation/internal/models"
	"github.com/pr-poehali-dev/meega-creation/internal/service"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockConversationService) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockConversationService(ctrl)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewHandler(mockSvc, logger), mockSvc
}

func TestHandler_CORSPreflight(t *testing.T) {
	req := require.New(t)
	handler, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodOptions, "/chats", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	req.Equal("Content-Type, X-User-Id", w.Header().Get("Access-Control-Allow-Headers"))
	req.Equal("86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestHandler_UnknownRoute(t *testing.T) {
	req := require.New(t)
	handler, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	req.Equal(http.StatusNotFound, w.Code)
	req.JSONEq(`{"error":"Not found"}`, w.Body.String())
}

func TestHandler_ListChats(t *testing.T) {
	t.Run("should serialize previews and null absent timestamps", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		preview := "hello"
		mockSvc.EXPECT().
			ListChats(gomock.Any(), int64(2)).
			Return([]*models.ChatSummary{
				{ID: 1, Name: "General", Type: "group", CreatedAt: ts, MemberCount: 3, LastMessage: &preview, LastMessageTime: &ts, UnreadCount: 2},
				{ID: 2, Name: "Quiet", Type: "group", CreatedAt: ts, MemberCount: 1},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/chats", nil)
		r.Header.Set("X-User-Id", "2")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)

		var body struct {
			Chats []map[string]any `json:"chats"`
		}
		req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		req.Len(body.Chats, 2)
		req.Equal("hello", body.Chats[0]["last_message"])
		req.Equal("2024-03-01T12:00:00Z", body.Chats[0]["last_message_time"])
		req.Nil(body.Chats[1]["last_message"])
		req.Nil(body.Chats[1]["last_message_time"])
	})

	t.Run("should reject missing caller header", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		mockSvc.EXPECT().ListChats(gomock.Any(), gomock.Any()).Times(0)

		r := httptest.NewRequest(http.MethodGet, "/chats", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("should reject non-integer caller header", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		mockSvc.EXPECT().ListChats(gomock.Any(), gomock.Any()).Times(0)

		r := httptest.NewRequest(http.MethodGet, "/chats", nil)
		r.Header.Set("X-User-Id", "alice")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListMessages(t *testing.T) {
	t.Run("should return messages with reaction rollup", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		mockSvc.EXPECT().
			ListMessages(gomock.Any(), int64(5)).
			Return([]*models.MessageView{
				{ID: 10, ChatID: 5, SenderID: 2, SenderName: "Alice", AvatarColor: "#ff0000", Content: "hello", CreatedAt: ts, Reactions: []string{"👍"}},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/messages/5", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)
		req.Contains(w.Body.String(), `"reactions":["👍"]`)
		req.Contains(w.Body.String(), `"sender_name":"Alice"`)
	})

	t.Run("should return empty list for chat with no messages", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		mockSvc.EXPECT().
			ListMessages(gomock.Any(), int64(99)).
			Return(nil, nil)

		r := httptest.NewRequest(http.MethodGet, "/messages/99", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)
		req.JSONEq(`{"messages":[]}`, w.Body.String())
	})

	t.Run("should reject non-integer chat id", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		mockSvc.EXPECT().ListMessages(gomock.Any(), gomock.Any()).Times(0)

		r := httptest.NewRequest(http.MethodGet, "/messages/abc", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusBadRequest, w.Code)
	})
}

func TestHandler_VoiceRooms(t *testing.T) {
	req := require.New(t)
	handler, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		ListVoiceRooms(gomock.Any()).
		Return([]*models.VoiceRoom{{ID: 3, Name: "Lounge", Participants: 4}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/voice-rooms", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"rooms":[{"id":3,"name":"Lounge","participants":4}]}`, w.Body.String())
}

func TestHandler_SendMessage(t *testing.T) {
	t.Run("should pass caller id from header as sender", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		mockSvc.EXPECT().
			SendMessage(gomock.Any(), service.SendMessageCommand{ChatID: 5, SenderID: 2, Content: "hello"}).
			Return(&models.MessageView{ID: 42, ChatID: 5, SenderID: 2, SenderName: "Alice", Content: "hello", CreatedAt: ts, Reactions: []string{}}, nil)

		r := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{"chat_id":5,"content":"hello"}`))
		r.Header.Set("X-User-Id", "2")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)
		req.Contains(w.Body.String(), `"sender_id":2`)
		req.Contains(w.Body.String(), `"reactions":[]`)
		req.Contains(w.Body.String(), `"created_at":"2024-03-01T12:00:00Z"`)
	})

	t.Run("should map validation failure to bad request", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		mockSvc.EXPECT().
			SendMessage(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidation("content is required"))

		r := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{"chat_id":5,"content":"   "}`))
		r.Header.Set("X-User-Id", "2")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusBadRequest, w.Code)
		req.JSONEq(`{"error":"content is required"}`, w.Body.String())
	})

	t.Run("should reject malformed payload before handler logic", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		mockSvc.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(0)

		r := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{not json`))
		r.Header.Set("X-User-Id", "2")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("should sanitize storage failures", func(t *testing.T) {
		req := require.New(t)
		handler, mockSvc := newTestHandler(t)

		mockSvc.EXPECT().
			SendMessage(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewStorage("insert message", errors.New("pq: password authentication failed")))

		r := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{"chat_id":5,"content":"hello"}`))
		r.Header.Set("X-User-Id", "2")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusInternalServerError, w.Code)
		req.JSONEq(`{"error":"Internal server error"}`, w.Body.String())
		req.NotContains(w.Body.String(), "password")
	})
}

func TestHandler_React(t *testing.T) {
	req := require.New(t)
	handler, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		React(gomock.Any(), service.ReactCommand{MessageID: 10, UserID: 2, Emoji: "👍"}).
		Return(nil)

	r := httptest.NewRequest(http.MethodPost, "/react", strings.NewReader(`{"message_id":10,"emoji":"👍"}`))
	r.Header.Set("X-User-Id", "2")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"success":true}`, w.Body.String())
}

func TestHandler_CreateChat(t *testing.T) {
	req := require.New(t)
	handler, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		CreateChat(gomock.Any(), service.CreateChatCommand{Name: "Team", CreatorID: 2}).
		Return(int64(7), nil)

	r := httptest.NewRequest(http.MethodPost, "/create-chat", strings.NewReader(`{"name":"Team"}`))
	r.Header.Set("X-User-Id", "2")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"chat_id":7}`, w.Body.String())
}
