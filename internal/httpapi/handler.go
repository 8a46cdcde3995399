package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/meega-creation/internal/apperrors"
	"github.com/pr-poehali-dev/meega-creation/internal/models"
	"github.com/pr-poehali-dev/meega-creation/internal/service"
)

const callerHeader = "X-User-Id"

// Handler dispatches the messenger API operations. Caller identity is
// taken verbatim from the X-User-Id header; verifying it is someone
// else's job.
type Handler struct {
	service service.ConversationService
	logger  *logrus.Logger
}

func NewHandler(svc service.ConversationService, logger *logrus.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.WriteHeader(http.StatusOK)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/chats":
		h.listChats(w, r)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/messages/"):
		h.listMessages(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/voice-rooms":
		h.listVoiceRooms(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/send":
		h.sendMessage(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/react":
		h.react(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/create-chat":
		h.createChat(w, r)
	default:
		h.writeError(w, r, apperrors.ErrNotFound)
	}
}

func (h *Handler) listChats(w http.ResponseWriter, r *http.Request) {
	callerID, err := parseCallerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	chats, err := h.service.ListChats(r.Context(), callerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatsResponse{Chats: toChatSummaryResponses(chats)})
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/messages/"), 10, 64)
	if err != nil {
		h.writeError(w, r, apperrors.NewValidation("chat id must be an integer"))
		return
	}

	messages, err := h.service.ListMessages(r.Context(), chatID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messagesResponse{Messages: toMessageResponses(messages)})
}

func (h *Handler) listVoiceRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListVoiceRooms(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, voiceRoomsResponse{Rooms: toVoiceRoomResponses(rooms)})
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	callerID, err := parseCallerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var payload sendMessagePayload
	if err := decodeJSON(r, &payload); err != nil {
		h.writeError(w, r, err)
		return
	}

	msg, err := h.service.SendMessage(r.Context(), service.SendMessageCommand{
		ChatID:   payload.ChatID,
		SenderID: callerID,
		Content:  payload.Content,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sentMessageResponse{Message: toMessageResponse(msg)})
}

func (h *Handler) react(w http.ResponseWriter, r *http.Request) {
	callerID, err := parseCallerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var payload reactPayload
	if err := decodeJSON(r, &payload); err != nil {
		h.writeError(w, r, err)
		return
	}

	err = h.service.React(r.Context(), service.ReactCommand{
		MessageID: payload.MessageID,
		UserID:    callerID,
		Emoji:     payload.Emoji,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) createChat(w http.ResponseWriter, r *http.Request) {
	callerID, err := parseCallerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var payload createChatPayload
	if err := decodeJSON(r, &payload); err != nil {
		h.writeError(w, r, err)
		return
	}

	chatID, err := h.service.CreateChat(r.Context(), service.CreateChatCommand{
		Name:      payload.Name,
		Type:      payload.Type,
		CreatorID: callerID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, createdChatResponse{ChatID: chatID})
}

func parseCallerID(r *http.Request) (int64, error) {
	raw := r.Header.Get(callerHeader)
	if raw == "" {
		return 0, apperrors.NewValidation("%s header is required", callerHeader)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidation("%s header must be a positive integer", callerHeader)
	}

	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewValidation("invalid request body")
	}
	return nil
}

// writeError maps the internal failure to an external outcome. Storage
// detail is logged with the request id and never echoed to the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case apperrors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	default:
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
		}).WithError(err).Error("Request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

func writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-Id")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type sendMessagePayload struct {
	ChatID  int64  `json:"chat_id"`
	Content string `json:"content"`
}

type reactPayload struct {
	MessageID int64  `json:"message_id"`
	Emoji     string `json:"emoji"`
}

type createChatPayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type chatsResponse struct {
	Chats []chatSummaryResponse `json:"chats"`
}

type messagesResponse struct {
	Messages []messageResponse `json:"messages"`
}

type voiceRoomsResponse struct {
	Rooms []voiceRoomResponse `json:"rooms"`
}

type sentMessageResponse struct {
	Message messageResponse `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type createdChatResponse struct {
	ChatID int64 `json:"chat_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type chatSummaryResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	CreatedAt       string  `json:"created_at"`
	MemberCount     int     `json:"member_count"`
	LastMessage     *string `json:"last_message"`
	LastMessageTime *string `json:"last_message_time"`
	UnreadCount     int     `json:"unread_count"`
}

type messageResponse struct {
	ID          int64    `json:"id"`
	ChatID      int64    `json:"chat_id"`
	Content     string   `json:"content"`
	CreatedAt   string   `json:"created_at"`
	SenderID    int64    `json:"sender_id"`
	SenderName  string   `json:"sender_name"`
	AvatarColor string   `json:"avatar_color"`
	Reactions   []string `json:"reactions"`
}

type voiceRoomResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Participants int    `json:"participants"`
}

func toChatSummaryResponses(chats []*models.ChatSummary) []chatSummaryResponse {
	return lo.Map(chats, func(c *models.ChatSummary, _ int) chatSummaryResponse {
		resp := chatSummaryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Type:        c.Type,
			CreatedAt:   c.CreatedAt.Format(time.RFC3339),
			MemberCount: c.MemberCount,
			LastMessage: c.LastMessage,
			UnreadCount: c.UnreadCount,
		}
		if c.LastMessageTime != nil {
			resp.LastMessageTime = lo.ToPtr(c.LastMessageTime.Format(time.RFC3339))
		}
		return resp
	})
}

func toMessageResponses(messages []*models.MessageView) []messageResponse {
	return lo.Map(messages, func(m *models.MessageView, _ int) messageResponse {
		return toMessageResponse(m)
	})
}

func toMessageResponse(m *models.MessageView) messageResponse {
	reactions := m.Reactions
	if reactions == nil {
		reactions = []string{}
	}
	return messageResponse{
		ID:          m.ID,
		ChatID:      m.ChatID,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		SenderID:    m.SenderID,
		SenderName:  m.SenderName,
		AvatarColor: m.AvatarColor,
		Reactions:   reactions,
	}
}

func toVoiceRoomResponses(rooms []*models.VoiceRoom) []voiceRoomResponse {
	return lo.Map(rooms, func(room *models.VoiceRoom, _ int) voiceRoomResponse {
		return voiceRoomResponse{
			ID:           room.ID,
			Name:         room.Name,
			Participants: room.Participants,
		}
	})
}
