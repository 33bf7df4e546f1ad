package http

import (
	"storefront-chatbot/internal/chat"
	"storefront-chatbot/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

func (r chatReq) toScope() model.Scope {
	return model.NewScope(r.UserID, r.SessionID)
}

func (r chatReq) toInput() chat.AnswerInput {
	return chat.AnswerInput{Message: r.Message}
}

// --- Response DTOs ---

type chatResp struct {
	Response string `json:"response"`
}

func (h *handler) newChatResp(out chat.AnswerOutput) chatResp {
	return chatResp{Response: out.Response}
}

type errResp struct {
	Error string `json:"error"`
}
