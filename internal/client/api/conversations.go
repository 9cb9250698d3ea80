package api

import (
	"context"
	"net/url"

	"github.com/dkrastins/needmarket/internal/client/models"
)

// Conversations returns the current user's message threads.
func (c *Client) Conversations(ctx context.Context) ([]models.Conversation, error) {
	var out []models.Conversation
	if err := c.get(ctx, "/conversations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Messages returns the messages in a conversation, oldest first.
func (c *Client) Messages(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	if err := c.get(ctx, "/conversations/"+url.PathEscape(conversationID)+"/messages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage posts a message into a conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID, text string) (*models.ChatMessage, error) {
	payload := struct {
		Message string `json:"message"`
	}{Message: text}

	var out models.ChatMessage
	if err := c.post(ctx, "/conversations/"+url.PathEscape(conversationID)+"/messages", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
