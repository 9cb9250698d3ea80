package models

// Conversation is a direct-message thread between a need's owner and a
// bidder. Participant names are denormalized for list rendering.
type Conversation struct {
	ID               string `json:"id"`
	NeedID           string `json:"need_id"`
	NeedTitle        string `json:"need_title"`
	Participant1ID   string `json:"participant_1_id"`
	Participant1Name string `json:"participant_1_name"`
	Participant2ID   string `json:"participant_2_id"`
	Participant2Name string `json:"participant_2_name"`
	LastMessage      string `json:"last_message"`
	LastMessageAt    string `json:"last_message_at"`
	UnreadCount      int    `json:"unread_count"`
}

// ChatMessage is a single message inside a conversation.
type ChatMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
}
