package dto

// SendMessageRequest represents sending a chat message to the other side of
// a conversation. ParticipantID is the recipient account id; it is accepted
// without checking that such an account exists.
type SendMessageRequest struct {
	ParticipantID string `json:"participantId" binding:"required"`
	Content       string `json:"content" binding:"required"`
}

// UnreadCountResponse reports how many items are still unread for a scope
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

// MarkReadResponse reports how many items a mark-read call actually changed
type MarkReadResponse struct {
	Marked int `json:"marked"`
}
