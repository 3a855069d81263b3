package request

// InboundEvent is the webhook payload for one user message. Type "text"
// carries free text; "selection" carries a button token, either a date
// ("YYYY-MM-DD"), a time ("HH:MM"), or a command token.
type InboundEvent struct {
	UserID string `json:"user_id" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=text selection"`
	Text   string `json:"text,omitempty"`
	Token  string `json:"token,omitempty"`
}
