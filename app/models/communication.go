package models

import "time"

// Communication is a portal message with an explicit recipient set and
// a read-receipt subset.
type Communication struct {
	ID             string        `json:"id"`
	SenderID       string        `json:"sender_id"`
	MessageType    MessageType   `json:"message_type"`
	Priority       PriorityLevel `json:"priority"`
	Subject        string        `json:"subject"`
	Message        string        `json:"message"`
	AttachmentPath string        `json:"attachment_path,omitempty"`
	IsBroadcast    bool          `json:"is_broadcast"`
	CreatedAt      time.Time     `json:"created_at"`

	SenderName     string `json:"sender_name,omitempty"`
	RecipientCount int    `json:"recipient_count,omitempty"`
	ReadCount      int    `json:"read_count,omitempty"`
	IsRead         bool   `json:"is_read,omitempty"`
}

// UnreadCount is the recipients-minus-read_by set difference size.
func (c *Communication) UnreadCount() int {
	n := c.RecipientCount - c.ReadCount
	if n < 0 {
		return 0
	}
	return n
}
