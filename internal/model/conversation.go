package model

// swagger:model Conversation
type Conversation struct {
	UUIDBase
	UserID   uint      `gorm:"index" json:"userId"`
	Context  string    `gorm:"size:50;default:'general'" json:"context"`
	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// swagger:model Message
type Message struct {
	UUIDBase
	ConversationID string   `gorm:"index;type:varchar(36)" json:"conversationId"`
	Content        string   `gorm:"type:text;not null" json:"content"`
	Role           string   `gorm:"size:20;not null" json:"role"` // user / assistant
	Sentiment      *float64 `json:"sentiment"`                    // 用户消息的情感复合分
}

func (Message) TableName() string {
	return "messages"
}
