package models

import "time"

type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SenderID uint `gorm:"index" json:"sender_id"`
	Sender   User `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sender"`

	RecipientID uint `gorm:"index" json:"recipient_id"`

	Content string `gorm:"size:1000;not null" json:"content"`
	ReadAt  *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
}
