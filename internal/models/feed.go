package models

import "time"

type Post struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AuthorID uint `gorm:"index" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"author"`

	Content  string `gorm:"size:1000" json:"content"`
	ImageURL string `gorm:"size:500" json:"image_url"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"-"`

	LikeCount int `gorm:"-" json:"like_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Comment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"index" json:"post_id"`

	AuthorID uint `gorm:"index" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"author"`

	Content string `gorm:"size:500;not null" json:"content"`

	CreatedAt time.Time `json:"created_at"`
}

type Like struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"index:idx_like_post_user,unique" json:"post_id"`
	UserID uint `gorm:"index:idx_like_post_user,unique" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}
