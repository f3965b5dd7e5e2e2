package models

import "time"

type Comment struct {
	CommentID int       `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	Body      string    `gorm:"column:body" json:"body"`
	ReviewID  int       `gorm:"column:review_id" json:"review_id"`
	Author    string    `gorm:"column:author" json:"author"`
	Votes     int       `gorm:"column:votes" json:"votes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

type CreateCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}
