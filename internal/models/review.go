package models

import "time"

// Review mirrors a row of the reviews table. Designer and ReviewImgURL are
// nullable and serialize as null when unset.
type Review struct {
	ReviewID     int       `gorm:"column:review_id;primaryKey" json:"review_id"`
	Title        string    `gorm:"column:title" json:"title"`
	ReviewBody   string    `gorm:"column:review_body" json:"review_body"`
	Designer     *string   `gorm:"column:designer" json:"designer"`
	ReviewImgURL *string   `gorm:"column:review_img_url" json:"review_img_url"`
	Votes        int       `gorm:"column:votes" json:"votes"`
	Category     string    `gorm:"column:category" json:"category"`
	Owner        string    `gorm:"column:owner" json:"owner"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewDetail is a single review with its live comment count.
type ReviewDetail struct {
	Review
	CommentCount int `gorm:"column:comment_count" json:"comment_count"`
}

// ReviewSummary is a listing row: no body, plus the live comment count.
type ReviewSummary struct {
	Owner        string    `gorm:"column:owner" json:"owner"`
	Title        string    `gorm:"column:title" json:"title"`
	ReviewID     int       `gorm:"column:review_id" json:"review_id"`
	Category     string    `gorm:"column:category" json:"category"`
	ReviewImgURL *string   `gorm:"column:review_img_url" json:"review_img_url"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	Designer     *string   `gorm:"column:designer" json:"designer"`
	Votes        int       `gorm:"column:votes" json:"votes"`
	CommentCount int       `gorm:"column:comment_count" json:"comment_count"`
}
