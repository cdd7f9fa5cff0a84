package model

import "time"

type TwitterSubmission struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TwitterHandle string    `gorm:"column:twitter_handle;type:text;not null" json:"twitterHandle"`
	QuoteContent  string    `gorm:"column:quote_content;type:text;not null" json:"quoteContent"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now();autoCreateTime:false" json:"createdAt"`
}

func (TwitterSubmission) TableName() string {
	return "twitter_submissions"
}

type TwitterSubmissionInput struct {
	TwitterHandle string
	QuoteContent  string
}
