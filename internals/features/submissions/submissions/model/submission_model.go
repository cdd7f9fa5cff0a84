package model

import "time"

/* ======================================================
   ENUM: submission status
====================================================== */

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return true
	}
	return false
}

/* ======================================================
   Model: submissions
====================================================== */

type Submission struct {
	ID            int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title         string           `gorm:"column:title;type:text;not null" json:"title"`
	Description   string           `gorm:"column:description;type:text;not null" json:"description"`
	ImageURL      string           `gorm:"column:image_url;type:text;not null" json:"imageUrl"`
	WalletAddress string           `gorm:"column:wallet_address;type:text;not null" json:"walletAddress"`
	TwitterHandle *string          `gorm:"column:twitter_handle;type:text" json:"twitterHandle"`
	DiscordHandle *string          `gorm:"column:discord_handle;type:text" json:"discordHandle"`
	Status        SubmissionStatus `gorm:"column:status;type:text;not null;default:'pending'" json:"status"`

	// assigned by the store (DEFAULT now()), returned via RETURNING
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now();autoCreateTime:false" json:"createdAt"`
}

func (Submission) TableName() string {
	return "submissions"
}

// SubmissionInput is a validated payload ready for insertion.
type SubmissionInput struct {
	Title         string
	Description   string
	ImageURL      string
	WalletAddress string
	TwitterHandle *string
	DiscordHandle *string
}
