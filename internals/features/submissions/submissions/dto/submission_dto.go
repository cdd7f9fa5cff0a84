package dto

import (
	"strings"

	"gloopclub_backend/internals/features/submissions/submissions/model"
	helper "gloopclub_backend/internals/helpers"
)

// ============================
// Create Request DTO
// ============================

// CreateSubmissionRequest is the public POST body. id, status and createdAt are
// server-owned and never decoded.
type CreateSubmissionRequest struct {
	Title         string  `json:"title" validate:"required,min=1"`
	Description   string  `json:"description" validate:"required,min=1"`
	ImageURL      string  `json:"imageUrl" validate:"required,url"`
	WalletAddress string  `json:"walletAddress" validate:"required,min=1"`
	TwitterHandle *string `json:"twitterHandle"`
	DiscordHandle *string `json:"discordHandle"`
}

func (r *CreateSubmissionRequest) Validate() helper.ValidationErrors {
	return helper.ValidateStruct(r)
}

// Bind decodes a raw request body and reports every violated field at once.
func (r *CreateSubmissionRequest) Bind(raw []byte) helper.ValidationErrors {
	return helper.BindJSON(raw, r)
}

// ToInput assumes Validate passed; blank optional handles become NULL.
func (r *CreateSubmissionRequest) ToInput() model.SubmissionInput {
	return model.SubmissionInput{
		Title:         r.Title,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		WalletAddress: r.WalletAddress,
		TwitterHandle: optional(r.TwitterHandle),
		DiscordHandle: optional(r.DiscordHandle),
	}
}

func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
