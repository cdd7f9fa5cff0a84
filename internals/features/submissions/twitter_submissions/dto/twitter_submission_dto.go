package dto

import (
	"gloopclub_backend/internals/features/submissions/twitter_submissions/model"
	helper "gloopclub_backend/internals/helpers"
)

type CreateTwitterSubmissionRequest struct {
	TwitterHandle string `json:"twitterHandle" validate:"required,min=1"`
	QuoteContent  string `json:"quoteContent" validate:"required,min=1"`
}

func (r *CreateTwitterSubmissionRequest) Validate() helper.ValidationErrors {
	return helper.ValidateStruct(r)
}

// Bind decodes a raw request body and reports every violated field at once.
func (r *CreateTwitterSubmissionRequest) Bind(raw []byte) helper.ValidationErrors {
	return helper.BindJSON(raw, r)
}

func (r *CreateTwitterSubmissionRequest) ToInput() model.TwitterSubmissionInput {
	return model.TwitterSubmissionInput{
		TwitterHandle: r.TwitterHandle,
		QuoteContent:  r.QuoteContent,
	}
}

// CreatedResponse is the 201 body of POST /api/twitter-submissions.
type CreatedResponse struct {
	Success bool `json:"success"`
}
