package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTwitterSubmissionRequest_Validate(t *testing.T) {
	ok := CreateTwitterSubmissionRequest{TwitterHandle: "@alice", QuoteContent: "great drop"}
	assert.Nil(t, ok.Validate())

	empty := CreateTwitterSubmissionRequest{}
	errs := empty.Validate()
	require.Len(t, errs, 2)
	assert.ElementsMatch(t, []string{"twitterHandle", "quoteContent"}, errs.Fields())
}

func TestCreateTwitterSubmissionRequest_ToInput(t *testing.T) {
	req := CreateTwitterSubmissionRequest{TwitterHandle: "@alice", QuoteContent: "great drop"}
	in := req.ToInput()
	assert.Equal(t, "@alice", in.TwitterHandle)
	assert.Equal(t, "great drop", in.QuoteContent)
}
