package mailer

import (
	"bytes"
	"html/template"
)

const twitterNoticeSubject = "New X Submission"

// User content is HTML-escaped by html/template.
var twitterNoticeTemplate = template.Must(template.New("twitter_notice").Parse(
	`<p><strong>X Username:</strong> {{.TwitterHandle}}</p><p><strong>Quote/Thread:</strong> {{.QuoteContent}}</p>`,
))

func RenderTwitterNotice(notice TwitterNotice) (string, error) {
	var buf bytes.Buffer
	if err := twitterNoticeTemplate.Execute(&buf, notice); err != nil {
		return "", err
	}
	return buf.String(), nil
}
