package marketplace

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// ErrNoSubmissionData means the message body carries no parseable submission
// payload. Review actions must surface this to the moderator instead of
// guessing; the message is treated as corrupt.
var ErrNoSubmissionData = errors.New("no submission data in message")

var payloadPattern = regexp.MustCompile("(?s)```json\n(.+?)\n```")

// EncodeContent renders the submission as the fenced JSON block stored in the
// review message body.
func EncodeContent(sub *Submission) (string, error) {
	data, err := json.MarshalIndent(sub, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal submission: %w", err)
	}
	return fmt.Sprintf("```json\n%s\n```", data), nil
}

// DecodeContent extracts the submission payload from a review message body.
// Returns ErrNoSubmissionData when the fenced block is missing and a wrapped
// error when the block does not parse.
func DecodeContent(content string) (*Submission, error) {
	match := payloadPattern.FindStringSubmatch(content)
	if match == nil {
		return nil, ErrNoSubmissionData
	}

	var sub Submission
	if err := json.Unmarshal([]byte(match[1]), &sub); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSubmissionData, err)
	}
	return &sub, nil
}
