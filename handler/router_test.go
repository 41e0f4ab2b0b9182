package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComponentID(t *testing.T) {
	cases := []struct {
		name     string
		customID string
		want     Ref
	}{
		{
			name:     "submit button",
			customID: "marketplace_submit",
			want:     Ref{Kind: RefSubmit},
		},
		{
			name:     "approve",
			customID: "marketplace_approve_1717243800000_42",
			want:     Ref{Kind: RefApprove, SubmissionID: "1717243800000_42"},
		},
		{
			name:     "request images",
			customID: "marketplace_request_images_1717243800000_42",
			want:     Ref{Kind: RefRequestImages, SubmissionID: "1717243800000_42"},
		},
		{
			name:     "decline",
			customID: "marketplace_decline_1717243800000_42",
			want:     Ref{Kind: RefDecline, SubmissionID: "1717243800000_42"},
		},
		{
			name:     "unknown id",
			customID: "some_other_button",
			want:     Ref{Kind: RefUnknown},
		},
		{
			name:     "empty id",
			customID: "",
			want:     Ref{Kind: RefUnknown},
		},
		{
			name:     "bare approve prefix decodes with empty submission",
			customID: "marketplace_approve_",
			want:     Ref{Kind: RefApprove},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseComponentID(tc.customID))
		})
	}
}
