package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mggonzales/discord-bot/db"
)

// With no guild configured the update can never land anywhere; the caller
// must learn that so it can tell the submitter.
func TestAttachImagesReportsExhaustedGuilds(t *testing.T) {
	s, err := db.OpenJSONStore(t.TempDir())
	require.NoError(t, err)

	prev := store
	store = s
	t.Cleanup(func() { store = prev })

	request := PendingImageRequest{
		SubmitterID:         "user1",
		SubmissionMessageID: "msg1",
		ListingTitle:        "Gaming PC",
	}

	ok := attachImagesToSubmission(nil, "user1", request, []string{"https://cdn.example.com/a.png"})
	assert.False(t, ok)
}
