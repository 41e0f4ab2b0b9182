package marketplace

// Submission is a marketplace listing proposal. The review message in the
// submissions channel is its system of record: the struct is serialized into
// the message body as a fenced JSON block and read back on every review
// action. There is no database row.
type Submission struct {
	MessageID        string   `json:"messageId"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Price            string   `json:"price"`
	Contact          string   `json:"contact"`
	ImageURL         string   `json:"imageUrl"`
	AdditionalImages []string `json:"additionalImages,omitempty"`
	UserID           string   `json:"userId"`
	Username         string   `json:"username"`
	UserTag          string   `json:"userTag"`
}
