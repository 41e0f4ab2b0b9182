package marketplace

import (
	"sync"
	"time"
)

// RequestTTL is how long a submitter has to answer an image request.
const RequestTTL = 24 * time.Hour

// PendingImageRequest is an outstanding ask for listing images, keyed by the
// submitter in the registry. Process-local only: a restart cancels it.
type PendingImageRequest struct {
	SubmitterID         string
	SubmissionMessageID string
	ListingTitle        string
	ExpiresAt           time.Time
}

// Expired reports whether the request window has closed at the given instant.
func (r PendingImageRequest) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// ImageRequestRegistry tracks pending image requests per submitter. Expiry is
// a property of the entry, checked on every lookup; the janitor sweep only
// reclaims memory.
type ImageRequestRegistry struct {
	mu      sync.Mutex
	entries map[string]PendingImageRequest
	ttl     time.Duration
	now     func() time.Time
}

// NewImageRequestRegistry creates an empty registry with the given TTL.
func NewImageRequestRegistry(ttl time.Duration) *ImageRequestRegistry {
	return &ImageRequestRegistry{
		entries: make(map[string]PendingImageRequest),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Add registers (or replaces) the pending request for a submitter and returns
// the stored entry.
func (reg *ImageRequestRegistry) Add(submitterID, submissionMessageID, listingTitle string) PendingImageRequest {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	entry := PendingImageRequest{
		SubmitterID:         submitterID,
		SubmissionMessageID: submissionMessageID,
		ListingTitle:        listingTitle,
		ExpiresAt:           reg.now().Add(reg.ttl),
	}
	reg.entries[submitterID] = entry
	return entry
}

// Lookup returns the submitter's pending request if one exists and has not
// expired. An expired entry is removed on the way out.
func (reg *ImageRequestRegistry) Lookup(submitterID string) (PendingImageRequest, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	entry, ok := reg.entries[submitterID]
	if !ok {
		return PendingImageRequest{}, false
	}
	if entry.Expired(reg.now()) {
		delete(reg.entries, submitterID)
		return PendingImageRequest{}, false
	}
	return entry, true
}

// Remove drops the submitter's pending request, fulfilled or not.
func (reg *ImageRequestRegistry) Remove(submitterID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.entries, submitterID)
}

// Sweep removes every expired entry and returns how many were dropped.
func (reg *ImageRequestRegistry) Sweep() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	now := reg.now()
	removed := 0
	for id, entry := range reg.entries {
		if entry.Expired(now) {
			delete(reg.entries, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps on the given interval until stop is closed.
func (reg *ImageRequestRegistry) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				reg.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
