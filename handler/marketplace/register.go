package marketplace

import (
	"time"

	"github.com/mggonzales/discord-bot/command/def"
	"github.com/mggonzales/discord-bot/db"
	"github.com/mggonzales/discord-bot/handler"
)

var store db.Store

// requests tracks outstanding image requests. Process-local: a restart
// cancels every pending request.
var requests = NewImageRequestRegistry(RequestTTL)

// Register wires the marketplace commands, components and modals into the
// interaction router and starts the registry janitor.
func Register(s db.Store) {
	store = s

	handler.AddCommandHandler(def.MarketplaceSetupCommand.Name, setupCommandHandler)
	handler.AddCommandHandler(def.MarketplacePostCommand.Name, postCommandHandler)

	handler.AddComponentHandler(handler.RefSubmit, submitButtonHandler)
	handler.AddComponentHandler(handler.RefApprove, approveHandler)
	handler.AddComponentHandler(handler.RefRequestImages, requestImagesHandler)
	handler.AddComponentHandler(handler.RefDecline, declineHandler)

	handler.AddModalHandler(handler.ModalIDSubmission, submissionModalHandler)
	handler.AddModalHandler(handler.ModalIDDeclineReason, declineReasonModalHandler)

	requests.StartJanitor(time.Hour, make(chan struct{}))
}
