package upload

import (
	"fmt"
	"log/slog"

	"github.com/gregdel/pushover"
)

// Notifier pushes a Pushover alert when an upload dies, so a failure
// isn't missed while the console runs unattended. A nil Notifier is
// valid and does nothing.
type Notifier struct {
	app       *pushover.Pushover
	recipient *pushover.Recipient
}

// NewNotifier returns nil unless both credentials are present.
func NewNotifier(token, recipient string) *Notifier {
	if token == "" || recipient == "" {
		return nil
	}
	return &Notifier{
		app:       pushover.New(token),
		recipient: pushover.NewRecipient(recipient),
	}
}

func (n *Notifier) UploadFailed(filename string, cause error) {
	if n == nil {
		return
	}
	message := &pushover.Message{
		Title:   "VisualDeck upload failed",
		Message: fmt.Sprintf("%s: %v", filename, cause),
	}
	if _, err := n.app.SendMessage(message, n.recipient); err != nil {
		slog.Error("Failed to deliver upload failure notification", slog.String("stack", err.Error()))
	}
}
