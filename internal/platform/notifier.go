package platform

import (
	"fyne.io/fyne/v2"
	"github.com/rs/zerolog/log"
)

// NotificationSender is the part of fyne.App used to post notifications.
type NotificationSender interface {
	SendNotification(notification *fyne.Notification)
}

// DesktopNotifier posts an OS notification and plays the completion chime.
// Both are fire-and-forget.
type DesktopNotifier struct {
	sender NotificationSender
	chime  func() error
}

// NewDesktopNotifier creates a notifier posting through sender.
func NewDesktopNotifier(sender NotificationSender) *DesktopNotifier {
	return &DesktopNotifier{
		sender: sender,
		chime:  PlayChime,
	}
}

// SetChime replaces the sound played with each notification. A nil chime
// disables sound.
func (notifier *DesktopNotifier) SetChime(chime func() error) {
	notifier.chime = chime
}

// Notify shows title and body to the user.
func (notifier *DesktopNotifier) Notify(title, body string) {
	if notifier.sender != nil {
		notifier.sender.SendNotification(fyne.NewNotification(title, body))
	}
	if notifier.chime == nil {
		return
	}
	chime := notifier.chime
	go func() {
		if err := chime(); err != nil {
			log.Debug().Err(err).Str("title", title).Msg("completion chime")
		}
	}()
}
