package notifier

import (
	"fmt"
	"strings"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Notifier posts staff-facing events to a chat channel.
type Notifier interface {
	NotifyReminder(n models.Notification) error
	NotifyFinalized(b models.Booking) error
}

type DiscordNotifier struct {
	send      func(channelID, content string) error
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	n := &DiscordNotifier{channelID: channelID}
	if session != nil {
		n.send = func(channelID, content string) error {
			_, err := session.ChannelMessageSend(channelID, content)
			return err
		}
	}
	return n
}

func (n *DiscordNotifier) NotifyReminder(notification models.Notification) error {
	message := fmt.Sprintf("⏰ **%s**\n%s", notification.Title, notification.Description)
	if notification.Href != "" {
		message += fmt.Sprintf("\n**Link:** %s", notification.Href)
	}
	return n.post(message)
}

func (n *DiscordNotifier) NotifyFinalized(booking models.Booking) error {
	message := fmt.Sprintf("✅ **Booking finalized**\n**Code:** %s\n**Customer:** %s\n**Dates:** %s - %s",
		booking.Code,
		strings.TrimSpace(booking.ContactName),
		booking.RentalStart.Format("2006-01-02"),
		booking.RentalEnd.Format("2006-01-02"),
	)
	return n.post(message)
}

func (n *DiscordNotifier) post(message string) error {
	if n.send == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}
	if err := n.send(n.channelID, message); err != nil {
		logger.Error("Failed to send discord message", "error", err)
		return err
	}
	return nil
}

// Nop discards every event. Used when Discord is not configured.
type Nop struct{}

func (Nop) NotifyReminder(models.Notification) error { return nil }
func (Nop) NotifyFinalized(models.Booking) error     { return nil }
