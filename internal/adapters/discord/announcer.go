package discord

import (
	"github.com/bwmarrin/discordgo"

	"contestbot/internal/ports/output"
)

var _ output.Announcer = (*Announcer)(nil)

// Announcer delivers contest announcements through the Discord session.
type Announcer struct {
	session *discordgo.Session
}

// NewAnnouncer creates an Announcer.
func NewAnnouncer(session *discordgo.Session) *Announcer {
	return &Announcer{session: session}
}

func (a *Announcer) Announce(channelID, message string) error {
	_, err := a.session.ChannelMessageSend(channelID, message)
	return err
}
