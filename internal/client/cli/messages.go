package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkrastins/needmarket/internal/client/models"
)

// Messages lists the user's conversations, opens one, shows its history and
// optionally sends a reply.
func (a *App) Messages(ctx context.Context) error {
	convs, err := a.market.Conversations(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(convs) == 0 {
		printlnFn("No conversations yet")
		return nil
	}

	me := ""
	if u := a.store.User(); u != nil {
		me = u.ID
	}
	for _, c := range convs {
		printlnFn(formatConversationLine(&c, me))
	}

	id, err := getSimpleText(a.reader, "Conversation id to open (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	msgs, err := a.market.Messages(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for _, m := range msgs {
		printlnFn(fmt.Sprintf("[%s] %s: %s", m.CreatedAt, m.SenderName, m.Message))
	}

	text, err := getSimpleText(a.reader, "Reply (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	if _, err := a.market.SendMessage(ctx, id, text); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Sent")
	return nil
}

// formatConversationLine renders one conversation for the list view, showing
// the other participant relative to the current user.
func formatConversationLine(c *models.Conversation, me string) string {
	other := c.Participant1Name
	if c.Participant1ID == me {
		other = c.Participant2Name
	}
	unread := ""
	if c.UnreadCount > 0 {
		unread = fmt.Sprintf(" (%d unread)", c.UnreadCount)
	}
	return fmt.Sprintf("%s  %s — %s: %s%s", c.ID, c.NeedTitle, other, c.LastMessage, unread)
}
