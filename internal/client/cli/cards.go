package cli

import (
	"context"
	"fmt"
	"os"
)

// List prints the cached card list, newest first, marking cards the current
// user has liked.
func (a *App) List(ctx context.Context) error {
	cards := a.session.Cards()
	if len(cards) == 0 {
		printlnFn("No cards.")
		return nil
	}

	var userID string
	if u := a.session.User(); u != nil {
		userID = u.ID
	}

	for _, c := range cards {
		mark := " "
		if c.LikedBy(userID) {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %s (%d likes)  %s", mark, c.ID, c.Name, len(c.Likes), c.Link))
	}
	return nil
}

// Add prompts for a place name and image link and creates a card. The new
// card lands at the top of the list.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Place name", os.Stdout)
	if err != nil {
		return err
	}
	link, err := getSimpleText(a.reader, "Image link", os.Stdout)
	if err != nil {
		return err
	}

	card, err := a.session.AddCard(ctx, name, link)
	if err != nil {
		printlnFn("Could not add card:", err)
		return err
	}
	printlnFn("Added " + card.ID)
	return nil
}

// Delete prompts for a card id and removes the card.
func (a *App) Delete(ctx context.Context) error {
	cardID, err := getSimpleText(a.reader, "Card id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.session.DeleteCard(ctx, cardID); err != nil {
		printlnFn("Could not delete card:", err)
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// Like prompts for a card id and toggles the current user's like on it.
func (a *App) Like(ctx context.Context) error {
	cardID, err := getSimpleText(a.reader, "Card id to like/unlike", os.Stdout)
	if err != nil {
		return err
	}
	card, err := a.session.ToggleLike(ctx, cardID)
	if err != nil {
		printlnFn("Could not toggle like:", err)
		return err
	}
	printlnFn(fmt.Sprintf("%s now has %d likes", card.Name, len(card.Likes)))
	return nil
}
