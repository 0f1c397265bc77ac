package tui

import "github.com/Alp4ka/showmore"

// Card is a single catalog entry rendered as a bordered box.
type Card struct {
	Title string
	Body  string

	hidden bool
}

// NewCard returns a visible card.
func NewCard(title, body string) *Card {
	return &Card{Title: title, Body: body}
}

// SetHidden - implements showmore.Item.
func (c *Card) SetHidden(hidden bool) {
	if c == nil {
		return
	}

	c.hidden = hidden
}

// Hidden reports whether the card is currently hidden.
func (c *Card) Hidden() bool {
	return c == nil || c.hidden
}

var _ showmore.Item = (*Card)(nil)
