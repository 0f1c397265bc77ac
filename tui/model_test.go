package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/showmore"
)

func newCards(n int) []*Card {
	cards := make([]*Card, n)
	for i := range cards {
		cards[i] = NewCard(fmt.Sprintf("Bouquet %02d", i+1), "")
	}

	return cards
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)

	return model, cmd
}

func hiddenCount(cards []*Card) int {
	n := 0
	for _, c := range cards {
		if c.Hidden() {
			n++
		}
	}

	return n
}

func TestModel_NewModel(t *testing.T) {
	cards := newCards(13)
	m := NewModel(cards)

	assert.Equal(t, 6, m.Controller().Cursor())
	assert.Equal(t, 7, hiddenCount(cards))
	assert.True(t, m.ButtonVisible())
	assert.Nil(t, m.Init())
}

func TestModel_ShowMoreUntilExhausted(t *testing.T) {
	cards := newCards(13)
	m := NewModel(cards)

	keys := []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{'m'}},
		{Type: tea.KeySpace, Runes: []rune{' '}},
	}
	wantCursor := []int{12, 13, 13}

	for i, k := range keys {
		var cmd tea.Cmd
		m, cmd = press(t, m, k)
		assert.Nil(t, cmd)
		assert.Equal(t, wantCursor[i], m.Controller().Cursor(), "press %d", i)
	}

	assert.Zero(t, hiddenCount(cards))
	assert.False(t, m.ButtonVisible())
	assert.Equal(t, showmore.StateExhausted, m.Controller().State())
}

func TestModel_ShortList(t *testing.T) {
	m := NewModel(newCards(4))

	assert.False(t, m.ButtonVisible())
	assert.NotContains(t, m.View(), "Show more")
	assert.Contains(t, m.View(), "Showing 4 of 4")
}

func TestModel_EmptyList(t *testing.T) {
	m := NewModel(nil)

	assert.False(t, m.ButtonVisible())
	assert.Contains(t, m.View(), "Showing 0 of 0")
}

func TestModel_PageSizeOption(t *testing.T) {
	cards := newCards(5)
	m := NewModel(cards, showmore.WithPageSize(2))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 4, m.Controller().Cursor())
	assert.Equal(t, 1, hiddenCount(cards))
}

func TestModel_View(t *testing.T) {
	cards := newCards(8)
	cards[0].Body = "Roses and peonies"
	m := NewModel(cards)

	view := m.View()
	assert.Contains(t, view, "Bouquet 01")
	assert.Contains(t, view, "Roses and peonies")
	assert.Contains(t, view, "Bouquet 06")
	assert.NotContains(t, view, "Bouquet 07")
	assert.Contains(t, view, "Show more (2 left)")
	assert.Contains(t, view, "Showing 6 of 8")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view = m.View()
	assert.Contains(t, view, "Bouquet 08")
	assert.NotContains(t, view, "Show more")
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(newCards(10))

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(newCards(1))

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, 40, next.(Model).width)
}

func TestCard_Nil(t *testing.T) {
	var c *Card

	assert.NotPanics(t, func() { c.SetHidden(false) })
	assert.True(t, c.Hidden())
}
