package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel carries the terminal dimensions shared by every view.
type CommonModel struct {
	Width  int
	Height int
}

func (c *CommonModel) SetSize(width, height int) {
	c.Width = width
	c.Height = height
}

// BackMsg signals the root model to return to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
