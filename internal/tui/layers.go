package tui

import "charm.land/lipgloss/v2"

// centeredLayer positions content at the center of the screen, or returns nil for empty content
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// commentFormWidth is the outer width of the comment modal for a screen width
func commentFormWidth(screenWidth int) int {
	return min(max(screenWidth*2/3, 30), 80)
}
