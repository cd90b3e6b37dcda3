package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired color palette for the menu UI.
var MenuColors = struct {
	Border     tcell.Color // Muted blue-gray for borders
	Title      tcell.Color // Bright white for title
	Label      tcell.Color // Light gray for labels
	Hint       tcell.Color // Dim gray for hints
	FieldBG    tcell.Color // Input field background
	ButtonBG   tcell.Color // Button background
	ButtonText tcell.Color // Button text
}{
	Border:     tcell.PaletteColor(60),  // Muted blue-gray
	Title:      tcell.PaletteColor(255), // Bright white
	Label:      tcell.PaletteColor(250), // Light gray
	Hint:       tcell.PaletteColor(245), // Dim gray
	FieldBG:    tcell.PaletteColor(236), // Dark gray
	ButtonBG:   tcell.PaletteColor(60),  // Nord blue
	ButtonText: tcell.PaletteColor(255), // White
}
