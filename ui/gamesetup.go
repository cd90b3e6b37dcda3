package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"renju-local/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()

	config engine.GameConfig
}

// NewGameSetup creates a new game setup form prefilled from defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		config:   defaults,
	}

	form := tview.NewForm()

	form.AddInputField("Black (X)", defaults.PlayerBlack, 20, nil, func(text string) {
		setup.config.PlayerBlack = text
	})

	form.AddInputField("White (O)", defaults.PlayerWhite, 20, nil, func(text string) {
		setup.config.PlayerWhite = text
	})

	form.AddCheckbox("Record SGF", defaults.Record, func(checked bool) {
		setup.config.Record = checked
	})

	form.AddButton("Start Game", func() {
		setup.onStart(setup.GameConfig())
	})

	form.AddButton("Quit", func() {
		setup.onCancel()
	})

	form.SetBorder(true)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitle(" New Game ")
	form.SetTitleColor(MenuColors.Title)
	form.SetTitleAlign(tview.AlignCenter)
	form.SetLabelColor(MenuColors.Label)
	form.SetFieldBackgroundColor(MenuColors.FieldBG)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	// Create help text
	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Space: toggle  |  Enter: confirm  |  Esc: quit").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	// Create flex layout with form and help text
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig returns the configuration as currently entered.
// Blank names fall back to the color names.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	cfg := s.config
	cfg.PlayerBlack = strings.TrimSpace(cfg.PlayerBlack)
	cfg.PlayerWhite = strings.TrimSpace(cfg.PlayerWhite)
	if cfg.PlayerBlack == "" {
		cfg.PlayerBlack = "Black"
	}
	if cfg.PlayerWhite == "" {
		cfg.PlayerWhite = "White"
	}
	return cfg
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
