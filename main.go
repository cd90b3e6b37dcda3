// renju-local is a terminal application to play five-in-a-row with two players at one keyboard.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"renju-local/config"
	"renju-local/console"
	"renju-local/engine"
	"renju-local/engine/renju"
	"renju-local/sgf"
	"renju-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagTUI        = flag.Bool("tui", false, "Play in the full-screen terminal UI instead of the console")
	flagFocus      = flag.Bool("focus", false, "Start the terminal UI in focus mode (fullscreen board)")
	flagRecord     = flag.Bool("record", false, "Write an SGF transcript of the game")
	flagBlack      = flag.String("black", "", "Name of the black player")
	flagWhite      = flag.String("white", "", "Name of the white player")
	flagInitConfig = flag.Bool("init-config", false, "Write the current configuration to the config file and exit")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var logger *slog.Logger
var record *sgf.GameRecord

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("renju-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagInitConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not write config: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	var closeLog func()
	logger, closeLog = newLogger(cfg.Log)
	defer closeLog()
	logger.Info("starting", "version", Version, "tui", *flagTUI)

	if *flagTUI {
		runTUI(buildGameConfig())
	} else if err := runConsole(buildGameConfig()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger opens the log file from the config. The game owns stdout,
// so when the file cannot be opened logging is discarded.
func newLogger(lc config.LogConfig) (*slog.Logger, func()) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := os.MkdirAll(filepath.Dir(lc.File), 0755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discard, func() {}
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lc.SlogLevel()})
	return slog.New(handler), func() { f.Close() }
}

// buildGameConfig creates a GameConfig from the config file, overridden by command-line flags.
func buildGameConfig() engine.GameConfig {
	gameCfg := engine.GameConfig{
		PlayerBlack: cfg.Players.Black,
		PlayerWhite: cfg.Players.White,
		Record:      cfg.Record.Enabled || *flagRecord,
		RecordDir:   cfg.Record.Dir,
	}
	if *flagBlack != "" {
		gameCfg.PlayerBlack = *flagBlack
	}
	if *flagWhite != "" {
		gameCfg.PlayerWhite = *flagWhite
	}
	return gameCfg
}

// newEngine starts a session and, when requested, attaches an SGF record to it.
func newEngine(gameCfg engine.GameConfig) *renju.Engine {
	eng := renju.NewEngine(gameCfg, logger)
	closeRecord()
	if !gameCfg.Record {
		return eng
	}
	rec, err := sgf.NewGameRecord(gameCfg.RecordDir, gameCfg.PlayerBlack, gameCfg.PlayerWhite)
	if err != nil {
		logger.Error("could not start record", "error", err)
		return eng
	}
	record = rec
	sgf.Follow(eng, rec, logger)
	logger.Info("recording game", "file", rec.FilePath)
	return eng
}

func closeRecord() {
	if record == nil {
		return
	}
	if err := record.Close(); err != nil {
		logger.Error("could not close record", "file", record.FilePath, "error", err)
	}
	record = nil
}

func runConsole(gameCfg engine.GameConfig) error {
	eng := newEngine(gameCfg)
	defer closeRecord()
	defer eng.Close()
	return console.New(os.Stdin, os.Stdout, eng, logger).Run()
}

func runTUI(defaults engine.GameConfig) {
	quickStart := *flagFocus || *flagBlack != "" || *flagWhite != ""

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● renju ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(cfg, gameHint)

	// Create game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				closeRecord()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			selTile := gameBoard.SelectedTile()
			if selTile == nil {
				return nil
			}
			gameBoard.PlayMove(selTile.Row, selTile.Col)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'u':
				gameBoard.Undo()
			case 'r':
				gameBoard.Redo()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(defaults,
		func(gameCfg engine.GameConfig) {
			gameCfg.RecordDir = defaults.RecordDir
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
	)

	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			app.Stop()
			return nil
		}
		return event
	})

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)

	if quickStart {
		startGame(defaults)
		// Enter focus mode if requested
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logger.Error("terminal UI failed", "error", err)
		panic(err)
	}
	gameBoard.Close()
	closeRecord()
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	gameBoard.Close()
	eng := newEngine(gameCfg)
	gameBoard.ConnectEngine(eng, gameCfg)
	if gameBoard.IsFocusMode() {
		ui.BuildFocusLayout(gameFrame, gameBoard)
	} else {
		ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
	}
	rootPage.SwitchToPage("gameview")
}
