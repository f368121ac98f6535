package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/golden-snake/internal/config"
	"github.com/vovakirdan/golden-snake/internal/core"
	"github.com/vovakirdan/golden-snake/internal/games/snake"
	"github.com/vovakirdan/golden-snake/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("embedded constants unusable", "err", err)
	}

	game := snake.New(snake.WithConfig(cfg))

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "err", termErr)
	}

	needW, needH := snake.BoardSize(game.Grid())
	if width < needW || height < needH+1 {
		logger.Warn("terminal smaller than the board", "have", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", needW, needH+1))
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	start := time.Now()
	runErr := tui.Run(game, rc, playOptions(game, logger))

	state := game.State()
	logger.Info("session ended", "score", state.Score, "victory", state.Victory,
		"duration", time.Since(start).Round(time.Second))

	if runErr != nil {
		logger.Error("game stopped", "err", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// playOptions drives the TUI at the game's own tick rate.
func playOptions(game *snake.Game, logger *log.Logger) tui.Options {
	return tui.Options{
		TickRate: game.Config().TickRate,
		Logger:   logger,
	}
}
