// cmd/solitario/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jason-s-yu/solitario/internal/cache"
	"github.com/jason-s-yu/solitario/internal/config"
	"github.com/jason-s-yu/solitario/internal/game"
	"github.com/jason-s-yu/solitario/internal/move"
	"github.com/jason-s-yu/solitario/internal/render"
	"github.com/jason-s-yu/solitario/internal/table"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetLevel(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.New(rand.New(rand.NewSource(seed)), cfg.Deck, logger)
	logger.WithFields(logrus.Fields{
		"game_id": g.ID,
		"deck":    cfg.Deck,
		"seed":    seed,
	}).Debug("dealt new game")

	if cfg.JournalEnabled {
		rdb, err := cache.Connect(context.Background(), cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.WithError(err).Warn("journal disabled")
		} else {
			defer rdb.Close()
			pub := cache.NewPublisher(rdb, cfg.QueueName, logger)
			defer pub.Wait()
			g.OnAction = pub.PublishAsync
		}
	}

	g.Start()
	play(os.Stdin, os.Stdout, g, render.Renderer{Color: true})
}

// play runs the prompt loop until the player quits, wins or closes input.
func play(in io.Reader, out io.Writer, g *game.Game, r render.Renderer) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, r.Table(g.GetCurrentObfuscatedState()))
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "help", "h":
			fmt.Fprintln(out, move.Cheatsheet)
			continue
		}

		outcome, err := g.Apply(line)
		switch {
		case errors.Is(err, table.ErrUndoUnsupported):
			fmt.Fprintln(out, "Undo is not available in this version.")
		case err != nil:
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		if outcome == table.OutcomeQuit {
			return
		}
		if g.Won() {
			fmt.Fprintln(out, pterm.LightGreen(fmt.Sprintf("You won in %d moves!", g.Moves())))
			return
		}
	}
}
