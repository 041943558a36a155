package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"president-server/internal/config"
	"president-server/internal/store"
	"president-server/pkg/record"
)

var command = flag.String("c", "games", "specifies the command (games, game)")
var id = flag.String("id", "", "the game record id for -c game")
var limit = flag.Int("n", 20, "the number of games to list")

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	records, err := store.Open(ctx, config.Instance().Store, logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("could not open the game records")
	}
	defer records.Close()

	switch *command {
	case "games":
		games, err := records.List(ctx, *limit)
		if err != nil {
			logrus.WithError(err).Fatal("could not list games")
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			writeJSON(games)
			return
		}

		printGames(games)
	case "game":
		if *id == "" {
			logrus.Fatal("-id is required")
		}

		game, err := records.Get(ctx, *id)
		if err != nil {
			logrus.WithError(err).WithField("id", *id).Fatal("could not get game")
		}

		writeJSON(game)
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func printGames(games []*record.Game) {
	if len(games) == 0 {
		pterm.Info.Println("no games have been recorded")
		return
	}

	data := pterm.TableData{{"ID", "Room", "Ended", "Rounds", "Players", "Winners"}}
	for _, g := range games {
		data = append(data, []string{
			g.ID,
			g.RoomCode,
			g.Ended.Local().Format(time.RFC822),
			strconv.Itoa(len(g.Rounds)),
			strings.Join(g.Players, ", "),
			strings.Join(g.Winners(), ", "),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logrus.WithError(err).Fatal("could not render games")
	}
}

func writeJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logrus.WithError(err).Fatal("could not write JSON")
	}
}
