package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"president-server/internal/config"
	"president-server/internal/rng"
	"president-server/internal/simulate"
	"president-server/internal/util"
	"president-server/pkg/playable"
	"president-server/pkg/playable/president"
)

var players = flag.Int("players", 4, "number of bots at the table (2-8)")
var rounds = flag.Int("rounds", 0, "number of rounds, defaults to the configured round limit")
var seed = flag.Int64("seed", 0, "seed for a reproducible game, 0 picks a random one")
var verbose = flag.Bool("v", false, "print every play")

func main() {
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	if *rounds == 0 {
		*rounds = config.Instance().Game.RoundLimit
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	names := util.GetRandomNames(rng.NewSeeded(*seed), *players)
	pterm.DefaultSection.Println("President")
	pterm.Info.Printfln("seed %d, %d rounds between %s", *seed, *rounds, pterm.LightCyan(fmt.Sprint(names)))

	log, err := simulate.Run(logger, simulate.Config{
		Players:   names,
		Rounds:    *rounds,
		Generator: rng.NewSeeded(*seed),
	}, simulate.Hooks{
		RoundComplete: printRound,
		Log:           printLog,
	})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	printStandings(log)
}

func printLog(msg *playable.LogMessage) {
	if !*verbose {
		return
	}

	text := msg.Message
	for _, id := range msg.PlayerIDs {
		text = strings.Replace(text, "{}", id, 1)
	}

	if len(msg.Cards) > 0 {
		text = fmt.Sprintf("%s %v", text, msg.Cards)
	}

	pterm.Println(pterm.Gray(text))
}

func printRound(result *president.RoundResult, snapshot *president.Snapshot) {
	pterm.DefaultSection.WithLevel(2).Printfln("Round %d", result.Round)

	if x := result.Exchange; x != nil {
		pterm.Info.Printfln("%s gave %v to %s, received %v", x.SlaveID, x.ToPresident, x.PresidentID, x.ToSlave)
	}

	labels := snapshot.Labels()
	data := pterm.TableData{{"Place", "Player", "Title"}}
	for i, id := range result.Outcome {
		data = append(data, []string{strconv.Itoa(i + 1), id, labels[id]})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func printStandings(log *president.GameLog) {
	pterm.DefaultSection.Println("Standings")

	data := pterm.TableData{{"Place", "Player", "President", "Slave"}}
	for _, s := range log.Standings {
		data = append(data, []string{
			strconv.Itoa(s.Place),
			s.PlayerID,
			strconv.Itoa(s.PresidentCount),
			strconv.Itoa(s.SlaveCount),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}

	pterm.Success.Printfln("%s wins after %s", log.Standings[0].PlayerID, log.EndTime.Sub(log.StartTime).Round(time.Millisecond))
}
