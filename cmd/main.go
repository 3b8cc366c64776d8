package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/parcel-ledger/application"
)

const (
	actionAdd     = "Add delivery update"
	actionLedger  = "Show ledger"
	actionHistory = "Show history table"
	actionQuit    = "Quit"
)

func main() {
	debug, ok := parseArgs(os.Args[1:])
	if !ok {
		fmt.Fprintf(os.Stderr, "usage: %s [--debug]\n", os.Args[0])
		os.Exit(1)
	}
	if debug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("arcel ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("L", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("edger", pterm.FgDarkGray.ToStyle()),
	).Render()

	tracker := application.NewTracker(logger)
	printLedger(tracker)

	actions := []string{actionAdd, actionLedger, actionHistory, actionQuit}
	for {
		selected, err := pterm.DefaultInteractiveSelect.WithDefaultText("What do you want to do?").WithOptions(actions).Show()
		if err != nil {
			logger.Error("failed to read the selected action", "error", err)
			panic(err)
		}
		pterm.Println()

		switch selected {
		case actionAdd:
			if err := addUpdate(tracker); err != nil {
				logger.Debug("update rejected", "error", err)
				pterm.Warning.Println("Please enter both location and status.")
				continue
			}
			pterm.Success.Println("Block added to the blockchain.")
			printLedger(tracker)
		case actionLedger:
			printLedger(tracker)
		case actionHistory:
			printHistory(tracker)
		case actionQuit:
			return
		default:
			panic("unknown action")
		}
	}
}

func parseArgs(args []string) (debug bool, ok bool) {
	for _, arg := range args {
		if arg != "--debug" {
			return false, false
		}
		debug = true
	}
	return debug, true
}

func addUpdate(tracker *application.Tracker) error {
	pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Println("Add Delivery Update")
	location, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Location").Show()
	if err != nil {
		return err
	}
	status, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Status").Show()
	if err != nil {
		return err
	}
	pterm.Println()
	_, err = tracker.Record(location, status)
	return err
}
