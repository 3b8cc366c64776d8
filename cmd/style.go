package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/parcel-ledger/application"
	"github.com/luca-patrignani/parcel-ledger/ledger"
)

const (
	validMessage       = "The blockchain is valid."
	compromisedMessage = "Blockchain integrity has been compromised."
)

func formatData(data ledger.Payload) string {
	if data == nil {
		data = ledger.Payload{}
	}
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}

func blockText(b ledger.Block) string {
	return fmt.Sprintf("Timestamp: %s\nData:\n%s\nHash: %s\nPrevious Hash: %s",
		b.Time().Format(time.ANSIC),
		formatData(b.Data),
		b.Hash,
		b.PrevHash,
	)
}

func blockPanel(b ledger.Block) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow(fmt.Sprintf("|Block #%d|", b.Index))).WithTitleTopLeft().Sprint(blockText(b))
}

func historyTable(blocks []ledger.Block) pterm.TableData {
	data := pterm.TableData{{"#", "Time", "Location", "Status"}}
	for _, b := range blocks {
		u := application.UpdateFromBlock(b)
		data = append(data, []string{strconv.Itoa(b.Index), b.Time().Format(time.ANSIC), u.Location, u.Status})
	}
	return data
}

func validityMessage(r application.Report) string {
	if r.Valid {
		return validMessage
	}
	if idx, ok := r.FailedBlock(); ok {
		return fmt.Sprintf("%s First bad block: #%d", compromisedMessage, idx)
	}
	return compromisedMessage
}

func printLedger(tracker *application.Tracker) {
	pterm.DefaultSection.Println("Blockchain Ledger (Full View)")
	for _, b := range tracker.History() {
		pterm.Println(blockPanel(b))
	}
	printValidity(tracker)
}

func printHistory(tracker *application.Tracker) {
	pterm.DefaultSection.Println("Delivery History")
	if err := pterm.DefaultTable.WithHasHeader().WithData(historyTable(tracker.History())).Render(); err != nil {
		pterm.Error.Println(err)
	}
	printValidity(tracker)
}

func printValidity(tracker *application.Tracker) {
	pterm.DefaultSection.Println("Blockchain Validity Check")
	r := tracker.Check()
	if r.Valid {
		pterm.Success.Println(validityMessage(r))
		return
	}
	pterm.Error.Println(validityMessage(r))
}
