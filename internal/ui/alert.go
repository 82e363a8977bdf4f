package ui

import "github.com/pterm/pterm"

// Alert renders transient user notices with pterm's prefix printers. It is
// the terminal stand-in for the app's toast surface and satisfies
// screening.Alerter.
type Alert struct{}

func NewAlert() *Alert { return &Alert{} }

func (Alert) Info(msg string) { pterm.Info.Println(msg) }

func (Alert) Success(msg string) { pterm.Success.Println(msg) }

func (Alert) Error(msg string) { pterm.Error.Println(msg) }

func (Alert) Warning(msg string) { pterm.Warning.Println(msg) }

// Confirm asks a blocking yes/no question. Only destructive actions go
// through here; everything else stays non-blocking.
func Confirm(msg string) bool {
	ok, _ := pterm.DefaultInteractiveConfirm.WithDefaultText(msg).Show()
	return ok
}
