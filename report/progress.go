package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressStep is one status of the simulated progress sequence; it is
// shown while the percentage is below Until.
type ProgressStep struct {
	Until   int    `json:"until"`
	Message string `json:"message"`
}

// ProgressSteps is the sequence shown while a claim is analysed.
var ProgressSteps = []ProgressStep{
	{Until: 30, Message: "Searching for relevant sources..."},
	{Until: 60, Message: "Cross-referencing information..."},
	{Until: 90, Message: "Analyzing content authenticity..."},
	{Until: 101, Message: "Finalizing verdict..."},
}

// StatusAt returns the status text for percent (0-100).
func StatusAt(percent int) string {
	for _, s := range ProgressSteps {
		if percent < s.Until {
			return s.Message
		}
	}
	return ProgressSteps[len(ProgressSteps)-1].Message
}

// SimulateProgress draws the progress bar from 0 to 100 on w, pausing
// delay between steps, and clears the line when done. It is display only.
func SimulateProgress(w io.Writer, delay time.Duration) {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	for i := 0; i <= 100; i++ {
		fmt.Fprintf(w, "\r%s %-36s", bar.ViewAs(float64(i)/100), StatusAt(i))
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	fmt.Fprint(w, "\r\033[2K")
}
