package report

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"fake_news_detector/detector"
)

var (
	badgeBase = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	badges = map[detector.Class]lipgloss.Style{
		detector.ClassFake:      badgeBase.Foreground(lipgloss.Color("#B91C1C")).Background(lipgloss.Color("#FEE2E2")),
		detector.ClassReal:      badgeBase.Foreground(lipgloss.Color("#065F46")).Background(lipgloss.Color("#D1FAE5")),
		detector.ClassUncertain: badgeBase.Foreground(lipgloss.Color("#92400E")).Background(lipgloss.Color("#FEF3C7")),
		detector.ClassError:     badgeBase.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#6B7280")),
	}

	// Heading styles section titles such as "Search Results".
	Heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1E3A8A"))
	// Warning styles notices such as a failed sub-query.
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#B45309"))
	// Failure styles fatal errors.
	Failure = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B91C1C"))
)

// Badge renders the coloured verdict banner.
func Badge(v detector.Verdict) string {
	return badges[v.Class()].Render(Headline(v))
}

// Terminal renders markdown for a terminal of the given width.
func Terminal(src string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(src)
}
