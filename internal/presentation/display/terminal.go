package display

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hydralog/go-water-monitor/internal/tracker"
	"github.com/hydralog/go-water-monitor/internal/util"
)

// Dashboard renders the live hydration view. Each Render repaints the
// alternate screen buffer in full; the view is small enough that
// differential updates would buy nothing.
type Dashboard struct {
	width             int
	inAlternateScreen bool
	notice            string
}

// NewDashboard sizes the view to the terminal, falling back to a fixed
// width when stdout is not a terminal
func NewDashboard() *Dashboard {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 60 {
		width = 74
	}
	if width > 100 {
		width = 100
	}
	return &Dashboard{width: width}
}

// SetNotice shows a one-line message in the footer until the next notice
func (d *Dashboard) SetNotice(notice string) {
	d.notice = notice
}

// EnterAlternateScreen switches to the alternate screen buffer
func (d *Dashboard) EnterAlternateScreen() {
	if !d.inAlternateScreen {
		fmt.Print("\033[?1049h")
		fmt.Print(util.ClearScreen)
		fmt.Print(util.MoveCursorHome)
		fmt.Print(util.HideCursor)
		d.inAlternateScreen = true
	}
}

// ExitAlternateScreen returns to the normal screen buffer
func (d *Dashboard) ExitAlternateScreen() {
	if d.inAlternateScreen {
		fmt.Print(util.ClearScreen)
		fmt.Print(util.MoveCursorHome)
		fmt.Print(util.ShowCursor)
		fmt.Print("\033[?1049l")
		d.inAlternateScreen = false
	}
}

// Render repaints the whole dashboard from one snapshot
func (d *Dashboard) Render(snap tracker.Snapshot, documentPath string) {
	var b strings.Builder
	b.WriteString(util.ClearScreen)
	b.WriteString(util.MoveCursorHome)

	d.renderHeader(&b, snap)
	d.renderToday(&b, snap)
	d.renderBuckets(&b, snap)
	d.renderStreaks(&b, snap)
	d.renderWeek(&b, snap)
	d.renderFooter(&b, documentPath)

	fmt.Print(b.String())
}

func (d *Dashboard) renderHeader(b *strings.Builder, snap tracker.Snapshot) {
	title := "💧 Water Intake Monitor"
	clock := snap.UpdatedAt.Format("15:04:05")
	gap := d.width - util.GetDisplayWidth(title) - util.GetDisplayWidth(clock)
	if gap < 1 {
		gap = 1
	}
	fmt.Fprintf(b, "%s%s%s\n", util.FormatHeaderTitle(title), strings.Repeat(" ", gap), clock)
	fmt.Fprintln(b, util.FormatSectionSeparator(d.width))
}

func (d *Dashboard) renderToday(b *strings.Builder, snap tracker.Snapshot) {
	s := snap.Status
	fmt.Fprintf(b, "%s  %s\n", util.FormatOverviewTitle("Today"), s.Date)
	fmt.Fprintf(b, "  %s of %s  %s %s %s\n",
		util.FormatVolume(s.Total),
		util.FormatVolume(s.Goal),
		util.CreateProgressBar(s.Percent, d.width-28),
		util.FormatPercent(s.Percent),
		util.HydrationEmoji(s.Percent),
	)
	if s.Achieved {
		fmt.Fprintf(b, "  Goal reached with %d entries\n", s.Entries)
	} else {
		fmt.Fprintf(b, "  %s to go, %d entries so far\n", util.FormatVolume(s.Remaining), s.Entries)
	}
	fmt.Fprintln(b)
}

func (d *Dashboard) renderBuckets(b *strings.Builder, snap tracker.Snapshot) {
	fmt.Fprintln(b, util.FormatDataTitle("Time of Day"))
	buckets := snap.Buckets
	rows := []struct {
		label string
		total float64
	}{
		{"Morning", buckets.Morning},
		{"Afternoon", buckets.Afternoon},
		{"Evening", buckets.Evening},
		{"Night", buckets.Night},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "  %s %s\n", util.PadRight(row.label, 10), util.FormatVolume(row.total))
	}
	fmt.Fprintln(b)
}

func (d *Dashboard) renderStreaks(b *strings.Builder, snap tracker.Snapshot) {
	fmt.Fprintln(b, util.FormatDataTitle("Streaks"))
	fmt.Fprintf(b, "  Current  %d days\n", snap.Current)
	if snap.Longest.Length > 0 {
		fmt.Fprintf(b, "  Longest  %d days (%s to %s)\n",
			snap.Longest.Length, snap.Longest.StartDate, snap.Longest.EndDate)
	} else {
		fmt.Fprintln(b, "  Longest  none yet")
	}
	fmt.Fprintln(b)
}

func (d *Dashboard) renderWeek(b *strings.Builder, snap tracker.Snapshot) {
	fmt.Fprintln(b, util.FormatDataTitle("Last 7 Days"))
	goal := snap.Status.Goal
	for _, day := range snap.Week.Days {
		percent := 0.0
		if goal > 0 {
			percent = 100 * day.Total / goal
		}
		fmt.Fprintf(b, "  %s %s %s\n",
			day.Date,
			util.CreateProgressBar(percent, d.width-32),
			util.PadRight(util.FormatVolume(day.Total), 9),
		)
	}
	fmt.Fprintf(b, "  Week total %s, average %s/day, %d days with intake\n",
		util.FormatVolume(snap.Week.Total),
		util.FormatVolume(snap.Week.Average),
		snap.Week.DaysWithIntake,
	)
	fmt.Fprintln(b)
}

func (d *Dashboard) renderFooter(b *strings.Builder, documentPath string) {
	fmt.Fprintln(b, util.FormatSectionSeparator(d.width))
	if d.notice != "" {
		fmt.Fprintf(b, "%s\n", util.FormatOverviewTitle(d.notice))
	}
	fmt.Fprintf(b, "watching %s\n", documentPath)
	fmt.Fprintln(b, "q quit · b backup · r refresh")
}
