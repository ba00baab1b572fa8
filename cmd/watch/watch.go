// Package watch provides a live terminal dashboard over a running solve's
// SharedSearchState: global max depth, best score, and solution flag
// refreshed on a ticker.
package watch

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/eternity/tessellate/pkg/solver"
)

var refreshInterval time.Duration

// WatchCmd draws a live dashboard over a SharedSearchState. Run is the
// entry point for a caller sharing a state in-process; the standalone
// command creates a fresh state, so it shows zero depth and score and no
// solution.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal dashboard of a search's shared state",
	Long: `Render a live-updating dashboard of a search's SharedSearchState: the
global max depth, global best score, and whether a solution was found,
redrawn on a ticker. Run standalone, the dashboard watches a fresh state
that no search updates. Press q or Ctrl-C to exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		shared := solver.NewSharedSearchState()
		return Run(shared)
	},
}

// Run drives the dashboard against shared until the user quits: pause
// screen, redraw, resume, against a tcell.Screen.
func Run(shared *solver.SharedSearchState) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("watch: failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("watch: failed to init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(refreshIntervalOrDefault())
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			draw(screen, shared)
		}
	}
}

func refreshIntervalOrDefault() time.Duration {
	if refreshInterval > 0 {
		return refreshInterval
	}
	return time.Second
}

func draw(screen tcell.Screen, shared *solver.SharedSearchState) {
	screen.Clear()

	labelStyle := tcell.StyleDefault.Bold(true)
	valueStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if shared.SolutionFound() {
		valueStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}

	drawLine(screen, 0, 0, "tessellate watch", labelStyle)
	drawLine(screen, 0, 2, fmt.Sprintf("global max depth: %d", shared.GlobalMaxDepth()), valueStyle)
	drawLine(screen, 0, 3, fmt.Sprintf("global best score: %d", shared.GlobalBestScore()), valueStyle)
	drawLine(screen, 0, 4, fmt.Sprintf("solution found: %v", shared.SolutionFound()), valueStyle)
	drawLine(screen, 0, 6, "press q to quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	screen.Show()
}

func drawLine(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// GetCommand returns the watch command for registration with root.
func GetCommand() *cobra.Command {
	WatchCmd.Flags().DurationVar(&refreshInterval, "interval", time.Second, "dashboard refresh interval")
	return WatchCmd
}
