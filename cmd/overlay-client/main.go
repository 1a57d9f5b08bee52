// Command overlay-client polls a courtside data endpoint and renders each
// reconciled frame as a line of text. It exercises the same reconciler the
// overlay surfaces embed.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/okian/courtside/internal/domain/view"
	"github.com/okian/courtside/internal/reconciler"
	"github.com/okian/courtside/pkg/logger"
)

// Default configuration constants.
const (
	defaultBaseURL  = "http://localhost:9080"
	defaultProvider = "rankedin"
	defaultRefresh  = time.Second
	defaultTimeout  = 6 * time.Second
)

func main() {
	var (
		baseURL  = flag.String("url", defaultBaseURL, "Base URL of the service")
		provider = flag.String("provider", defaultProvider, "Feed provider segment in the API path")
		courtID  = flag.String("court", "", "Court id to follow (required)")
		refresh  = flag.Duration("refresh", defaultRefresh, "Poll interval (clamped to 250ms minimum)")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	if *courtID == "" {
		os.Stderr.WriteString("missing -court\n")
		flag.Usage()
		os.Exit(2)
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataURL := fmt.Sprintf("%s/api/%s/court/%s/data",
		strings.TrimRight(*baseURL, "/"), *provider, url.PathEscape(*courtID))

	poller := reconciler.NewPoller(
		reconciler.NewHTTPSource(dataURL, *timeout),
		reconciler.WithInterval(*refresh),
	)

	poller.Run(ctx, func(f reconciler.Frame) {
		fmt.Println(render(f))
	})
}

// render turns one frame into a single display line.
func render(f reconciler.Frame) string {
	var b strings.Builder

	switch f.View {
	case view.StateScoreboard:
		fmt.Fprintf(&b, "%-10s %s%s %d (%d)  -  (%d) %d %s%s",
			f.View,
			serveDot(f.Left.Serving), f.Left.Name, f.Left.Games, f.Left.Points,
			f.Right.Points, f.Right.Games, f.Right.Name, serveDot(f.Right.Serving),
		)
		fmt.Fprintf(&b, "  G%d %s %s", f.GameNumber, f.Status, f.Clock)
		if f.Tiebreak {
			b.WriteString(" TIEBREAK")
		}
	case view.StateSlate:
		fmt.Fprintf(&b, "%-10s %s", f.View, f.Slate.TournamentName)
		if f.Slate.Subtitle != "" {
			fmt.Fprintf(&b, " | %s", f.Slate.Subtitle)
		}
		if f.Slate.LeftName != "" || f.Slate.RightName != "" {
			fmt.Fprintf(&b, " | %s vs %s", f.Slate.LeftName, f.Slate.RightName)
		}
		if f.Slate.StartTime != "" {
			fmt.Fprintf(&b, " @ %s", f.Slate.StartTime)
		}
	default:
		fmt.Fprintf(&b, "%-10s", f.View)
	}

	if f.Animation != nil {
		fmt.Fprintf(&b, "  [%s:%s]", f.Animation.Type, f.Animation.Target)
	}
	if f.Err {
		b.WriteString("  !ERROR")
	}

	return b.String()
}

func serveDot(serving bool) string {
	if serving {
		return "*"
	}
	return " "
}
