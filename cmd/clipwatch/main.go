package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ai-notecapture-be/internal/config"
	"ai-notecapture-be/internal/pkg/logger"
	"ai-notecapture-be/pkg/clipboard"
	"ai-notecapture-be/pkg/contenttype"
	"ai-notecapture-be/pkg/events"
	pktNats "ai-notecapture-be/pkg/nats"

	"github.com/fatih/color"
)

// clipwatch prints every clipboard change with its suggested content type.
// With -events it also tails the server's activity stream from NATS.
func main() {
	previewLen := flag.Int("preview", 80, "characters of text to show per change")
	tailEvents := flag.Bool("events", false, "also print server events from NATS_URL")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer log.Sync()

	reader := clipboard.NewReader(clipboard.NewSystemSource(), log)
	monitor := clipboard.NewMonitor(reader, cfg.Clipboard.PollInterval, log)
	unsubscribe := monitor.Subscribe(func(data *clipboard.Data) {
		printChange(data, *previewLen)
	})
	defer unsubscribe()

	if *tailEvents {
		if cfg.App.NatsURL == "" {
			color.Red("NATS_URL is not set, skipping event feed")
		} else if closeFeed, err := tail(ctx, cfg.App.NatsURL); err != nil {
			color.Red("Failed to subscribe to events: %v", err)
		} else {
			defer closeFeed()
		}
	}

	monitor.NotifyInteraction(ctx)
	color.Cyan("Watching clipboard every %s (Ctrl-C to stop)\n", cfg.Clipboard.PollInterval)

	<-ctx.Done()
	monitor.Stop()
	color.Cyan("\nStopped")
}

func printChange(data *clipboard.Data, previewLen int) {
	color.Yellow("\n[%s]", data.Type)
	if data.Text != "" {
		color.Green("suggested: %s", contenttype.Classify(data.Text))
		fmt.Println(preview(data.Text, previewLen))
	}
	if data.Image != "" {
		fmt.Printf("image: %d bytes as data URL\n", len(data.Image))
	}
}

func tail(ctx context.Context, url string) (func(), error) {
	sub, err := pktNats.NewSubscriber(url)
	if err != nil {
		return nil, err
	}

	cc, err := sub.Subscribe(ctx, ">", func(_ context.Context, event events.Event) error {
		color.Magenta("event %s %v", event.EventType(), event.Payload())
		return nil
	})
	if err != nil {
		sub.Close()
		return nil, err
	}

	return func() {
		cc.Stop()
		sub.Close()
	}, nil
}

func preview(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
