// Command cardctl translates a word or phrase through the lingodeck API and
// stores the pair as a flashcard, the same way the web dialog does.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"lingodeck/internal/client"
	"lingodeck/internal/dialog"
	"lingodeck/internal/domain"
	"lingodeck/internal/validation"

	"go.uber.org/zap"
)

func main() {
	apiURL := flag.String("api", envOr("LINGODECK_API", "http://localhost:8080"), "lingodeck API base URL")
	deckID := flag.String("deck", os.Getenv("LINGODECK_DECK"), "deck id new cards go to")
	from := flag.String("from", domain.DefaultSourceLang, "source language code")
	to := flag.String("to", domain.DefaultTargetLang, "target language code")
	listLanguages := flag.Bool("languages", false, "list supported languages and exit")
	verbose := flag.Bool("v", false, "log requests")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: cardctl -deck <id> [-from en] [-to de] <text>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := client.New(*apiURL, nil)

	if *listLanguages {
		langs, err := api.Languages(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load languages: %v\n", err)
			os.Exit(1)
		}
		for _, l := range langs {
			fmt.Printf("%s\t%s\n", l.Code, l.Name)
		}
		return
	}

	if *deckID == "" {
		flag.Usage()
		os.Exit(2)
	}

	d := dialog.New(dialog.Options{
		DeckID:     *deckID,
		Translator: api,
		Creator:    api,
		Notifier:   dialog.NotifierFunc(printToast),
		Logger:     logger,
	})

	card, err := d.Submit(ctx, domain.TranslationRequest{
		Text:       strings.Join(flag.Args(), " "),
		SourceLang: *from,
		TargetLang: *to,
	})
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		for _, msg := range vErr.Messages {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(2)
	case err != nil:
		// The toast already described the failure
		os.Exit(1)
	}

	fmt.Printf("%s\t%s\t%s\n", card.ID, card.Front, card.Back)
}

func printToast(t dialog.Toast) {
	out := os.Stdout
	if t.Destructive {
		out = os.Stderr
	}
	fmt.Fprintf(out, "%s: %s\n", t.Title, t.Description)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
