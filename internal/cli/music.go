package cli

import (
	"context"
	"os"

	"github.com/jaynujangad03/moodcam/internal/journal"
)

// Music searches mood-matched music. With an empty query the search is
// derived from the most recent mood, like the in-app playlist screen.
func (a *App) Music(ctx context.Context) error {
	email, err := a.currentEmail()
	if err != nil {
		return err
	}

	query, err := getSimpleText(a.reader, "Search music (empty = match your last mood)", os.Stdout)
	if err != nil {
		return err
	}
	if query == "" {
		query = "mood booster songs"
		if entries, listErr := a.journal.ListAll(ctx, email); listErr == nil {
			if mood, ok := journal.LastMood(entries); ok {
				query = mood.Label + " mood songs"
			}
		}
		printlnFn("Searching for:", query)
	}

	results, err := a.music.Search(ctx, query)
	if err != nil {
		printlnFn("Music search failed.")
		return err
	}
	if len(results) == 0 {
		printlnFn("No results.")
		return nil
	}
	for _, r := range results {
		printlnFn("🎵", r.Title, "|", r.Channel)
		printlnFn("   ", r.ExternalURL)
	}
	return nil
}
