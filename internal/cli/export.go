package cli

import (
	"context"
	"errors"
	"os"

	"github.com/jaynujangad03/moodcam/internal/common"
)

// Export writes the journal as a JSON document into the current directory.
func (a *App) Export(ctx context.Context) error {
	email, err := a.currentEmail()
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	path, err := a.journal.ExportToFile(ctx, email, dir)
	if err != nil {
		if errors.Is(err, common.ErrNoData) {
			printlnFn("Nothing to export yet.")
		} else {
			printlnFn("Export failed.")
		}
		return err
	}
	printlnFn("Exported to", path)
	return nil
}

// ClearEntries deletes the whole journal after an explicit confirmation.
func (a *App) ClearEntries(ctx context.Context) error {
	email, err := a.currentEmail()
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, "Delete ALL entries? Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.journal.ClearAll(ctx, email); err != nil {
		printlnFn("Could not clear the journal.")
		return err
	}
	printlnFn("All entries deleted.")
	return nil
}
