package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/export"
	"github.com/alignhq/align/internal/progress"
	"github.com/alignhq/align/internal/ui"
)

var journalDate string

var journalCmd = &cobra.Command{
	Use:     "journal [text]",
	Aliases: []string{"j"},
	Short:   "Write today's journal entry",
	Long: `Write the day's diary. With no text, shows the entry for the day.
Use the gratitude subcommand for the gratitude note; one entry per day,
writing again overwrites.

  align journal "Slow start, strong finish."
  align journal gratitude "Morning coffee on the porch."
  align journal show
  align journal export backup.age`,
	Args: cobra.ArbitraryArgs,
	RunE: runJournal,
}

func init() {
	journalCmd.PersistentFlags().StringVarP(&journalDate, "date", "d", "", "Entry date instead of today (YYYY-MM-DD)")
	journalListCmd.Flags().IntVarP(&journalListN, "limit", "n", 10, "How many entries to show")
	journalCmd.AddCommand(journalGratitudeCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalExportCmd)
	journalCmd.AddCommand(journalImportCmd)
}

func journalEntryDate() (string, error) {
	if journalDate == "" {
		return progress.Today(progress.SystemClock{}), nil
	}
	if _, err := time.ParseInLocation(progress.DateLayout, journalDate, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", journalDate)
	}
	return journalDate, nil
}

func runJournal(_ *cobra.Command, args []string) error {
	date, err := journalEntryDate()
	if err != nil {
		return err
	}

	db, ts, err := openTrackStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(args) == 0 {
		entry, err := ts.GetJournal(date)
		if err != nil {
			return err
		}
		if entry == nil {
			ui.Inf("No entry for " + date + ".")
			ui.Tip("`align journal \"...\"` to write one.")
			return nil
		}
		printJournalEntry(entry.Date, entry.Diary, entry.Gratitude)
		return nil
	}

	if err := ts.SetDiary(date, strings.Join(args, " ")); err != nil {
		return err
	}
	ui.Ok("Journal saved for " + date + ".")
	return nil
}

var journalGratitudeCmd = &cobra.Command{
	Use:     "gratitude <text>",
	Aliases: []string{"g"},
	Short:   "Write the day's gratitude note",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		date, err := journalEntryDate()
		if err != nil {
			return err
		}

		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := ts.SetGratitude(date, strings.Join(args, " ")); err != nil {
			return err
		}
		ui.Ok("Gratitude saved for " + date + ".")
		return nil
	},
}

var journalShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show one day's entry",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		date := progress.Today(progress.SystemClock{})
		if len(args) == 1 {
			date = args[0]
		} else if journalDate != "" {
			date = journalDate
		}

		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		entry, err := ts.GetJournal(date)
		if err != nil {
			return err
		}
		if entry == nil {
			ui.Inf("No entry for " + date + ".")
			return nil
		}
		printJournalEntry(entry.Date, entry.Diary, entry.Gratitude)
		return nil
	},
}

var journalListN int

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent entries",
	RunE: func(_ *cobra.Command, _ []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := ts.RecentJournal(journalListN)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			ui.Inf("Journal is empty.")
			return nil
		}

		ui.Header(ui.IconJournal + " Journal")
		for _, e := range entries {
			line := e.Diary
			if line == "" {
				line = ui.Muted.Render("(gratitude only)")
			}
			if runes := []rune(line); len(runes) > 72 {
				line = string(runes[:72]) + "…"
			}
			fmt.Printf("  %s  %s\n", ui.Accent.Render(e.Date), line)
		}
		fmt.Println()
		return nil
	},
}

var journalExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the journal to an encrypted archive",
	Long:  `Export every journal entry to a passphrase-encrypted age file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := ts.AllJournal()
		if err != nil {
			return err
		}

		pass, err := readSecret("Passphrase: ")
		if err != nil {
			return err
		}
		confirm, err := readSecret("Confirm passphrase: ")
		if err != nil {
			return err
		}
		if pass != confirm {
			return fmt.Errorf("passphrases do not match")
		}

		archive := &export.Archive{
			ExportedAt: progress.Today(progress.SystemClock{}),
			Entries:    entries,
		}
		if err := export.WriteFile(args[0], archive, pass); err != nil {
			return err
		}
		ui.Ok(fmt.Sprintf("Exported %d entries to %s.", len(entries), args[0]))
		return nil
	},
}

var journalImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from an encrypted archive",
	Long: `Decrypt an exported archive and merge its entries. Imported entries
overwrite local entries for the same dates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		pass, err := readSecret("Passphrase: ")
		if err != nil {
			return err
		}

		archive, err := export.ReadFile(args[0], pass)
		if err != nil {
			return err
		}

		db, ts, err := openTrackStore()
		if err != nil {
			return err
		}
		defer db.Close()

		for _, e := range archive.Entries {
			if e.Diary != "" {
				if err := ts.SetDiary(e.Date, e.Diary); err != nil {
					return err
				}
			}
			if e.Gratitude != "" {
				if err := ts.SetGratitude(e.Date, e.Gratitude); err != nil {
					return err
				}
			}
		}
		ui.Ok(fmt.Sprintf("Imported %d entries from archive exported %s.", len(archive.Entries), archive.ExportedAt))
		return nil
	},
}

func printJournalEntry(date, diary, gratitude string) {
	ui.Header(ui.IconJournal + " " + date)
	if diary != "" {
		ui.Puts("  " + diary)
	}
	if gratitude != "" {
		ui.Kv("Grateful for", gratitude)
	}
	fmt.Println()
}
