package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mrsinham/hilom/internal/audit"
	"github.com/mrsinham/hilom/internal/config"
	"github.com/mrsinham/hilom/internal/favorites"
	"github.com/mrsinham/hilom/internal/journal"
	"github.com/mrsinham/hilom/internal/recommend"
	"github.com/spf13/cobra"
)

func historyCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "history [CATEGORY]",
		Short:     "Show what you played, read, wrote and booked",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{audit.CategoryMusic, audit.CategoryVideo, audit.CategoryBook, audit.CategoryJournal, audit.CategoryAppointment},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			var entries []audit.Entry
			if len(args) == 1 {
				entries, err = a.history.ByCategory(strings.ToLower(args[0]))
			} else {
				entries, err = a.history.Entries()
				slices.Reverse(entries)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No history yet.")
				return nil
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.Category, e.Item, e.Date, e.Time}
			}
			printTable(out, []string{"Category", "Item", "Date", "Time"}, rows)
			return nil
		},
	}
}

func recommendCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend MOOD",
		Short: "List songs, videos and books for a mood",
		Long:  "List songs, videos and books for a mood. Moods: " + strings.Join(recommend.Default().Moods(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := recommend.Default().ForMood(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTitle(out, "Songs for feeling "+m.Name)
			for _, s := range m.Songs {
				fmt.Fprintf(out, "  ♪ %s\n", s)
			}
			fmt.Fprintln(out)

			printTitle(out, "Videos")
			for _, v := range m.Videos {
				fmt.Fprintf(out, "  ▶ %s\n", v.Title)
			}
			fmt.Fprintln(out)

			printTitle(out, "Books")
			for _, b := range m.Books {
				fmt.Fprintf(out, "  ✎ %s - %s\n", b.Title, b.Description)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "random [MOOD]",
		Short: "Play a random song, from any mood or from MOOD",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			var mood string
			if len(args) == 1 {
				mood = args[0]
			}
			lib := recommend.Default()
			mood, song, err := lib.RandomPick(nil, mood)
			if err != nil {
				return err
			}

			pb, err := recommend.NewPlayer(lib, a.history).Song(mood, song)
			if err != nil {
				return err
			}
			printPlayback(cmd, pb)
			return nil
		},
	})

	return cmd
}

func playCmd(configFile *string) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:       "play song|video|book MOOD TITLE",
		Short:     "Get the link for a song, video or book and record it in history",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"song", "video", "book"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			player := recommend.NewPlayer(recommend.Default(), a.history)
			kind, mood, title := strings.ToLower(args[0]), args[1], args[2]

			var pb recommend.Playback
			switch kind {
			case "song":
				pb, err = player.Song(mood, title)
			case "video":
				pb, err = player.Video(mood, title)
			case "book":
				pb, err = player.Book(mood, title)
			default:
				return fmt.Errorf("invalid kind: %s (valid: song, video, book)", kind)
			}
			if err != nil {
				return err
			}

			printPlayback(cmd, pb)
			if open {
				if err := recommend.OpenURL(cmd.Context(), pb.URL); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the link in the default browser")

	return cmd
}

func printPlayback(cmd *cobra.Command, pb recommend.Playback) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Now playing: %s\n", pb.Title)
	fmt.Fprintf(out, "  %s\n", pb.URL)
	if pb.Alternate != "" {
		fmt.Fprintf(out, "  %s\n", pb.Alternate)
	}
}

func favoritesCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage your favorite songs, videos and books",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [CATEGORY]",
		Short: "List favorites",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			var category string
			if len(args) == 1 {
				category = strings.ToLower(args[0])
			}
			favs, err := favorites.New(a.cfg.Path(config.FavoritesFile)).List(category)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(favs) == 0 {
				fmt.Fprintln(out, "No favorites yet.")
				return nil
			}
			rows := make([][]string, len(favs))
			for i, f := range favs {
				rows[i] = []string{f.Category, f.Item}
			}
			printTable(out, []string{"Category", "Item"}, rows)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add CATEGORY ITEM",
		Short: "Star an item (category: music, video or book)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			added, err := favorites.New(a.cfg.Path(config.FavoritesFile)).Add(strings.ToLower(args[0]), args[1])
			if err != nil {
				return err
			}
			if added {
				fmt.Fprintln(cmd.OutOrStdout(), "Added to favorites.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Already in favorites.")
			}
			return nil
		},
	})

	return cmd
}

var feelings = []string{"Happy", "Calm", "Grateful", "Sad", "Anxious", "Angry", "Tired", "Hopeful"}

func journalCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write and read journal entries",
	}

	var title, feeling, content string
	write := &cobra.Command{
		Use:   "write",
		Short: "Write a journal entry (prompts when --content is not given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			if !cmd.Flags().Changed("content") {
				if feeling == "" {
					feeling = feelings[0]
				}
				options := huh.NewOptions(feelings...)
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().Title("Title").Value(&title),
					huh.NewSelect[string]().Title("How do you feel?").Options(options...).Value(&feeling),
					huh.NewText().Title("Write your thoughts").Lines(8).Value(&content),
				))
				if err := form.RunWithContext(cmd.Context()); err != nil {
					return fmt.Errorf("journal form: %w", err)
				}
			}

			store := journal.New(a.cfg.Path(config.JournalFile), a.history)
			entry, err := store.Save(title, feeling, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q on %s at %s.\n", entry.HistoryItem(), entry.Date, entry.Time)
			return nil
		},
	}
	write.Flags().StringVar(&title, "title", "", "Entry title")
	write.Flags().StringVar(&feeling, "feeling", "", "How you feel")
	write.Flags().StringVar(&content, "content", "", "Entry text")
	cmd.AddCommand(write)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			entries, err := journal.New(a.cfg.Path(config.JournalFile), a.history).Entries()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No journal entries yet.")
				return nil
			}
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.Date, e.Time, e.HistoryItem(), e.Feeling, e.Content}
			}
			printTable(out, []string{"Date", "Time", "Title", "Feeling", "Entry"}, rows)
			return nil
		},
	})

	return cmd
}

func quoteCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Show an inspirational quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*configFile)
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintln(cmd.OutOrStdout(), quoteStyle.Render(recommend.DailyQuote(a.cfg.Path(config.QuotesFile), nil)))
			return nil
		},
	}
}
