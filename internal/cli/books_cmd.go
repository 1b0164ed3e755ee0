package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/bibletrack/internal/catalog"
	"github.com/alexanderramin/bibletrack/internal/cli/formatter"
	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/alexanderramin/bibletrack/internal/view"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// testamentValue adapts a domain.TestamentFilter to a pflag.Value.
type testamentValue struct {
	filter *domain.TestamentFilter
}

var _ pflag.Value = (*testamentValue)(nil)

func (v *testamentValue) String() string {
	if v.filter == nil || *v.filter == "" {
		return strings.ToLower(string(domain.TestamentAll))
	}
	return strings.ToLower(string(*v.filter))
}

func (v *testamentValue) Set(s string) error {
	f, err := domain.ParseTestamentFilter(s)
	if err != nil {
		return err
	}
	*v.filter = f
	return nil
}

func (v *testamentValue) Type() string { return "testament" }

func newBooksCmd(app *App) *cobra.Command {
	f := view.Filter{Testament: domain.TestamentAll}

	cmd := &cobra.Command{
		Use:   "books",
		Short: "List books with per-book progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := app.Progress.Books(cmd.Context(), f)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBookTable(rows, f))
			return nil
		},
	}

	cmd.Flags().Var(&testamentValue{filter: &f.Testament}, "testament", "Limit to all, old or new")
	cmd.Flags().BoolVar(&f.UnreadOnly, "unread", false, "Hide books that are fully read")
	_ = cmd.RegisterFlagCompletionFunc("testament", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"all", "old", "new"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newBookCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "book <name...>",
		Short:             "Show the chapter grid of one book",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeBookNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.Progress.Book(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBookDetail(detail.BookProgress, detail.Chapters))
			return nil
		},
	}
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <name...> <chapter>",
		Short: "Flip one chapter between read and unread",
		Example: "  bibletrack toggle John 3\n" +
			"  bibletrack toggle Song of Solomon 2",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			last := args[len(args)-1]
			chapter, err := strconv.Atoi(last)
			if err != nil {
				return fmt.Errorf("invalid chapter %q: %w", last, err)
			}
			ctx := cmd.Context()
			name := strings.Join(args[:len(args)-1], " ")

			done, err := app.Progress.ToggleChapter(ctx, name, chapter)
			if err != nil {
				return err
			}
			book, _ := catalog.Resolve(name)

			state := formatter.Dim("unread")
			if done {
				state = formatter.StyleGreen.Render("read")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d marked %s\n", book.Name, chapter, state)
			return nil
		},
	}
}

func newMarkCmd(app *App, completed bool) *cobra.Command {
	use, short := "mark", "Mark every chapter of a book as read"
	if !completed {
		use, short = "unmark", "Mark every chapter of a book as unread"
	}

	return &cobra.Command{
		Use:               use + " <name...>",
		Short:             short,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeBookNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.Join(args, " ")
			if err := app.Progress.SetBookCompletion(ctx, name, completed); err != nil {
				return err
			}
			detail, err := app.Progress.Book(ctx, name)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBookDetail(detail.BookProgress, detail.Chapters))
			return nil
		},
	}
}

func completeBookNames(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, b := range catalog.AllBooks() {
		if strings.HasPrefix(strings.ToLower(b.Name), strings.ToLower(toComplete)) {
			names = append(names, b.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
