package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/infra/config"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

// cliApp builds the command tree. build is swapped out in tests.
type cliApp struct {
	out   io.Writer
	build func(configPath string) (*runtime, error)
}

func newCLI(out io.Writer, build func(string) (*runtime, error)) *cliApp {
	return &cliApp{out: out, build: build}
}

func (a *cliApp) command() *cli.Command {
	return &cli.Command{
		Name:    "replydesk",
		Usage:   "Answer comments on your posts from the terminal",
		Version: versionString(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config.toml (default ~/.config/replydesk/config.toml)",
			},
		},
		Action: a.with(func(_ context.Context, _ *cli.Command, rt *runtime) error {
			return runTUI(rt)
		}),
		Commands: []*cli.Command{
			{
				Name:  "media",
				Usage: "List the account's media",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "account", Usage: "Account id (defaults to account.id)"},
				},
				Action: a.with(a.listMedia),
			},
			{
				Name:      "sync",
				Usage:     "Fetch all comments of a media and store them",
				ArgsUsage: "MEDIA_ID",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Comments to fetch (defaults to comments.sync_limit)"},
				},
				Action: a.with(a.sync),
			},
			{
				Name:      "comments",
				Usage:     "List stored comments of a media",
				ArgsUsage: "MEDIA_ID",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Usage: "Zero-based page"},
					&cli.IntFlag{Name: "size", Usage: "Page size (defaults to history.page_size)"},
					&cli.StringFlag{Name: "replied", Usage: "Filter by replied state: true or false"},
				},
				Action: a.with(a.listComments),
			},
			{
				Name:      "unreplied",
				Usage:     "List comments still waiting for a reply",
				ArgsUsage: "MEDIA_ID",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Usage: "Page size (defaults to comments.page_size)"},
				},
				Action: a.with(a.listUnreplied),
			},
			{
				Name:      "reply",
				Usage:     "Reply to one comment",
				ArgsUsage: "COMMENT_ID MESSAGE...",
				Action:    a.with(a.replyOne),
			},
			{
				Name:      "send-all",
				Usage:     "Send every reply in a drafts file concurrently",
				ArgsUsage: "DRAFTS_TOML",
				Description: `DRAFTS_TOML maps comment ids to replies:

  [drafts]
  "17890001" = "Thanks for asking!"
  "17890002" = "Sent you a DM"`,
				Action: a.with(a.sendAll),
			},
			{
				Name:      "auto-reply",
				Usage:     "Reply to pending comments containing a keyword",
				ArgsUsage: "MEDIA_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "keyword", Aliases: []string{"k"}, Usage: "Keyword to match", Required: true},
					&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "Reply message", Required: true},
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 50, Usage: "Comments to process"},
				},
				Action: a.with(a.autoReply),
			},
		},
	}
}

type runtimeAction func(ctx context.Context, c *cli.Command, rt *runtime) error

// with loads the runtime for the root --config flag before running fn.
func (a *cliApp) with(fn runtimeAction) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		rt, err := a.build(c.String("config"))
		if err != nil {
			return err
		}
		defer rt.close()
		return fn(ctx, c, rt)
	}
}

func oneArg(c *cli.Command, name string) (string, error) {
	if c.Args().Len() != 1 || strings.TrimSpace(c.Args().First()) == "" {
		return "", fmt.Errorf("usage: %s %s", c.Name, name)
	}
	return strings.TrimSpace(c.Args().First()), nil
}

func (a *cliApp) listMedia(ctx context.Context, c *cli.Command, rt *runtime) error {
	account := c.String("account")
	if account == "" {
		account = rt.cfg.Account.ID
	}
	if account == "" {
		return errors.New("no account id: pass --account or set account.id")
	}
	page, err := rt.media.ListMedia(ctx, account)
	if err != nil {
		return err
	}

	t := newTable("ID", "TYPE", "CAPTION")
	for _, m := range page.Items {
		t.Row(m.ID, m.MediaType, common.Truncate(m.Caption, 60))
	}
	fmt.Fprintln(a.out, t.Render())
	if page.Next != "" {
		fmt.Fprintf(a.out, "More media available (cursor %s)\n", page.Next)
	}
	return nil
}

func (a *cliApp) sync(ctx context.Context, c *cli.Command, rt *runtime) error {
	mediaID, err := oneArg(c, "MEDIA_ID")
	if err != nil {
		return err
	}
	limit := int(c.Int("limit"))
	if limit == 0 {
		limit = rt.cfg.Comments.SyncLimit
	}
	res, err := rt.media.FetchAndStoreComments(ctx, mediaID, limit)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved/updated %d comments\n", res.SavedOrUpdated)
	return nil
}

func (a *cliApp) listComments(ctx context.Context, c *cli.Command, rt *runtime) error {
	mediaID, err := oneArg(c, "MEDIA_ID")
	if err != nil {
		return err
	}
	replied, err := parseReplied(c.String("replied"))
	if err != nil {
		return err
	}
	size := int(c.Int("size"))
	if size == 0 {
		size = rt.cfg.History.PageSize
	}
	page, err := rt.comments.ListComments(ctx, domain.CommentQuery{
		MediaID: mediaID,
		Page:    int(c.Int("page")),
		Size:    size,
		Replied: replied,
	})
	if err != nil {
		return err
	}
	a.printComments(page, true)
	fmt.Fprintf(a.out, "Page %d / %d (%d total)\n", page.Number+1, max(1, page.TotalPages), page.TotalElements)
	return nil
}

func (a *cliApp) listUnreplied(ctx context.Context, c *cli.Command, rt *runtime) error {
	mediaID, err := oneArg(c, "MEDIA_ID")
	if err != nil {
		return err
	}
	size := int(c.Int("size"))
	if size == 0 {
		size = rt.cfg.Comments.PageSize
	}
	page, err := rt.comments.ListUnreplied(ctx, mediaID, 0, size)
	if err != nil {
		return err
	}
	if len(page.Comments) == 0 {
		fmt.Fprintln(a.out, "✅ No unreplied comments found.")
		return nil
	}
	a.printComments(page, false)
	return nil
}

func (a *cliApp) printComments(page domain.CommentPage, withState bool) {
	headers := []string{"COMMENT ID", "USER", "TEXT"}
	if withState {
		headers = append(headers, "REPLIED")
	}
	t := newTable(headers...)
	for _, cm := range page.Comments {
		row := []string{cm.CommentID, cm.Username, common.Truncate(cm.Text, 60)}
		if withState {
			row = append(row, strconv.FormatBool(cm.Replied))
		}
		t.Row(row...)
	}
	fmt.Fprintln(a.out, t.Render())
}

func (a *cliApp) replyOne(ctx context.Context, c *cli.Command, rt *runtime) error {
	if c.Args().Len() < 2 {
		return fmt.Errorf("usage: %s COMMENT_ID MESSAGE...", c.Name)
	}
	args := c.Args().Slice()
	commentID := strings.TrimSpace(args[0])
	text := strings.Join(args[1:], " ")

	out, sent := rt.dispatcher.SendOne(ctx, commentID, "", text)
	if !sent {
		return domain.ErrEmptyReply
	}
	if !out.OK() {
		return fmt.Errorf("failed to send to %s: %w", commentID, out.Err)
	}
	fmt.Fprintf(a.out, "Reply sent to comment %s\n", commentID)
	return nil
}

func (a *cliApp) sendAll(ctx context.Context, c *cli.Command, rt *runtime) error {
	path, err := oneArg(c, "DRAFTS_TOML")
	if err != nil {
		return err
	}
	entries, err := config.LoadDrafts(path)
	if err != nil {
		return err
	}

	drafts := reply.NewDrafts()
	for id, text := range entries {
		drafts.Set(id, text)
	}
	batch := drafts.Snapshot()
	if len(batch) == 0 {
		fmt.Fprintln(a.out, "Nothing to send.")
		return nil
	}

	outcomes := rt.dispatcher.SendAll(ctx, batch, nil)
	for _, o := range outcomes {
		if !o.OK() {
			fmt.Fprintf(a.out, "✗ %s: %v\n", o.CommentID, o.Err)
		}
	}
	summary := reply.Summarize(outcomes)
	fmt.Fprintln(a.out, summary.Message())
	if summary.Failed() > 0 {
		return fmt.Errorf("%d of %d replies failed", summary.Failed(), summary.Total)
	}
	return nil
}

func (a *cliApp) autoReply(ctx context.Context, c *cli.Command, rt *runtime) error {
	mediaID, err := oneArg(c, "MEDIA_ID")
	if err != nil {
		return err
	}
	res, err := rt.comments.AutoReply(ctx, mediaID, domain.AutoReplyRequest{
		Limit:   int(c.Int("limit")),
		Keyword: c.String("keyword"),
		Message: c.String("message"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Reply sent to %d comments\n", res.Processed)
	return nil
}

// parseReplied maps "", "true" and "false" to the replied filter.
func parseReplied(s string) (*bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --replied %q: want true or false", s)
	}
	return &v, nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}
