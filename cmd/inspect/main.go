// Command inspect prints what the bridge stored in Badger: the group directory,
// or the message history of one group.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"signald-groups/domain"
	"signald-groups/internal"
	"signald-groups/repositories"
	"strings"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	LimitMessages  int    `envconfig:"LIMIT_MESSAGES" default:"50"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"ERROR"`
	// INSPECT_COLOURS disables the coloured headers when piping the output
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Inspect error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string, out io.Writer) (int, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	flags := flag.NewFlagSet("inspect", flag.ContinueOnError)
	group := flags.String("group", "", "Show the history of this group instead of the directory")
	cursor := flags.String("cursor", "", "Continue a history listing from this cursor")
	addr := flags.String("http", "", "Serve an HTML key browser on this address instead of printing")
	if err := flags.Parse(args); err != nil {
		return exitConfig, err
	}
	color.Enable = config.Colours
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := openReadOnly(config.BadgerFilepath)
	if err != nil {
		return exitRuntime, fmt.Errorf("error while opening Badger: %w", err)
	}
	defer func() { _ = db.Close() }()

	if *addr != "" {
		return serve(*addr, db)
	}

	if *group == "" {
		entries, err := repositories.NewDirectoryRepository(db, log).ListChats(context.Background())
		if err != nil {
			return exitRuntime, err
		}
		renderDirectory(out, entries)
		return exitOK, nil
	}

	var from *string
	if *cursor != "" {
		from = cursor
	}
	messages, next, err := repositories.NewMessageRepository(db, log, &config.LimitMessages).GetMessages(*group, from)
	if err != nil {
		return exitRuntime, err
	}
	renderHistory(out, *group, messages, next)
	return exitOK, nil
}

func serve(addr string, db *badger.DB) (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{Addr: addr, Handler: internal.NewInspectHandler(db, internal.DefaultMapper, "chat:")}
	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()
	fmt.Printf("Browse http://%s/inspect (Ctrl+C to quit)\n", addr)

	select {
	case <-ctx.Done():
	case err := <-errChan:
		return exitRuntime, err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	return exitOK, nil
}

func openReadOnly(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func title(out io.Writer, text string) {
	_, _ = fmt.Fprintln(out, color.New(color.BgBlack, color.FgGreen).Render(text))
}

func renderDirectory(out io.Writer, entries []domain.DirectoryEntry) {
	title(out, fmt.Sprintf("%d groups in directory", len(entries)))
	table := newTable(out, "Group ID", "Name", "Alias", "Grouping")
	for _, entry := range entries {
		table.Append([]string{entry.ID, entry.Name, entry.Alias, entry.Grouping})
	}
	table.Render()
}

func renderHistory(out io.Writer, groupID string, messages []repositories.DiskMessage, next *string) {
	title(out, fmt.Sprintf("%d messages in %s (newest first)", len(messages), groupID))
	table := newTable(out, "At", "Author", "Direction", "Content")
	for _, message := range messages {
		table.Append([]string{
			message.At.Format("2006-01-02 15:04:05"),
			message.Author,
			direction(domain.MessageFlags(message.Flags)),
			strings.ReplaceAll(message.Content, "\n", " | "),
		})
	}
	table.Render()
	if next != nil {
		_, _ = fmt.Fprintf(out, "next cursor: %s\n", *next)
	}
}

func direction(flags domain.MessageFlags) string {
	var parts []string
	switch {
	case flags.Has(domain.FlagsSelfEcho):
		parts = append(parts, "echo")
	case flags.Has(domain.FlagSend):
		parts = append(parts, "sent")
	case flags.Has(domain.FlagRecv):
		parts = append(parts, "received")
	}
	if flags.Has(domain.FlagImages) {
		parts = append(parts, "images")
	}
	return strings.Join(parts, ",")
}
