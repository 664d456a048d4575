package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/reportkeeper/internal/filex"
)

// readFile and writeFile are test seams.
var (
	readFile  = os.ReadFile
	writeFile = os.WriteFile
)

var errMissingArg = errors.New("missing argument")

// parseID reads a positive id from args[0].
func parseID(args []string, what string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: %s", errMissingArg, what)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, args[0])
	}
	return id, nil
}

// optionalID is parseID for commands where the id may be omitted; zero
// means the logged-in account.
func optionalID(args []string, what string) (int64, error) {
	if len(args) == 0 {
		return 0, nil
	}
	return parseID(args, what)
}

// Upload sends a local file as a report for the given account (default: self).
func (a *App) Upload(ctx context.Context, args []string) error {
	accountID, err := optionalID(args, "account id")
	if err != nil {
		return err
	}

	path, err := getSimpleText(a.reader, "Enter file path", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}

	content, err := readFile(path)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	r, err := a.client.Upload(ctx, accountID, filepath.Base(path), description, content)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Report #%d uploaded for account #%d\n", r.ID, r.AccountID)
	return nil
}

// List prints the reports of the given account (default: self).
func (a *App) List(ctx context.Context, args []string) error {
	accountID, err := optionalID(args, "account id")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	reports, err := a.client.List(ctx, accountID)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(a.out, "No reports")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACCOUNT\tFILE\tDESCRIPTION")
	for _, r := range reports {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", r.ID, r.AccountID, r.FileName, r.Description)
	}
	return w.Flush()
}

// Download saves a report under the configured download directory.
func (a *App) Download(ctx context.Context, args []string) error {
	id, err := parseID(args, "report id")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	r, content, err := a.client.Download(ctx, id)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureSubdDir(a.config.DownloadDir)
	if err != nil {
		return err
	}
	name := filepath.Base(r.FileName)
	if name == "." || name == string(filepath.Separator) {
		name = fmt.Sprintf("report-%d", r.ID)
	}
	path := filex.UniquePath(dir, name)
	if err := writeFile(path, content, 0o600); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved to %s\n", path)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args, "report id")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	owner, err := a.client.Delete(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Report #%d of account #%d deleted\n", id, owner)
	return nil
}
