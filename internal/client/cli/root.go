package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s #%d)", a.phone, a.client.AccountID())
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to ReportKeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
