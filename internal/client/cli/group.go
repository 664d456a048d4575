package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/reportkeeper/internal/api"
)

func (a *App) Group(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	g, err := a.client.ListGroup(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Group %s, recovery id %s\n", g.LinkedPhone, g.RecoveryID)
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE")
	for _, m := range g.Members {
		fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, memberName(m), memberRole(m))
	}
	return w.Flush()
}

// AddUser links a new member; the name comes from args or a prompt.
func (a *App) AddUser(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = getSimpleText(a.reader, "Enter member name", a.out); err != nil {
			return err
		}
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	m, err := a.client.AddMember(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Member #%d %s added\n", m.ID, m.Username)
	return nil
}

func (a *App) RemoveUser(ctx context.Context, args []string) error {
	id, err := parseID(args, "member id")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.RemoveMember(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Member #%d removed\n", id)
	return nil
}

func memberName(m *api.Account) string {
	if m.Primary {
		return m.Phone
	}
	return m.Username
}

func memberRole(m *api.Account) string {
	if m.Primary {
		return "primary"
	}
	return "member"
}
