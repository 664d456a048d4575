package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/reportkeeper/internal/api"
	"github.com/dmitrijs2005/reportkeeper/internal/client/client"
	"github.com/dmitrijs2005/reportkeeper/internal/client/config"
)

// apiClient is the part of client.GRPCClient the commands use.
type apiClient interface {
	LoggedIn() bool
	AccountID() int64
	Logout()
	Close() error
	Register(ctx context.Context, phone, password string) (*client.Session, error)
	Login(ctx context.Context, phone, password string) (*client.Session, error)
	Recover(ctx context.Context, recoveryID string) (string, string, error)
	ListGroup(ctx context.Context) (*client.Group, error)
	AddMember(ctx context.Context, username string) (*api.Account, error)
	RemoveMember(ctx context.Context, memberID int64) error
	Upload(ctx context.Context, accountID int64, fileName, description string, content []byte) (*api.Report, error)
	List(ctx context.Context, accountID int64) ([]*api.Report, error)
	Download(ctx context.Context, reportID int64) (*api.Report, []byte, error)
	Delete(ctx context.Context, reportID int64) (int64, error)
}

type App struct {
	config *config.Config
	client apiClient
	reader *bufio.Reader
	out    io.Writer
	phone  string
}

func NewApp(c *config.Config) (*App, error) {
	rk, err := client.NewReportKeeperClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return &App{config: c, client: rk, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

// withTimeout bounds a single server round trip.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
