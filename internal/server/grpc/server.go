// Package grpc exposes the account and report services over gRPC.
package grpc

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/dmitrijs2005/reportkeeper/internal/api"
	"github.com/dmitrijs2005/reportkeeper/internal/logging"
	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
	"google.golang.org/grpc"
)

// MaxMessageSize bounds a single request or response, uploads included.
const MaxMessageSize = 64 << 20

type accountSvc interface {
	RegisterPrimary(ctx context.Context, phone, password string) (*models.Account, error)
	Authenticate(ctx context.Context, phone, password string) (int64, error)
	RecoverCredentials(ctx context.Context, recoveryID string) (*models.Credentials, error)
	ListGroup(ctx context.Context, accountID int64) (*models.Group, error)
	AddMember(ctx context.Context, accountID int64, username string) (*models.Account, error)
	RemoveMember(ctx context.Context, accountID, memberID int64) error
	InGroup(ctx context.Context, anchorID, accountID int64) error
}

type reportSvc interface {
	Attach(ctx context.Context, accountID int64, fileName string, content io.Reader, size int64, description string) (*models.Report, error)
	ListForAccount(ctx context.Context, accountID int64) ([]*models.Report, error)
	Fetch(ctx context.Context, reportID int64) (*models.Report, error)
	Remove(ctx context.Context, reportID int64) (int64, error)
	Download(ctx context.Context, reportID int64) (*models.Report, io.ReadCloser, error)
	DownloadURL(ctx context.Context, reportID int64) (string, error)
}

type GRPCServer struct {
	address       string
	accounts      accountSvc
	reports       reportSvc
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

var _ api.ReportKeeperServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, as accountSvc, rs reportSvc, secretKey string, tokenValidity time.Duration) (*GRPCServer, error) {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		accounts:      as,
		reports:       rs,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}, nil
}

// newServer builds a grpc.Server with the interceptor chain and the
// ReportKeeper service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
		grpc.MaxRecvMsgSize(MaxMessageSize),
		grpc.MaxSendMsgSize(MaxMessageSize),
	)
	api.RegisterReportKeeperServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
