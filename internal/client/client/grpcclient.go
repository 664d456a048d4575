package client

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/reportkeeper/internal/api"
	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"github.com/dmitrijs2005/reportkeeper/internal/netx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// MaxMessageSize matches the server limit; reports travel inline.
const MaxMessageSize = 64 << 20

// downloadFromURL is a seam for tests.
var downloadFromURL = netx.DownloadFromPresignedURL

// Session is what the server hands back after Register or Login.
type Session struct {
	AccountID  int64
	RecoveryID string
}

// Group is the client view of ListGroup.
type Group struct {
	LinkedPhone string
	RecoveryID  string
	Members     []*api.Account
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      *api.ReportKeeperClient

	mu          sync.RWMutex
	accessToken string
	accountID   int64
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewReportKeeperClientService connects to endpointURL. Extra dial options
// are appended to the defaults.
func NewReportKeeperClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(MaxMessageSize),
			grpc.MaxCallSendMsgSize(MaxMessageSize),
		),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewReportKeeperClient(conn)
	return c, nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setSession(token string, accountID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
	s.accountID = accountID
}

// AccountID returns the logged-in account, or zero.
func (s *GRPCClient) AccountID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID
}

// LoggedIn reports whether a token is held.
func (s *GRPCClient) LoggedIn() bool {
	return s.token() != ""
}

// Logout forgets the token. Tokens are stateless so nothing is sent.
func (s *GRPCClient) Logout() {
	s.setSession("", 0)
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Register creates a primary account and logs in as it.
func (s *GRPCClient) Register(ctx context.Context, phone, password string) (*Session, error) {
	resp, err := s.client.Register(ctx, &api.RegisterRequest{Phone: phone, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	s.setSession(resp.AccessToken, resp.AccountID)
	return &Session{AccountID: resp.AccountID, RecoveryID: resp.RecoveryID}, nil
}

func (s *GRPCClient) Login(ctx context.Context, phone, password string) (*Session, error) {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Phone: phone, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	s.setSession(resp.AccessToken, resp.AccountID)
	return &Session{AccountID: resp.AccountID}, nil
}

// Recover returns the phone and password bound to recoveryID.
func (s *GRPCClient) Recover(ctx context.Context, recoveryID string) (phone, password string, err error) {
	resp, err := s.client.Recover(ctx, &api.RecoverRequest{RecoveryID: recoveryID})
	if err != nil {
		return "", "", mapError(err)
	}
	return resp.Phone, resp.Password, nil
}

func (s *GRPCClient) ListGroup(ctx context.Context) (*Group, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := s.client.ListGroup(ctx, &api.ListGroupRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return &Group{LinkedPhone: resp.LinkedPhone, RecoveryID: resp.RecoveryID, Members: resp.Members}, nil
}

func (s *GRPCClient) AddMember(ctx context.Context, username string) (*api.Account, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := s.client.AddMember(ctx, &api.AddMemberRequest{Username: username})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Member, nil
}

func (s *GRPCClient) RemoveMember(ctx context.Context, memberID int64) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	_, err := s.client.RemoveMember(ctx, &api.RemoveMemberRequest{MemberID: memberID})
	return mapError(err)
}

// Upload attaches content to accountID, or to the logged-in account when
// accountID is zero.
func (s *GRPCClient) Upload(ctx context.Context, accountID int64, fileName, description string, content []byte) (*api.Report, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := s.client.UploadReport(ctx, &api.UploadReportRequest{
		AccountID:   accountID,
		FileName:    fileName,
		Description: description,
		Content:     content,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Report, nil
}

func (s *GRPCClient) List(ctx context.Context, accountID int64) ([]*api.Report, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := s.client.ListReports(ctx, &api.ListReportsRequest{AccountID: accountID})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Reports, nil
}

// Download fetches a report. A presigned link is tried first; servers that
// keep artifacts on disk answer Unimplemented and the bytes are requested
// inline instead.
func (s *GRPCClient) Download(ctx context.Context, reportID int64) (*api.Report, []byte, error) {
	if !s.LoggedIn() {
		return nil, nil, ErrNotLoggedIn
	}

	resp, err := s.client.DownloadReport(ctx, &api.DownloadReportRequest{ReportID: reportID, PresignedURL: true})
	if err == nil {
		content, err := downloadFromURL(ctx, resp.URL)
		if err != nil {
			return nil, nil, err
		}
		return resp.Report, content, nil
	}
	if status.Code(err) != codes.Unimplemented {
		return nil, nil, mapError(err)
	}

	resp, err = s.client.DownloadReport(ctx, &api.DownloadReportRequest{ReportID: reportID})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return resp.Report, resp.Content, nil
}

// Delete removes a report and returns the account that owned it.
func (s *GRPCClient) Delete(ctx context.Context, reportID int64) (int64, error) {
	if !s.LoggedIn() {
		return 0, ErrNotLoggedIn
	}
	resp, err := s.client.DeleteReport(ctx, &api.DeleteReportRequest{ReportID: reportID})
	if err != nil {
		return 0, mapError(err)
	}
	return resp.AccountID, nil
}
