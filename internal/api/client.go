package api

import (
	"context"

	"google.golang.org/grpc"
)

// ReportKeeperClient is a typed stub over a client connection. Every call
// is sent with the JSON content subtype.
type ReportKeeperClient struct {
	cc grpc.ClientConnInterface
}

func NewReportKeeperClient(cc grpc.ClientConnInterface) *ReportKeeperClient {
	return &ReportKeeperClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReportKeeperClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *ReportKeeperClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *ReportKeeperClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *ReportKeeperClient) Recover(ctx context.Context, in *RecoverRequest, opts ...grpc.CallOption) (*RecoverResponse, error) {
	return invoke[RecoverResponse](ctx, c.cc, MethodRecover, in, opts)
}

func (c *ReportKeeperClient) ListGroup(ctx context.Context, in *ListGroupRequest, opts ...grpc.CallOption) (*ListGroupResponse, error) {
	return invoke[ListGroupResponse](ctx, c.cc, MethodListGroup, in, opts)
}

func (c *ReportKeeperClient) AddMember(ctx context.Context, in *AddMemberRequest, opts ...grpc.CallOption) (*AddMemberResponse, error) {
	return invoke[AddMemberResponse](ctx, c.cc, MethodAddMember, in, opts)
}

func (c *ReportKeeperClient) RemoveMember(ctx context.Context, in *RemoveMemberRequest, opts ...grpc.CallOption) (*RemoveMemberResponse, error) {
	return invoke[RemoveMemberResponse](ctx, c.cc, MethodRemoveMember, in, opts)
}

func (c *ReportKeeperClient) UploadReport(ctx context.Context, in *UploadReportRequest, opts ...grpc.CallOption) (*UploadReportResponse, error) {
	return invoke[UploadReportResponse](ctx, c.cc, MethodUploadReport, in, opts)
}

func (c *ReportKeeperClient) ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error) {
	return invoke[ListReportsResponse](ctx, c.cc, MethodListReports, in, opts)
}

func (c *ReportKeeperClient) DownloadReport(ctx context.Context, in *DownloadReportRequest, opts ...grpc.CallOption) (*DownloadReportResponse, error) {
	return invoke[DownloadReportResponse](ctx, c.cc, MethodDownloadReport, in, opts)
}

func (c *ReportKeeperClient) DeleteReport(ctx context.Context, in *DeleteReportRequest, opts ...grpc.CallOption) (*DeleteReportResponse, error) {
	return invoke[DeleteReportResponse](ctx, c.cc, MethodDeleteReport, in, opts)
}
