package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "reportkeeper.ReportKeeper"

const (
	MethodPing           = "Ping"
	MethodRegister       = "Register"
	MethodLogin          = "Login"
	MethodRecover        = "Recover"
	MethodListGroup      = "ListGroup"
	MethodAddMember      = "AddMember"
	MethodRemoveMember   = "RemoveMember"
	MethodUploadReport   = "UploadReport"
	MethodListReports    = "ListReports"
	MethodDownloadReport = "DownloadReport"
	MethodDeleteReport   = "DeleteReport"
)

// FullMethod returns the /service/method path gRPC uses for method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ReportKeeperServer is implemented by the server transport.
type ReportKeeperServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Recover(context.Context, *RecoverRequest) (*RecoverResponse, error)
	ListGroup(context.Context, *ListGroupRequest) (*ListGroupResponse, error)
	AddMember(context.Context, *AddMemberRequest) (*AddMemberResponse, error)
	RemoveMember(context.Context, *RemoveMemberRequest) (*RemoveMemberResponse, error)
	UploadReport(context.Context, *UploadReportRequest) (*UploadReportResponse, error)
	ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error)
	DownloadReport(context.Context, *DownloadReportRequest) (*DownloadReportResponse, error)
	DeleteReport(context.Context, *DeleteReportRequest) (*DeleteReportResponse, error)
}

func unary[Req, Resp any](method string, call func(ReportKeeperServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(ReportKeeperServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes ReportKeeper for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReportKeeperServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodPing, ReportKeeperServer.Ping),
		unary(MethodRegister, ReportKeeperServer.Register),
		unary(MethodLogin, ReportKeeperServer.Login),
		unary(MethodRecover, ReportKeeperServer.Recover),
		unary(MethodListGroup, ReportKeeperServer.ListGroup),
		unary(MethodAddMember, ReportKeeperServer.AddMember),
		unary(MethodRemoveMember, ReportKeeperServer.RemoveMember),
		unary(MethodUploadReport, ReportKeeperServer.UploadReport),
		unary(MethodListReports, ReportKeeperServer.ListReports),
		unary(MethodDownloadReport, ReportKeeperServer.DownloadReport),
		unary(MethodDeleteReport, ReportKeeperServer.DeleteReport),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reportkeeper.proto",
}

func RegisterReportKeeperServer(s grpc.ServiceRegistrar, srv ReportKeeperServer) {
	s.RegisterService(&ServiceDesc, srv)
}
