package grpc

import (
	"bytes"
	"context"
	"io"

	"github.com/dmitrijs2005/reportkeeper/internal/api"
	"github.com/dmitrijs2005/reportkeeper/internal/server/auth"
	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {

	return &api.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {

	account, err := s.accounts.RegisterPrimary(ctx, req.Phone, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "account_id", account.ID)
	return &api.RegisterResponse{AccountID: account.ID, RecoveryID: account.RecoveryID, AccessToken: token}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {

	accountID, err := s.accounts.Authenticate(ctx, req.Phone, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	token, err := auth.GenerateToken(accountID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.LoginResponse{AccountID: accountID, AccessToken: token}, nil

}

func (s *GRPCServer) Recover(ctx context.Context, req *api.RecoverRequest) (*api.RecoverResponse, error) {

	creds, err := s.accounts.RecoverCredentials(ctx, req.RecoveryID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.RecoverResponse{Phone: creds.Phone, Password: creds.Password}, nil

}

func (s *GRPCServer) ListGroup(ctx context.Context, req *api.ListGroupRequest) (*api.ListGroupResponse, error) {
	caller, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	group, err := s.accounts.ListGroup(ctx, caller)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &api.ListGroupResponse{LinkedPhone: group.LinkedPhone, RecoveryID: group.RecoveryID}
	for _, m := range group.Members {
		resp.Members = append(resp.Members, toAPIAccount(m))
	}
	return resp, nil
}

func (s *GRPCServer) AddMember(ctx context.Context, req *api.AddMemberRequest) (*api.AddMemberResponse, error) {
	caller, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	member, err := s.accounts.AddMember(ctx, caller, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.AddMemberResponse{Member: toAPIAccount(member)}, nil
}

func (s *GRPCServer) RemoveMember(ctx context.Context, req *api.RemoveMemberRequest) (*api.RemoveMemberResponse, error) {
	caller, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.RemoveMember(ctx, caller, req.MemberID); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.RemoveMemberResponse{}, nil
}

func (s *GRPCServer) UploadReport(ctx context.Context, req *api.UploadReportRequest) (*api.UploadReportResponse, error) {
	target, err := s.targetAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	var content io.Reader
	if req.Content != nil {
		content = bytes.NewReader(req.Content)
	}

	report, err := s.reports.Attach(ctx, target, req.FileName, content, int64(len(req.Content)), req.Description)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.UploadReportResponse{Report: toAPIReport(report)}, nil
}

func (s *GRPCServer) ListReports(ctx context.Context, req *api.ListReportsRequest) (*api.ListReportsResponse, error) {
	target, err := s.targetAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.ListForAccount(ctx, target)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &api.ListReportsResponse{Reports: make([]*api.Report, 0, len(reports))}
	for _, r := range reports {
		resp.Reports = append(resp.Reports, toAPIReport(r))
	}
	return resp, nil
}

func (s *GRPCServer) DownloadReport(ctx context.Context, req *api.DownloadReportRequest) (*api.DownloadReportResponse, error) {
	report, err := s.ownedReport(ctx, req.ReportID)
	if err != nil {
		return nil, err
	}

	if req.PresignedURL {
		url, err := s.reports.DownloadURL(ctx, report.ID)
		if err != nil {
			return nil, s.toStatus(ctx, err)
		}
		return &api.DownloadReportResponse{Report: toAPIReport(report), URL: url}, nil
	}

	_, rc, err := s.reports.Download(ctx, report.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.DownloadReportResponse{Report: toAPIReport(report), Content: content}, nil
}

func (s *GRPCServer) DeleteReport(ctx context.Context, req *api.DeleteReportRequest) (*api.DeleteReportResponse, error) {
	report, err := s.ownedReport(ctx, req.ReportID)
	if err != nil {
		return nil, err
	}

	owner, err := s.reports.Remove(ctx, report.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.DeleteReportResponse{AccountID: owner}, nil
}

// targetAccount resolves the account a report call acts on: the caller when
// requested is zero, otherwise a member of the caller's group.
func (s *GRPCServer) targetAccount(ctx context.Context, requested int64) (int64, error) {
	caller, err := accountIDFromContext(ctx)
	if err != nil {
		return 0, err
	}
	if requested == 0 {
		return caller, nil
	}
	if err := s.accounts.InGroup(ctx, caller, requested); err != nil {
		return 0, s.toStatus(ctx, err)
	}
	return requested, nil
}

// ownedReport fetches a report and checks that its owner is in the caller's
// group. Reports of other groups look like missing ones.
func (s *GRPCServer) ownedReport(ctx context.Context, reportID int64) (*models.Report, error) {
	caller, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.reports.Fetch(ctx, reportID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if report.AccountID != caller {
		if err := s.accounts.InGroup(ctx, caller, report.AccountID); err != nil {
			return nil, s.toStatus(ctx, err)
		}
	}
	return report, nil
}

func toAPIAccount(a *models.Account) *api.Account {
	out := &api.Account{ID: a.ID, Username: a.Username, Primary: a.IsPrimary()}
	if a.Credentials != nil {
		out.Phone = a.Credentials.Phone
	}
	return out
}

func toAPIReport(r *models.Report) *api.Report {
	return &api.Report{ID: r.ID, AccountID: r.AccountID, FileName: r.FileName, Description: r.Description}
}
