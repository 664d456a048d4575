package api

type PingRequest struct{}

type PingResponse struct {
	Status string
}

type RegisterRequest struct {
	Phone    string
	Password string
}

// RegisterResponse hands out the recovery id exactly once, together with a
// token so the new primary is logged in straight away.
type RegisterResponse struct {
	AccountID   int64
	RecoveryID  string
	AccessToken string
}

type LoginRequest struct {
	Phone    string
	Password string
}

type LoginResponse struct {
	AccountID   int64
	AccessToken string
}

type RecoverRequest struct {
	RecoveryID string
}

type RecoverResponse struct {
	Phone    string
	Password string
}

// Account is the wire view of an account. Passwords never leave the server
// except through Recover.
type Account struct {
	ID       int64
	Username string
	Phone    string
	Primary  bool
}

type ListGroupRequest struct{}

type ListGroupResponse struct {
	LinkedPhone string
	RecoveryID  string
	Members     []*Account
}

type AddMemberRequest struct {
	Username string
}

type AddMemberResponse struct {
	Member *Account
}

type RemoveMemberRequest struct {
	MemberID int64
}

type RemoveMemberResponse struct{}

type Report struct {
	ID          int64
	AccountID   int64
	FileName    string
	Description string
}

// UploadReportRequest attaches Content to AccountID, or to the caller when
// AccountID is zero.
type UploadReportRequest struct {
	AccountID   int64
	FileName    string
	Description string
	Content     []byte
}

type UploadReportResponse struct {
	Report *Report
}

type ListReportsRequest struct {
	AccountID int64
}

type ListReportsResponse struct {
	Reports []*Report
}

// DownloadReportRequest asks for the artifact bytes, or for a presigned URL
// when PresignedURL is set and the server stores artifacts in a bucket.
type DownloadReportRequest struct {
	ReportID     int64
	PresignedURL bool
}

type DownloadReportResponse struct {
	Report  *Report
	Content []byte
	URL     string
}

type DeleteReportRequest struct {
	ReportID int64
}

type DeleteReportResponse struct {
	AccountID int64
}
