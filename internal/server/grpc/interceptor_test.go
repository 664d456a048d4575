package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/reportkeeper/internal/api"
	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"github.com/dmitrijs2005/reportkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// helper to build server
func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:        nopLogger{},
		jwtSecret:     []byte(secret),
		tokenValidity: time.Hour,
		accounts:      &fakeAccounts{},
		reports:       &fakeReports{},
	}
}

var protectedInfo = &grpc.UnaryServerInfo{FullMethod: api.FullMethod(api.MethodListReports)}

func TestInterceptor_PublicMethods_AllowWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	for _, m := range []string{api.MethodPing, api.MethodRegister, api.MethodLogin, api.MethodRecover} {
		info := &grpc.UnaryServerInfo{FullMethod: api.FullMethod(m)}
		handlerCalled := false

		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			handlerCalled = true
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", m, err)
		}
		if !handlerCalled || resp != "ok" {
			t.Fatalf("%s: handler not called", m)
		}
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, protectedInfo, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: "not-a-valid-jwt",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, protectedInfo, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_ValidToken_SetsAccountID(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	token, err := auth.GenerateToken(7, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var gotFromCtx any
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotFromCtx = ctx.Value(AccountIDKey)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, protectedInfo, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotFromCtx != int64(7) {
		t.Fatalf("account id not propagated in context: got %v want 7", gotFromCtx)
	}
}

type recordingLogger struct {
	nopLogger
	args []any
}

func (r *recordingLogger) Info(_ context.Context, _ string, args ...any) { r.args = args }

func TestLoggingInterceptor_RecordsCode(t *testing.T) {
	rl := &recordingLogger{}
	s := &GRPCServer{logger: rl}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "nope")
	}

	_, err := s.loggingInterceptor(context.Background(), nil, protectedInfo, h)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("error must pass through, got %v", err)
	}
	if len(rl.args) < 4 || rl.args[1] != protectedInfo.FullMethod || rl.args[3] != "NotFound" {
		t.Fatalf("unexpected log args: %v", rl.args)
	}
}

func TestAccountIDFromContext_Missing(t *testing.T) {
	if _, err := accountIDFromContext(context.Background()); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}
