package main

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/wuxing-api/internal/config"
	"github.com/KirkDiggler/wuxing-api/internal/handlers/wuxing/v1alpha1"
)

// panicking fails every call; only GetState is exercised
type panicking struct {
	v1alpha1.GameServiceServer
}

func (panicking) GetState(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	panic("boom")
}

func TestServerRecoversFromPanics(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lis := bufconn.Listen(1 << 20)
	srv := newGRPCServer(logger)
	v1alpha1.RegisterGameServiceServer(srv, panicking{})
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	_, err = v1alpha1.NewGameServiceClient(conn).Call(context.Background(), v1alpha1.MethodGetState, nil)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Contains(t, logs.String(), "Recovered from panic")
}

func TestApplyFlagsOverridesEnv(t *testing.T) {
	cfg := &config.Config{
		GRPCPort:   50051,
		Store:      config.StoreRedis,
		RedisAddrs: []string{"localhost:6379"},
		SQLitePath: "wuxing.db",
		LogLevel:   "info",
		LogFormat:  "text",
	}

	require.NoError(t, serverCmd.Flags().Set("port", "7000"))
	require.NoError(t, serverCmd.Flags().Set("store", "sqlite"))
	require.NoError(t, serverCmd.Flags().Set("seed", "99"))

	require.NoError(t, applyFlags(serverCmd, cfg))
	assert.Equal(t, 7000, cfg.GRPCPort)
	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, uint64(99), cfg.RandomSeed)
	assert.Equal(t, "wuxing.db", cfg.SQLitePath)
}

func TestNewRandomSource(t *testing.T) {
	a := newRandomSource(7)
	b := newRandomSource(7)
	for i := 0; i < 20; i++ {
		x, err := a.IntBetween(1, 100)
		require.NoError(t, err)
		y, err := b.IntBetween(1, 100)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}

	n, err := newRandomSource(0).IntBetween(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
