package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/files"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/host"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/monitoring"
)

type fixture struct {
	registry *Registry
	metrics  *monitoring.Metrics
	exitCode *int
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	code := -1
	ctrl := host.New(nil, host.WithExitFunc(func(c int) { code = c }))
	metrics := monitoring.NewMetrics()
	reg := NewRegistry(nil).WithMetrics(metrics)
	require.NoError(t, RegisterBuiltins(reg, files.NewService(files.OSFS{}, nil), ctrl))

	return fixture{registry: reg, metrics: metrics, exitCode: &code}
}

func TestNames(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []string{ExitApp, OpenFile, Ping, SaveFile, SaveFileAs}, f.registry.Names())
}

func TestRegisterRejects(t *testing.T) {
	reg := NewRegistry(nil)

	assert.Error(t, reg.Register("", ping))
	assert.Error(t, reg.Register("nil", nil))
	require.NoError(t, reg.Register(Ping, ping))
	assert.Error(t, reg.Register(Ping, ping))
}

func TestPing(t *testing.T) {
	f := newFixture(t)

	result, err := f.registry.Invoke(context.Background(), Ping, nil)
	require.NoError(t, err)
	assert.Equal(t, PongResult, result)
}

func TestSaveThenOpen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "x.md")

	result, err := f.registry.Invoke(ctx, SaveFile, []byte(`{"path":"`+path+`","content":"# Hello"}`))
	require.NoError(t, err)
	assert.Equal(t, path, result)

	result, err = f.registry.Invoke(ctx, OpenFile, []byte(`{"path":"`+path+`"}`))
	require.NoError(t, err)
	assert.Equal(t, &files.FilePayload{Path: path, Content: "# Hello"}, result)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CommandCalls.WithLabelValues(SaveFile, monitoring.StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CommandCalls.WithLabelValues(OpenFile, monitoring.StatusOK)))
}

func TestSaveAsMatchesSave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "same.md")
	args := []byte(`{"path":"` + path + `","content":"same"}`)

	a, errA := f.registry.Invoke(ctx, SaveFile, args)
	b, errB := f.registry.Invoke(ctx, SaveFileAs, args)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestOpenEmptyPath(t *testing.T) {
	f := newFixture(t)

	result, err := f.registry.Invoke(context.Background(), OpenFile, []byte(`{"path":""}`))
	assert.Nil(t, result)

	cmdErr, ok := files.AsCommandError(err)
	require.True(t, ok)
	assert.Equal(t, files.CodeInvalidPath, cmdErr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CommandCalls.WithLabelValues(OpenFile, "INVALID_PATH")))
}

func TestOpenMissingFile(t *testing.T) {
	f := newFixture(t)

	_, err := f.registry.Invoke(context.Background(), OpenFile, []byte(`{"path":"/nonexistent/path.md"}`))
	cmdErr, ok := files.AsCommandError(err)
	require.True(t, ok)
	assert.Equal(t, files.CodeFileNotFound, cmdErr.Code)
}

func TestInvalidArguments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		command string
		args    string
	}{
		{name: "malformed json", command: OpenFile, args: `{"path":`},
		{name: "wrong type", command: OpenFile, args: `{"path":42}`},
		{name: "missing path", command: OpenFile, args: `{}`},
		{name: "null args", command: SaveFile, args: `null`},
		{name: "missing content", command: SaveFileAs, args: `{"path":"/tmp/a.md"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.registry.Invoke(ctx, tt.command, []byte(tt.args))
			assert.ErrorIs(t, err, ErrInvalidArguments)
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t)

	_, err := f.registry.Invoke(context.Background(), "format_disk", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestUnknownCommandsShareOneSeries(t *testing.T) {
	f := newFixture(t)

	for _, name := range []string{"format_disk", "rm_rf", "x-1", "x-2", "x-3"} {
		_, err := f.registry.Invoke(context.Background(), name, nil)
		require.ErrorIs(t, err, ErrUnknownCommand)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(f.metrics.CommandCalls))
	assert.Equal(t, 5.0, testutil.ToFloat64(f.metrics.CommandCalls.WithLabelValues("unknown", "unknown")))
}

func TestExitApp(t *testing.T) {
	f := newFixture(t)

	result, err := f.registry.Invoke(context.Background(), ExitApp, nil)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 0, *f.exitCode)
}

func TestDecodeArgs(t *testing.T) {
	var args WriteArgs
	require.NoError(t, DecodeArgs([]byte(`  {"path":" a.md ","content":"多字节"} `), &args))
	require.NotNil(t, args.Path)
	assert.Equal(t, " a.md ", *args.Path)
	assert.Equal(t, "多字节", *args.Content)

	var empty OpenArgs
	require.NoError(t, DecodeArgs(nil, &empty))
	assert.Nil(t, empty.Path)
}
