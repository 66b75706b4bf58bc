package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/subenv/internal/adapters/bwrap"
	"go.trai.ch/subenv/internal/adapters/logger"
	"go.trai.ch/subenv/internal/app"
	"go.trai.ch/subenv/internal/core/domain"
	"go.trai.ch/subenv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (func(context.Context) (*app.Components, func(), error), *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetOutput(gomock.Any()).AnyTimes()
	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockPackageResolver(ctrl),
		bwrap.NewLauncher(bwrap.WithExecFunc(func(string, []string, []string) error {
			t.Fatal("exec must not be reached")
			return nil
		})),
		mocks.NewMockFileSystem(ctrl),
		mockLogger,
	)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}, mockLogger
}

// TestRun_Help verifies that run returns 0 and launches nothing for --help.
func TestRun_Help(t *testing.T) {
	provider, _ := newProvider(t)

	exitCode := run(context.Background(), []string{"--help"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"true"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that errors are logged once and map to exit code 1.
func TestRun_ExecutionError(t *testing.T) {
	provider, mockLogger := newProvider(t)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrNoCommand.Error())
	}).Times(1)

	exitCode := run(context.Background(), []string{"-p", "hello"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_InvalidPair verifies that a missing pair value fails before the app runs.
func TestRun_InvalidPair(t *testing.T) {
	provider, mockLogger := newProvider(t)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"--bind", "/only-src"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_VerboseShorthand verifies that the real command tree accepts -v.
func TestRun_VerboseShorthand(t *testing.T) {
	provider, mockLogger := newProvider(t)
	mockLogger.EXPECT().SetVerbose(true)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"-v", "-n"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ErrorsGoToStderr verifies that the logger is pointed at the given stderr.
func TestRun_ErrorsGoToStderr(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	log := logger.New()
	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockPackageResolver(ctrl),
		bwrap.NewLauncher(),
		mocks.NewMockFileSystem(ctrl),
		log,
	)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--log-json", "-p", "hello"}, stderr, provider)
	require.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), `"msg":"operation failed"`)
	assert.Contains(t, stderr.String(), domain.ErrNoCommand.Error())
}
