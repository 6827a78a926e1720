package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/denv/cmd/denv/commands"
	"go.trai.ch/denv/internal/app"
	"go.trai.ch/denv/internal/build"
)

type mockApp struct {
	lockFunc    func(ctx context.Context, opts app.LockOptions) error
	bumpFunc    func(ctx context.Context, name, value string, git bool) error
	installFunc func(ctx context.Context, opts app.InstallOptions) error
	runFunc     func(ctx context.Context, args []string) error
	initFunc    func(ctx context.Context, opts app.InitOptions) error
	cleanFunc   func(ctx context.Context) error
}

func (m *mockApp) Lock(ctx context.Context, opts app.LockOptions) error {
	if m.lockFunc != nil {
		return m.lockFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Bump(ctx context.Context, name, value string, git bool) error {
	if m.bumpFunc != nil {
		return m.bumpFunc(ctx, name, value, git)
	}
	return nil
}

func (m *mockApp) Install(ctx context.Context, opts app.InstallOptions) error {
	if m.installFunc != nil {
		return m.installFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Run(ctx context.Context, args []string) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, args)
	}
	return nil
}

func (m *mockApp) Init(ctx context.Context, opts app.InitOptions) error {
	if m.initFunc != nil {
		return m.initFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func (m *mockApp) ShowDeps(_ context.Context) error { return nil }

func (m *mockApp) VenvPath(_ context.Context) (string, error) { return "/tmp/venv", nil }

func (m *mockApp) BinPath(_ context.Context) (string, error) { return "/tmp/venv/bin", nil }

func (m *mockApp) UpgradePip(_ context.Context) error { return nil }

func TestCommands_Lock(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.LockOptions
		called := false

		mock := &mockApp{
			lockFunc: func(_ context.Context, opts app.LockOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"lock", "--python-version", "< '3.8'", "--platform", "win32"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Equal(t, "< '3.8'", captured.PythonVersion)
		assert.Equal(t, "win32", captured.SysPlatform)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			lockFunc: func(_ context.Context, _ app.LockOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"lock"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Bump(t *testing.T) {
	t.Run("passes name, version and git flag", func(t *testing.T) {
		var gotName, gotValue string
		var gotGit bool

		mock := &mockApp{
			bumpFunc: func(_ context.Context, name, value string, git bool) error {
				gotName, gotValue, gotGit = name, value, git
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"bump", "-g", "bar", "v1.2"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "bar", gotName)
		assert.Equal(t, "v1.2", gotValue)
		assert.True(t, gotGit)
	})

	t.Run("requires exactly two arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"bump", "foo"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		assert.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Install(t *testing.T) {
	var captured app.InstallOptions

	mock := &mockApp{
		installFunc: func(_ context.Context, opts app.InstallOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"install", "--develop"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, captured.Develop)
}

func TestCommands_Run(t *testing.T) {
	t.Run("forwards args including flags verbatim", func(t *testing.T) {
		var captured []string

		mock := &mockApp{
			runFunc: func(_ context.Context, args []string) error {
				captured = args
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "pytest", "-x", "--verbose"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"pytest", "-x", "--verbose"}, captured)
	})

	t.Run("shows usage when no command provided", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Init(t *testing.T) {
	var captured app.InitOptions

	mock := &mockApp{
		initFunc: func(_ context.Context, opts app.InitOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"init", "demo", "--version", "1.0.0", "--author", "Jane Doe"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "demo", captured.Name)
	assert.Equal(t, "1.0.0", captured.Version)
	assert.Equal(t, "Jane Doe", captured.Author)
}

func TestCommands_Show(t *testing.T) {
	t.Run("venv-path prints the directory", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"show", "venv-path"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "/tmp/venv")
	})

	t.Run("bin-path prints the binaries directory", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"show", "bin-path"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "/tmp/venv/bin")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
