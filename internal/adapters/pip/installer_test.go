package pip_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/denv/internal/adapters/pip"
	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/denv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestParseFreeze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		out     string
		want    []domain.FrozenDependency
		wantErr bool
	}{
		{
			name: "simple output",
			out:  "foo==1.0\nbar==2.1\n",
			want: []domain.FrozenDependency{
				{Name: "foo", Version: "1.0"},
				{Name: "bar", Version: "2.1"},
			},
		},
		{
			name: "blank lines ignored",
			out:  "\nfoo==1.0\n\n",
			want: []domain.FrozenDependency{{Name: "foo", Version: "1.0"}},
		},
		{
			name: "debian noise filtered",
			out:  "foo==1.0\npkg-resources==0.0.0\n",
			want: []domain.FrozenDependency{{Name: "foo", Version: "1.0"}},
		},
		{
			name:    "broken line",
			out:     "foo=1.0\n",
			wantErr: true,
		},
		{
			name:    "missing version",
			out:     "foo==\n",
			wantErr: true,
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pip.ParseFreeze(tt.out)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrBrokenFreezeLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInstaller(t *testing.T) {
	paths := domain.ProjectPaths("/work/demo").WithVenv("/work/demo/.venv/3.11.4")
	pipBin := filepath.Join(paths.Venv, "bin", "pip")
	pythonBin := filepath.Join(paths.Venv, "bin", "python")

	newInstaller := func(t *testing.T) (*pip.Installer, *mocks.MockExecutor, *mocks.MockVenv) {
		t.Helper()
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		venv := mocks.NewMockVenv(ctrl)
		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Info(gomock.Any()).AnyTimes()
		return pip.NewInstaller(executor, venv, logger), executor, venv
	}

	t.Run("freeze excludes editables and keeps pip pinned", func(t *testing.T) {
		installer, executor, venv := newInstaller(t)

		venv.EXPECT().BinaryPath(paths, "pip").Return(pipBin, nil)
		executor.EXPECT().
			Output(gomock.Any(), ports.Command{
				Name: pipBin,
				Args: []string{"freeze", "--exclude-editable", "--all"},
				Dir:  paths.Project,
			}).
			Return("foo==1.0\n", nil)

		got, err := installer.Freeze(context.Background(), paths)
		require.NoError(t, err)
		assert.Equal(t, []domain.FrozenDependency{{Name: "foo", Version: "1.0"}}, got)
	})

	t.Run("install reads the lock artifact", func(t *testing.T) {
		installer, executor, venv := newInstaller(t)

		venv.EXPECT().BinaryPath(paths, "python").Return(pythonBin, nil)
		executor.EXPECT().
			Run(gomock.Any(), ports.Command{
				Name: pythonBin,
				Args: []string{"-m", "pip", "install", "--requirement", paths.Lock},
				Dir:  paths.Project,
			}).
			Return(nil)

		require.NoError(t, installer.Install(context.Background(), paths))
	})

	t.Run("editable install includes dev extras", func(t *testing.T) {
		installer, executor, venv := newInstaller(t)

		venv.EXPECT().BinaryPath(paths, "python").Return(pythonBin, nil)
		executor.EXPECT().
			Run(gomock.Any(), ports.Command{
				Name: pythonBin,
				Args: []string{"-m", "pip", "install", "--editable", ".[dev]"},
				Dir:  paths.Project,
			}).
			Return(nil)

		require.NoError(t, installer.InstallEditable(context.Background(), paths))
	})

	t.Run("upgrade failure maps to sentinel", func(t *testing.T) {
		installer, executor, venv := newInstaller(t)

		venv.EXPECT().BinaryPath(paths, "python").Return(pythonBin, nil)
		executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ErrCommandFailed)

		err := installer.Upgrade(context.Background(), paths)
		assert.ErrorIs(t, err, domain.ErrPipUpgradeFailed)
		// The executor failure stays in the chain for diagnostics.
		assert.ErrorIs(t, err, domain.ErrCommandFailed)
	})

	t.Run("list runs interactively", func(t *testing.T) {
		installer, executor, venv := newInstaller(t)

		venv.EXPECT().BinaryPath(paths, "pip").Return(pipBin, nil)
		executor.EXPECT().
			Run(gomock.Any(), ports.Command{
				Name:        pipBin,
				Args:        []string{"list"},
				Dir:         paths.Project,
				Interactive: true,
			}).
			Return(nil)

		require.NoError(t, installer.List(context.Background(), paths))
	})
}
