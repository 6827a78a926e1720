package python_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/denv/internal/adapters/python"
	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/denv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestProbe(t *testing.T) {
	t.Run("reports version and platform", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)

		executor.EXPECT().
			Output(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd ports.Command) (string, error) {
				assert.Equal(t, "/usr/bin/python3", cmd.Name)
				require.Len(t, cmd.Args, 2)
				assert.Equal(t, "-c", cmd.Args[0])
				return "3.11.4\nlinux\n", nil
			})

		got, err := python.NewProbe(executor).Probe(context.Background(), "/usr/bin/python3")
		require.NoError(t, err)
		assert.Equal(t, domain.Interpreter{
			Binary:   "/usr/bin/python3",
			Version:  "3.11.4",
			Platform: "linux",
		}, got)
	})

	t.Run("rejects unexpected info output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)

		executor.EXPECT().Output(gomock.Any(), gomock.Any()).Return("garbage\n", nil)

		_, err := python.NewProbe(executor).Probe(context.Background(), "/usr/bin/python3")
		assert.Error(t, err)
	})

	t.Run("propagates interpreter failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)

		executor.EXPECT().Output(gomock.Any(), gomock.Any()).Return("", domain.ErrCommandFailed)

		_, err := python.NewProbe(executor).Probe(context.Background(), "/usr/bin/python3")
		assert.ErrorIs(t, err, domain.ErrCommandFailed)
	})
}
