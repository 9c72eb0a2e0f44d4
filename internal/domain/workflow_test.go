package domain

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/rooze/internal/controller"
	m "gooze.dev/pkg/rooze/internal/model"
)

type discovererMock struct {
	mock.Mock
}

func (d *discovererMock) WalkTree(ctx context.Context, root m.Path, options Options) (*m.Discovered, error) {
	args := d.Called(ctx, root, options)

	discovered, _ := args.Get(0).(*m.Discovered)

	return discovered, args.Error(1)
}

type uiMock struct {
	mock.Mock
}

func (u *uiMock) DisplayMutants(ctx context.Context, mutants []*m.Mutant, options controller.ListOptions) error {
	return u.Called(ctx, mutants, options).Error(0)
}

func (u *uiMock) DisplayFiles(ctx context.Context, discovered *m.Discovered, format controller.Format) error {
	return u.Called(ctx, discovered, format).Error(0)
}

func TestWorkflow_List(t *testing.T) {
	ctx := context.Background()
	discovered := &m.Discovered{Files: []*m.SourceFile{m.NewSourceFile("src/lib.rs", "", nil)}}
	options := Options{ExcludeGlobs: []string{"tests"}}

	t.Run("mutants", func(t *testing.T) {
		d := &discovererMock{}
		ui := &uiMock{}

		d.On("WalkTree", ctx, m.Path("crate"), options).Return(discovered, nil)
		ui.On("DisplayMutants", ctx, discovered.Mutants, controller.ListOptions{
			Format: controller.FormatJSON, Diff: true, Parallel: 4,
		}).Return(nil)

		err := NewWorkflow(d, ui).List(ctx, ListArgs{
			Root: "crate", Options: options, Diff: true, Format: controller.FormatJSON, Parallel: 4,
		})

		require.NoError(t, err)
		d.AssertExpectations(t)
		ui.AssertExpectations(t)
	})

	t.Run("files", func(t *testing.T) {
		d := &discovererMock{}
		ui := &uiMock{}

		d.On("WalkTree", ctx, m.Path("crate"), options).Return(discovered, nil)
		ui.On("DisplayFiles", ctx, discovered, controller.FormatText).Return(nil)

		err := NewWorkflow(d, ui).List(ctx, ListArgs{Root: "crate", Options: options, Files: true, Format: controller.FormatText})

		require.NoError(t, err)
		ui.AssertExpectations(t)
		ui.AssertNotCalled(t, "DisplayMutants", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("discovery error", func(t *testing.T) {
		d := &discovererMock{}
		ui := &uiMock{}

		d.On("WalkTree", ctx, m.Path("crate"), options).Return(nil, ErrCancelled)

		err := NewWorkflow(d, ui).List(ctx, ListArgs{Root: "crate", Options: options})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCancelled)
		ui.AssertNotCalled(t, "DisplayMutants", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("display error", func(t *testing.T) {
		d := &discovererMock{}
		ui := &uiMock{}

		d.On("WalkTree", ctx, m.Path("crate"), options).Return(discovered, nil)
		ui.On("DisplayMutants", ctx, discovered.Mutants, controller.ListOptions{}).Return(errors.New("closed pipe"))

		err := NewWorkflow(d, ui).List(ctx, ListArgs{Root: "crate", Options: options})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "display: closed pipe")
	})
}

func TestWorkflow_ListLogsThroughOptionsLogger(t *testing.T) {
	ctx := context.Background()

	var logs bytes.Buffer

	options := Options{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	discovered := &m.Discovered{Files: []*m.SourceFile{m.NewSourceFile("src/lib.rs", "", nil)}}

	t.Run("success", func(t *testing.T) {
		logs.Reset()

		d := &discovererMock{}
		ui := &uiMock{}

		d.On("WalkTree", ctx, m.Path("crate"), options).Return(discovered, nil)
		ui.On("DisplayMutants", ctx, discovered.Mutants, controller.ListOptions{}).Return(nil)

		require.NoError(t, NewWorkflow(d, ui).List(ctx, ListArgs{Root: "crate", Options: options}))
		assert.Contains(t, logs.String(), "Discovered mutants")
		assert.Contains(t, logs.String(), "files=1")
	})

	t.Run("failure", func(t *testing.T) {
		logs.Reset()

		d := &discovererMock{}
		ui := &uiMock{}

		d.On("WalkTree", ctx, m.Path("crate"), options).Return(nil, ErrCancelled)

		require.Error(t, NewWorkflow(d, ui).List(ctx, ListArgs{Root: "crate", Options: options}))
		assert.Contains(t, logs.String(), "Failed to discover mutants")
	})
}
