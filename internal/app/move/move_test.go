package move_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teambeat/teambeat/internal/app/move"
	"github.com/teambeat/teambeat/internal/log"
	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/storage/storagemock"
)

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config move.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: move.ServiceConfig{
				Repository: &storagemock.MockRepository{},
				Logger:     log.Noop,
			},
			expErr: false,
		},
		"missing repository should fail": {
			config: move.ServiceConfig{
				Logger: log.Noop,
			},
			expErr: true,
		},
		"nil logger should default to noop": {
			config: move.ServiceConfig{
				Repository: &storagemock.MockRepository{},
			},
			expErr: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			svc, err := move.NewService(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(svc)
			} else {
				require.NoError(err)
				require.NotNil(svc)
			}
		})
	}
}

func TestService_Run(t *testing.T) {
	tests := map[string]struct {
		mock      func(m *storagemock.MockRepository)
		req       move.Request
		expResult *move.Result
		expErr    error
	}{
		"a move to any column should update and report the new placement": {
			mock: func(m *storagemock.MockRepository) {
				m.On("UpdateTaskStatus", mock.Anything, "task1", model.TaskStatusUnderReview, "user1").Once().Return(nil)
			},
			req: move.Request{
				TaskID:       "task1",
				Target:       model.TaskStatusUnderReview,
				ActingUserID: "user1",
			},
			expResult: &move.Result{TaskID: "task1", Status: model.TaskStatusUnderReview},
		},

		"a completed task can be dragged back to to-do": {
			mock: func(m *storagemock.MockRepository) {
				m.On("UpdateTaskStatus", mock.Anything, "task1", model.TaskStatusToDo, "user1").Once().Return(nil)
			},
			req: move.Request{
				TaskID:       "task1",
				Target:       model.TaskStatusToDo,
				ActingUserID: "user1",
			},
			expResult: &move.Result{TaskID: "task1", Status: model.TaskStatusToDo},
		},

		"a move without an acting user should fail fast without calling the repository": {
			mock: func(m *storagemock.MockRepository) {},
			req: move.Request{
				TaskID: "task1",
				Target: model.TaskStatusCompleted,
			},
			expErr: model.ErrNotAuthenticated,
		},

		"a move without a task id should fail": {
			mock: func(m *storagemock.MockRepository) {},
			req: move.Request{
				Target:       model.TaskStatusCompleted,
				ActingUserID: "user1",
			},
			expErr: model.ErrNotValid,
		},

		"a move to an unknown column should fail without calling the repository": {
			mock: func(m *storagemock.MockRepository) {},
			req: move.Request{
				TaskID:       "task1",
				Target:       model.TaskStatus("archived"),
				ActingUserID: "user1",
			},
			expErr: model.ErrNotValid,
		},

		"a rejected update should surface the failure explicitly": {
			mock: func(m *storagemock.MockRepository) {
				m.On("UpdateTaskStatus", mock.Anything, "task1", model.TaskStatusCompleted, "user1").Once().Return(fmt.Errorf("task task1: %w", model.ErrNotFound))
			},
			req: move.Request{
				TaskID:       "task1",
				Target:       model.TaskStatusCompleted,
				ActingUserID: "user1",
			},
			expErr: model.ErrNotFound,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			repo := &storagemock.MockRepository{}
			test.mock(repo)

			svc, err := move.NewService(move.ServiceConfig{Repository: repo, Logger: log.Noop})
			require.NoError(err)

			result, err := svc.Run(context.Background(), test.req)

			if test.expErr != nil {
				require.Error(err)
				assert.ErrorIs(err, test.expErr)
				assert.Nil(result)
			} else {
				require.NoError(err)
				assert.Equal(test.expResult, result)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestService_RunNotAuthenticatedDoesNotTouchRepository(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	repo := &storagemock.MockRepository{}

	svc, err := move.NewService(move.ServiceConfig{Repository: repo, Logger: log.Noop})
	require.NoError(err)

	_, err = svc.Run(context.Background(), move.Request{
		TaskID: "task1",
		Target: model.TaskStatusCompleted,
	})

	assert.ErrorIs(err, model.ErrNotAuthenticated)
	repo.AssertNotCalled(t, "UpdateTaskStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
