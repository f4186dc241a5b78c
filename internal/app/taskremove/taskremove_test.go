package taskremove_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teambeat/teambeat/internal/app/taskremove"
	"github.com/teambeat/teambeat/internal/log"
	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/storage/storagemock"
)

func TestService_Run(t *testing.T) {
	tests := map[string]struct {
		mock   func(m *storagemock.MockRepository)
		req    taskremove.Request
		expErr error
	}{
		"removing an existing task should work": {
			mock: func(m *storagemock.MockRepository) {
				m.On("DeleteTask", mock.Anything, "task1").Once().Return(nil)
			},
			req: taskremove.Request{TaskID: "task1"},
		},

		"a missing task id should be rejected": {
			mock:   func(m *storagemock.MockRepository) {},
			req:    taskremove.Request{},
			expErr: model.ErrNotValid,
		},

		"removing an unknown task should surface not found": {
			mock: func(m *storagemock.MockRepository) {
				m.On("DeleteTask", mock.Anything, "ghost").Once().Return(fmt.Errorf("task ghost: %w", model.ErrNotFound))
			},
			req:    taskremove.Request{TaskID: "ghost"},
			expErr: model.ErrNotFound,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			repo := &storagemock.MockRepository{}
			test.mock(repo)

			svc, err := taskremove.NewService(taskremove.ServiceConfig{Repository: repo, Logger: log.Noop})
			require.NoError(err)

			err = svc.Run(context.Background(), test.req)

			if test.expErr != nil {
				require.Error(err)
				assert.ErrorIs(err, test.expErr)
			} else {
				require.NoError(err)
			}

			repo.AssertExpectations(t)
		})
	}
}
