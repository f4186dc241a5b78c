package weekview_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teambeat/teambeat/internal/app/weekview"
	"github.com/teambeat/teambeat/internal/log"
	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/storage/storagemock"
)

func TestService_Run(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// 2026-03-02 is a Monday.
	day := func(d, hour int) time.Time {
		return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
	}

	tasks := []model.Task{
		{ID: "t1", Title: "Migration", Status: model.TaskStatusWorkInProgress, StartDate: day(2, 9), DueDate: day(4, 19)},
	}

	repo := &storagemock.MockRepository{}
	repo.On("ListTasks", mock.Anything).Once().Return(tasks, nil)

	svc, err := weekview.NewService(weekview.ServiceConfig{
		Repository: repo,
		Window:     model.BusinessWindow{StartHour: 9, EndHour: 19},
		Logger:     log.Noop,
	})
	require.NoError(err)

	// Ask with a Thursday, the week should still start on Monday.
	schedule, err := svc.Run(context.Background(), weekview.Request{Date: day(5, 14)})
	require.NoError(err)

	assert.Equal(day(2, 0), schedule.Monday)
	require.Len(schedule.Days, 7)

	// Mon 9:00 to Wed 19:00 against a [9,19) window: three ten hour segments.
	for i, d := range []int{2, 3, 4} {
		daySegments := schedule.Days[i]
		assert.Equal(day(d, 0), daySegments.Date)
		require.Len(daySegments.Segments, 1, "day %d", d)
		assert.Equal(model.Segment{TaskID: "t1", Start: day(d, 9), End: day(d, 19)}, daySegments.Segments[0])
		assert.Equal(600, daySegments.Segments[0].Minutes())
	}

	// Thursday through Sunday stay empty.
	for _, daySegments := range schedule.Days[3:] {
		assert.Empty(daySegments.Segments)
	}

	repo.AssertExpectations(t)
}

func TestService_RunRequiresDate(t *testing.T) {
	svc, err := weekview.NewService(weekview.ServiceConfig{
		Repository: &storagemock.MockRepository{},
		Window:     model.BusinessWindow{StartHour: 9, EndHour: 19},
		Logger:     log.Noop,
	})
	require.NoError(t, err)

	_, err = svc.Run(context.Background(), weekview.Request{})

	assert.ErrorIs(t, err, model.ErrNotValid)
}

func TestNewServiceValidatesWindow(t *testing.T) {
	_, err := weekview.NewService(weekview.ServiceConfig{
		Repository: &storagemock.MockRepository{},
		Window:     model.BusinessWindow{StartHour: 9, EndHour: 9},
		Logger:     log.Noop,
	})

	assert.Error(t, err)
}
