package dayview_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teambeat/teambeat/internal/app/dayview"
	"github.com/teambeat/teambeat/internal/log"
	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/storage/storagemock"
)

func TestNewService(t *testing.T) {
	window := model.BusinessWindow{StartHour: 9, EndHour: 19}

	tests := map[string]struct {
		config dayview.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: dayview.ServiceConfig{
				Repository: &storagemock.MockRepository{},
				Config:     model.BoardConfig{Window: window},
				Logger:     log.Noop,
			},
			expErr: false,
		},
		"missing repository should fail": {
			config: dayview.ServiceConfig{
				Config: model.BoardConfig{Window: window},
				Logger: log.Noop,
			},
			expErr: true,
		},
		"invalid business window should fail": {
			config: dayview.ServiceConfig{
				Repository: &storagemock.MockRepository{},
				Config:     model.BoardConfig{Window: model.BusinessWindow{StartHour: 19, EndHour: 9}},
				Logger:     log.Noop,
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			svc, err := dayview.NewService(test.config)

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
	assert := assert.New(t)
	require := require.New(t)

	// Tuesday is the displayed day of a Mon 09:00 to Wed 19:00 task plus a
	// short Tuesday-only task overlapping it.
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, 3, 4, 19, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{ID: "t1", Title: "Migration", Status: model.TaskStatusWorkInProgress, StartDate: monday, DueDate: wednesday},
		{ID: "t2", Title: "Standup notes", Status: model.TaskStatusToDo, StartDate: tuesday.Add(10*time.Hour + 15*time.Minute), DueDate: tuesday.Add(10*time.Hour + 45*time.Minute)},
	}

	repo := &storagemock.MockRepository{}
	repo.On("ListTasks", mock.Anything).Once().Return(tasks, nil)

	svc, err := dayview.NewService(dayview.ServiceConfig{
		Repository: repo,
		Config: model.BoardConfig{
			Window: model.BusinessWindow{StartHour: 9, EndHour: 19},
			Layout: model.LayoutOptions{IndentPx: 6, MaxIndentPx: 24},
		},
		Logger: log.Noop,
	})
	require.NoError(err)

	schedule, err := svc.Run(context.Background(), dayview.Request{Date: tuesday})
	require.NoError(err)

	assert.Equal(tuesday, schedule.Date)
	assert.Equal(model.BusinessWindow{StartHour: 9, EndHour: 19}, schedule.Window)
	require.Len(schedule.Rows, 10)

	// 09:00 row holds t1's full-window Tuesday segment.
	row9 := schedule.Rows[0]
	assert.Equal(9, row9.Hour)
	require.Len(row9.Blocks, 1)
	assert.Equal("t1", row9.Blocks[0].Segment.TaskID)
	assert.Equal(0.0, row9.Blocks[0].TopPercent)
	assert.Equal(1000.0, row9.Blocks[0].HeightPercent) // 10 hours over a 60 minute row.
	assert.Equal(1.0, row9.Blocks[0].WidthFraction)

	// 10:00 row holds t2, nested inside nothing in its own slot.
	row10 := schedule.Rows[1]
	assert.Equal(10, row10.Hour)
	require.Len(row10.Blocks, 1)
	assert.Equal("t2", row10.Blocks[0].Segment.TaskID)
	assert.Equal(25.0, row10.Blocks[0].TopPercent)
	assert.Equal(50.0, row10.Blocks[0].HeightPercent)
	assert.Equal(0, row10.Blocks[0].NestingLevel)

	// Remaining rows are empty.
	for _, row := range schedule.Rows[2:] {
		assert.Empty(row.Blocks)
	}

	repo.AssertExpectations(t)
}

func TestService_RunRequiresDate(t *testing.T) {
	repo := &storagemock.MockRepository{}

	svc, err := dayview.NewService(dayview.ServiceConfig{
		Repository: repo,
		Config:     model.BoardConfig{Window: model.BusinessWindow{StartHour: 9, EndHour: 19}},
		Logger:     log.Noop,
	})
	require.NoError(t, err)

	_, err = svc.Run(context.Background(), dayview.Request{})

	assert.ErrorIs(t, err, model.ErrNotValid)
}

func TestService_RunMalformedTaskDoesNotBreakTheDay(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		// Inverted interval, contributes nothing.
		{ID: "bad", Status: model.TaskStatusToDo, StartDate: tuesday.Add(12 * time.Hour), DueDate: tuesday.Add(10 * time.Hour)},
		{ID: "good", Status: model.TaskStatusToDo, StartDate: tuesday.Add(11 * time.Hour), DueDate: tuesday.Add(12 * time.Hour)},
	}

	repo := &storagemock.MockRepository{}
	repo.On("ListTasks", mock.Anything).Once().Return(tasks, nil)

	svc, err := dayview.NewService(dayview.ServiceConfig{
		Repository: repo,
		Config:     model.BoardConfig{Window: model.BusinessWindow{StartHour: 9, EndHour: 19}},
		Logger:     log.Noop,
	})
	require.NoError(err)

	schedule, err := svc.Run(context.Background(), dayview.Request{Date: tuesday})
	require.NoError(err)

	var blockIDs []string
	for _, row := range schedule.Rows {
		for _, b := range row.Blocks {
			blockIDs = append(blockIDs, b.Segment.TaskID)
		}
	}
	assert.Equal([]string{"good"}, blockIDs)
}
