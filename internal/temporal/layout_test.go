package temporal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/temporal"
)

func TestLayoutSlot(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
	}
	seg := func(id string, startH, startM, endH, endM int) model.Segment {
		return model.Segment{TaskID: id, Start: at(startH, startM), End: at(endH, endM)}
	}

	opts := model.LayoutOptions{IndentPx: 6, MaxIndentPx: 24}

	tests := map[string]struct {
		segments  []model.Segment
		opts      model.LayoutOptions
		expBlocks []model.PositionedBlock
	}{
		"An empty slot yields no blocks": {
			segments:  nil,
			opts:      opts,
			expBlocks: nil,
		},

		"A single segment takes the full row width": {
			segments: []model.Segment{seg("t1", 10, 15, 10, 45)},
			opts:     opts,
			expBlocks: []model.PositionedBlock{
				{
					Segment:       seg("t1", 10, 15, 10, 45),
					TopPercent:    25,
					HeightPercent: 50,
					NestingLevel:  0,
					WidthFraction: 1,
					LeftOffset:    0,
					IndentPx:      0,
				},
			},
		},

		"A segment longer than the row keeps its unclipped height": {
			segments: []model.Segment{seg("t1", 10, 30, 13, 30)},
			opts:     opts,
			expBlocks: []model.PositionedBlock{
				{
					Segment:       seg("t1", 10, 30, 13, 30),
					TopPercent:    50,
					HeightPercent: 300,
					NestingLevel:  0,
					WidthFraction: 1,
					LeftOffset:    0,
					IndentPx:      0,
				},
			},
		},

		"Two concurrent segments split the row width in caller order": {
			segments: []model.Segment{
				seg("t1", 10, 0, 11, 0),
				seg("t2", 10, 30, 11, 30),
			},
			opts: opts,
			expBlocks: []model.PositionedBlock{
				{
					Segment:       seg("t1", 10, 0, 11, 0),
					TopPercent:    0,
					HeightPercent: 100,
					NestingLevel:  0,
					WidthFraction: 0.5,
					LeftOffset:    0,
					IndentPx:      0,
				},
				{
					Segment:       seg("t2", 10, 30, 11, 30),
					TopPercent:    50,
					HeightPercent: 100,
					NestingLevel:  0,
					WidthFraction: 0.5,
					LeftOffset:    0.5,
					IndentPx:      0,
				},
			},
		},

		"A strictly contained segment gets a nesting indent": {
			segments: []model.Segment{
				seg("t1", 10, 0, 12, 0),
				seg("t2", 10, 15, 10, 45),
			},
			opts: opts,
			expBlocks: []model.PositionedBlock{
				{
					Segment:       seg("t1", 10, 0, 12, 0),
					TopPercent:    0,
					HeightPercent: 200,
					NestingLevel:  0,
					WidthFraction: 0.5,
					LeftOffset:    0,
					IndentPx:      0,
				},
				{
					Segment:       seg("t2", 10, 15, 10, 45),
					TopPercent:    25,
					HeightPercent: 50,
					NestingLevel:  1,
					WidthFraction: 0.5,
					LeftOffset:    0.5,
					IndentPx:      6,
				},
			},
		},

		"Sharing a start point is not strict containment": {
			segments: []model.Segment{
				seg("t1", 10, 0, 12, 0),
				seg("t2", 10, 0, 11, 0),
			},
			opts: opts,
			expBlocks: []model.PositionedBlock{
				{
					Segment:       seg("t1", 10, 0, 12, 0),
					TopPercent:    0,
					HeightPercent: 200,
					NestingLevel:  0,
					WidthFraction: 0.5,
					LeftOffset:    0,
					IndentPx:      0,
				},
				{
					Segment:       seg("t2", 10, 0, 11, 0),
					TopPercent:    0,
					HeightPercent: 100,
					NestingLevel:  0,
					WidthFraction: 0.5,
					LeftOffset:    0.5,
					IndentPx:      0,
				},
			},
		},

	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			blocks := temporal.LayoutSlot(test.segments, test.opts)

			assert.Equal(test.expBlocks, blocks)
		})
	}
}

func TestLayoutSlotCapsNestingIndent(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	at := func(hour, min int) time.Time {
		return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
	}

	// Six segments, each strictly contained by all previous ones.
	segments := make([]model.Segment, 0, 6)
	for i := 0; i < 6; i++ {
		segments = append(segments, model.Segment{
			TaskID: "t",
			Start:  at(10, i),
			End:    at(11, 50-5*i),
		})
	}

	blocks := temporal.LayoutSlot(segments, model.LayoutOptions{IndentPx: 6, MaxIndentPx: 24})
	require.Len(blocks, 6)

	for i, b := range blocks {
		assert.Equal(i, b.NestingLevel, "segment %d", i)
	}
	assert.Equal([]int{0, 6, 12, 18, 24, 24}, []int{
		blocks[0].IndentPx, blocks[1].IndentPx, blocks[2].IndentPx,
		blocks[3].IndentPx, blocks[4].IndentPx, blocks[5].IndentPx,
	})
}

func TestLayoutSlotWidthInvariant(t *testing.T) {
	// Before indentation the width fractions of a slot never sum to more
	// than the row width.
	at := func(min int) time.Time {
		return time.Date(2026, 3, 2, 10, min, 0, 0, time.UTC)
	}

	for n := 1; n <= 12; n++ {
		segments := make([]model.Segment, 0, n)
		for i := 0; i < n; i++ {
			segments = append(segments, model.Segment{
				TaskID: "t",
				Start:  at(i),
				End:    at(i + 20),
			})
		}

		blocks := temporal.LayoutSlot(segments, model.LayoutOptions{})
		require.Len(t, blocks, n)

		total := 0.0
		for _, b := range blocks {
			total += b.WidthFraction
		}
		assert.InDelta(t, 1.0, total, 1e-9, "n=%d", n)
	}
}

func TestLayoutSlotDefaultsOptions(t *testing.T) {
	segments := []model.Segment{
		{TaskID: "t1", Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)},
		{TaskID: "t2", Start: time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC), End: time.Date(2026, 3, 2, 10, 45, 0, 0, time.UTC)},
	}

	blocks := temporal.LayoutSlot(segments, model.LayoutOptions{})

	require.Len(t, blocks, 2)
	assert.Equal(t, model.DefaultLayoutOptions.IndentPx, blocks[1].IndentPx)
}
