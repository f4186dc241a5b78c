package temporal

import (
	"github.com/teambeat/teambeat/internal/model"
)

// LayoutSlot positions the segments of a single hour slot so all of them stay
// visible side by side. The caller passes the segments whose start falls in
// the slot's hour, already in the order it wants them packed (typically start
// time ascending); the order is preserved, not re-sorted.
//
// Vertical placement is minute-resolution on a 0-100 scale per 60 minute row.
// Height is not clipped to 100 so a long segment visually overflows into the
// following rows. Horizontally every segment gets an equal share of the row
// width, shifted by its slot index, plus a capped pixel indent per nesting
// level.
func LayoutSlot(slotSegments []model.Segment, opts model.LayoutOptions) []model.PositionedBlock {
	if len(slotSegments) == 0 {
		return nil
	}
	opts = opts.WithDefaults()

	n := len(slotSegments)
	width := 1.0 / float64(n)

	blocks := make([]model.PositionedBlock, 0, n)
	for i, seg := range slotSegments {
		level := nestingLevel(slotSegments, i)

		indent := level * opts.IndentPx
		if indent > opts.MaxIndentPx {
			indent = opts.MaxIndentPx
		}

		blocks = append(blocks, model.PositionedBlock{
			Segment:       seg,
			TopPercent:    float64(seg.Start.Minute()) / 60 * 100,
			HeightPercent: float64(seg.Minutes()) / 60 * 100,
			NestingLevel:  level,
			WidthFraction: width,
			LeftOffset:    float64(i) * width,
			IndentPx:      indent,
		})
	}

	return blocks
}

// nestingLevel counts the other segments of the slot that strictly contain
// segments[i].
func nestingLevel(segments []model.Segment, i int) int {
	level := 0
	for j, other := range segments {
		if j == i {
			continue
		}
		if other.Start.Before(segments[i].Start) && segments[i].End.Before(other.End) {
			level++
		}
	}
	return level
}
