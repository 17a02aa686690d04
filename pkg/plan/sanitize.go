package plan

import (
	"math"

	"github.com/td0m/pomoplan/pkg/task"
)

// Edit is a block as submitted by a client. Fields are loosely typed so that
// odd values are coerced by SanitizeEdits rather than rejected.
type Edit struct {
	ID      string      `json:"id"`
	Type    interface{} `json:"type"`
	Seconds *float64    `json:"seconds"`
	TaskID  task.ID     `json:"taskId"`
	Title   string      `json:"title"`
}

// Block converts the edit, flooring fractional seconds and treating any type
// that is not the string "break" as work.
func (e Edit) Block() Block {
	b := Block{ID: e.ID, Type: Work, TaskID: e.TaskID, Title: e.Title}
	if s, ok := e.Type.(string); ok && BlockType(s) == Break {
		b.Type = Break
	}
	if e.Seconds != nil {
		secs := math.Floor(*e.Seconds)
		b.Seconds = int(math.Min(math.Max(secs, MinSeconds), MaxSeconds))
	}
	return b
}

// SanitizeEdits converts and sanitizes client edits.
func SanitizeEdits(edits []Edit) []Block {
	blocks := make([]Block, 0, len(edits))
	for _, e := range edits {
		blocks = append(blocks, e.Block())
	}
	return Sanitize(blocks)
}

// Sanitize coerces user edited blocks into valid ones: the type is Work unless
// it is exactly Break, seconds are clamped to [MinSeconds, MaxSeconds], a
// missing id is generated, and break blocks lose any task reference.
func Sanitize(blocks []Block) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Type != Break {
			b.Type = Work
		}
		b.Seconds = clamp(b.Seconds, MinSeconds, MaxSeconds)
		if b.ID == "" {
			b.ID = newBlockID()
		}
		if b.Type == Break {
			b.TaskID = ""
			b.Title = ""
		}
		out = append(out, b)
	}
	return out
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}
