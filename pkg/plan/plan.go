// Package plan turns a prioritized task list into alternating work and break
// blocks under a pomodoro policy.
package plan

import (
	"time"

	"github.com/google/uuid"
	"github.com/td0m/pomoplan/pkg/task"
)

type BlockType string

const (
	Work  BlockType = "work"
	Break BlockType = "break"
)

const (
	// MinSeconds and MaxSeconds bound user edited block lengths.
	MinSeconds = 60
	MaxSeconds = 8 * 60 * 60
)

// Block is one scheduled interval. TaskID and Title are only set on work
// blocks; the task is looked up by id and may be deleted independently.
type Block struct {
	ID      string    `json:"id"`
	Type    BlockType `json:"type"`
	Seconds int       `json:"seconds"`
	TaskID  task.ID   `json:"taskId,omitempty"`
	Title   string    `json:"title,omitempty"`
}

// Plan is an ordered block sequence. It is replaced wholesale, never patched.
type Plan struct {
	Blocks      []Block    `json:"blocks"`
	GeneratedAt *time.Time `json:"generatedAt,omitempty"`
}

func newBlockID() string {
	return uuid.NewString()
}

// WorkMinutes sums the length of every work block.
func (p Plan) WorkMinutes() int {
	return p.minutes(Work)
}

// BreakMinutes sums the length of every break block.
func (p Plan) BreakMinutes() int {
	return p.minutes(Break)
}

func (p Plan) minutes(typ BlockType) int {
	total := 0
	for _, b := range p.Blocks {
		if b.Type == typ {
			total += b.Seconds
		}
	}
	return total / 60
}

// Policy is the pomodoro policy. Lengths are in minutes.
type Policy struct {
	Work      int `json:"work" yaml:"work" mapstructure:"work"`
	Short     int `json:"short" yaml:"short" mapstructure:"short"`
	Long      int `json:"long" yaml:"long" mapstructure:"long"`
	LongEvery int `json:"longEvery" yaml:"long_every" mapstructure:"long_every"`
}

// DefaultPolicy is the classic 25/5/15 cycle with a long break every 4 units.
var DefaultPolicy = Policy{Work: 25, Short: 5, Long: 15, LongEvery: 4}

// WithDefaults replaces non-positive fields with fallback's.
func (p Policy) WithDefaults(fallback Policy) Policy {
	if p.Work <= 0 {
		p.Work = fallback.Work
	}
	if p.Short <= 0 {
		p.Short = fallback.Short
	}
	if p.Long <= 0 {
		p.Long = fallback.Long
	}
	if p.LongEvery <= 0 {
		p.LongEvery = fallback.LongEvery
	}
	return p
}
