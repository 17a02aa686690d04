package plan

import (
	"sync"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/pomoplan/pkg/task"
)

func TestSanitize(t *testing.T) {
	is := is.New(t)
	got := Sanitize([]Block{
		{ID: "keep", Type: Work, Seconds: 1500, TaskID: "t1", Title: "report"},
		{Type: "Break"},
		{Type: Break, Seconds: 30, TaskID: "t1", Title: "stray"},
		{Type: "nap", Seconds: 100000},
	})
	is.Equal(len(got), 4)

	is.Equal(got[0], Block{ID: "keep", Type: Work, Seconds: 1500, TaskID: "t1", Title: "report"})

	// missing seconds clamp to the minimum, anything but "break" is work
	is.Equal(got[1].Type, Work)
	is.Equal(got[1].Seconds, MinSeconds)
	is.True(got[1].ID != "")

	is.Equal(got[2].Type, Break)
	is.Equal(got[2].Seconds, MinSeconds)
	is.Equal(got[2].TaskID, task.ID(""))
	is.Equal(got[2].Title, "")

	is.Equal(got[3].Type, Work)
	is.Equal(got[3].Seconds, MaxSeconds)
}

func TestSanitizeEdits(t *testing.T) {
	is := is.New(t)
	f := func(v float64) *float64 { return &v }
	got := SanitizeEdits([]Edit{
		{ID: "a", Type: "break", Seconds: f(300.9), TaskID: "t1", Title: "x"},
		{Type: float64(7), Seconds: f(1e12)},
		{Type: "Break", Seconds: f(90.5)},
		{Type: true},
	})
	is.Equal(len(got), 4)

	is.Equal(got[0], Block{ID: "a", Type: Break, Seconds: 300})

	is.Equal(got[1].Type, Work)
	is.Equal(got[1].Seconds, MaxSeconds)

	is.Equal(got[2].Type, Work)
	is.Equal(got[2].Seconds, 90)

	is.Equal(got[3].Type, Work)
	is.Equal(got[3].Seconds, MinSeconds)
	is.True(got[3].ID != "")
}

func TestStore(t *testing.T) {
	is := is.New(t)
	s := NewStore()
	is.Equal(len(s.Get().Blocks), 0)

	blocks := []Block{{ID: "a", Type: Work, Seconds: 60}}
	s.Set(Plan{Blocks: blocks})
	blocks[0].ID = "mutated"
	is.Equal(s.Get().Blocks[0].ID, "a")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set(Plan{Blocks: Sanitize([]Block{{}})})
			_ = s.Get()
		}()
	}
	wg.Wait()
	is.Equal(len(s.Get().Blocks), 1)
}
