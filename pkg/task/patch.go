package task

import (
	"encoding/json"
	"time"
)

// Patch is a partial update. Only fields present in the decoded JSON are set,
// so `"due": null` clears the due date while an absent "due" keeps it.
type Patch struct {
	Title       *string
	DueSet      bool
	Due         *string
	DurationMin *int
	Priority    *string
	Tags        []string
	TagsSet     bool
	Done        *bool
}

func (p *Patch) UnmarshalJSON(bs []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bs, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		var err error
		switch key {
		case "title":
			err = json.Unmarshal(raw, &p.Title)
		case "due":
			p.DueSet = true
			err = json.Unmarshal(raw, &p.Due)
		case "duration_min":
			var f *float64
			err = json.Unmarshal(raw, &f)
			p.DurationMin = RoundMinutes(f)
		case "priority":
			err = json.Unmarshal(raw, &p.Priority)
		case "tags":
			p.TagsSet = true
			err = json.Unmarshal(raw, &p.Tags)
		case "done":
			err = json.Unmarshal(raw, &p.Done)
		}
		if err != nil {
			return invalid(key, err.Error())
		}
	}
	return nil
}

// Apply merges p into t and re-normalizes the result. The id never changes.
func (t Task) Apply(p Patch, now time.Time) (Task, error) {
	d := t.Draft()
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.DueSet {
		d.Due = p.Due
	}
	if p.DurationMin != nil {
		d.DurationMin = p.DurationMin
	}
	if p.Priority != nil {
		d.Priority = *p.Priority
	}
	if p.TagsSet {
		d.Tags = p.Tags
	}
	out, err := Normalize(d, now)
	if err != nil {
		return Task{}, err
	}
	out.Done = t.Done
	if p.Done != nil {
		out.Done = *p.Done
	}
	return out, nil
}
