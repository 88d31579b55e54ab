package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlan_Resolve(t *testing.T) {
	p := Plan{
		{Name: "enter", Start: 100 * time.Millisecond, Props: Props{Visible: true, Indent: 4}},
		{Name: "show", Start: 400 * time.Millisecond, Props: Props{Visible: true}},
	}
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "hidden"},
		{99 * time.Millisecond, "hidden"},
		{100 * time.Millisecond, "enter"},
		{399 * time.Millisecond, "enter"},
		{400 * time.Millisecond, "show"},
		{time.Hour, "show"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Resolve(tt.elapsed).Name, "elapsed %v", tt.elapsed)
	}
	assert.False(t, p.Resolve(0).Props.Visible)
	// The later stage replaces the earlier one; Indent is not inherited.
	assert.Equal(t, 0, p.Resolve(time.Second).Props.Indent)
}

func TestPlan_EmptyIsShown(t *testing.T) {
	var p Plan
	st := p.Resolve(0)
	assert.True(t, st.Props.Visible)
	assert.Equal(t, time.Duration(0), p.End())
}

func TestStagger(t *testing.T) {
	plans := Stagger(SlideUp, 50*time.Millisecond, 100*time.Millisecond, 3)
	assert.Len(t, plans, 3)
	for i, p := range plans {
		offset := 50*time.Millisecond + time.Duration(i)*100*time.Millisecond
		assert.Equal(t, offset, p[0].Start)
		assert.Equal(t, SlideUp.End()+offset, p.End())
		assert.Equal(t, "hidden", p.Resolve(offset-time.Millisecond).Name)
		assert.Equal(t, "enter", p.Resolve(offset).Name)
	}
	// The base plan is untouched.
	assert.Equal(t, time.Duration(0), SlideUp[0].Start)
}
