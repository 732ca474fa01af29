package menustack

import (
	"reflect"
	"testing"
)

type plain struct {
	Base
	name string
}

func (p *plain) Name() string { return p.name }

func TestStackVisible(t *testing.T) {
	tests := []struct {
		name    string
		overlay []bool
		want    []string
	}{
		{name: "single", overlay: []bool{false}, want: []string{"s0"}},
		{name: "full screens", overlay: []bool{false, false, false}, want: []string{"s2"}},
		{name: "overlay on top", overlay: []bool{false, false, true}, want: []string{"s1", "s2"}},
		{name: "stacked overlays", overlay: []bool{false, false, true, true}, want: []string{"s1", "s2", "s3"}},
		{name: "only overlays", overlay: []bool{true, true}, want: []string{"s0", "s1"}},
		{name: "overlay below full", overlay: []bool{false, true, false}, want: []string{"s2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			for i, o := range tt.overlay {
				p := &plain{name: "s" + string(rune('0'+i))}
				p.Overlay = o
				s.Push(p, &navigator{})
			}
			if got := names(s.Visible()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStackIDsAreUnique(t *testing.T) {
	s := NewStack()
	a := s.Push(&plain{name: "a"}, &navigator{})
	s.Pop()
	b := s.Push(&plain{name: "b"}, &navigator{})
	if a.ID == b.ID {
		t.Errorf("reused id %d", a.ID)
	}
	if s.Peek().Name != "b" {
		t.Errorf("Peek().Name = %q", s.Peek().Name)
	}
}

func TestStackPopEmpty(t *testing.T) {
	s := NewStack()
	if s.Pop() != nil || s.Peek() != nil {
		t.Error("empty stack returned an entry")
	}
	if !s.IsEmpty() {
		t.Error("IsEmpty() = false")
	}
}

func TestQueueDrain(t *testing.T) {
	var q Queue
	q.Enqueue(Request{Kind: RequestPop})
	q.Enqueue(Request{Kind: RequestQuit})

	batch := q.Drain()
	if len(batch) != 2 || batch[0].Kind != RequestPop || batch[1].Kind != RequestQuit {
		t.Fatalf("Drain() = %+v", batch)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Error("queue not empty after Drain")
	}
}
