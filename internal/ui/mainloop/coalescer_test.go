package mainloop

import "testing"

func TestCoalescerMergesTitleBurstIntoOneRun(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	title := ""
	for _, v := range []string{"Loading", "Loading.", "Loading..", "Example Domain"} {
		c.Post("title:t1", func() { title = v })
	}

	if len(queue) != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", len(queue))
	}
	if !c.Pending("title:t1") {
		t.Fatalf("expected key to be pending before the queue runs")
	}
	queue[0]()

	if title != "Example Domain" {
		t.Fatalf("expected latest callback to run, got %q", title)
	}
	if c.Pending("title:t1") {
		t.Fatalf("expected key to be cleared after running")
	}
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	c.Post("title:t1", func() {})
	c.Post("title:t2", func() {})
	c.Post("", func() {})
	c.Post("title:t3", nil)

	if len(queue) != 2 {
		t.Fatalf("expected 2 scheduled callbacks, got %d", len(queue))
	}
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("render", func() { ran = true })
	c.Destroy()

	if len(queue) != 1 {
		t.Fatalf("expected one queued callback before destroy, got %d", len(queue))
	}
	queue[0]()

	if ran {
		t.Fatalf("expected queued work to be dropped after destroy")
	}

	c.Post("render", func() { ran = true })
	if len(queue) != 1 {
		t.Fatalf("expected no new callback after destroy, got %d", len(queue))
	}
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when post is nil")
		}
	}()

	_ = NewCoalescer(nil)
}
