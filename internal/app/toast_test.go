package app

import "testing"

func newTestToast(t *testing.T) (*ToastEmitter, *mockToastSink, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	sink := &mockToastSink{}
	return NewToastEmitter(sink, sched), sink, sched
}

func TestToastEmitter_ShowThenAutoHide(t *testing.T) {
	toast, sink, sched := newTestToast(t)

	toast.Show("All changes synced to cloud")
	if !toast.Visible() {
		t.Fatal("expected toast visible after Show")
	}
	if len(sink.renders) != 1 || sink.renders[0] != "All changes synced to cloud" {
		t.Errorf("unexpected renders: %v", sink.renders)
	}

	sched.fire()
	if toast.Visible() {
		t.Error("expected toast hidden after display window")
	}
	if sink.clears != 1 {
		t.Errorf("expected 1 clear, got %d", sink.clears)
	}
}

func TestToastEmitter_OverlappingShowRestartsWindow(t *testing.T) {
	toast, sink, sched := newTestToast(t)

	toast.Show("first")
	toast.Show("second")

	// The first hide timer is replaced, not stacked
	if sched.pending() != 1 {
		t.Fatalf("expected 1 pending hide timer, got %d", sched.pending())
	}
	if !toast.Visible() {
		t.Fatal("expected toast visible")
	}

	sched.fire()
	if toast.Visible() {
		t.Error("expected toast hidden")
	}
	if sink.clears != 1 {
		t.Errorf("expected a single clear, got %d", sink.clears)
	}
}

func TestToastEmitter_HideIsIdempotent(t *testing.T) {
	toast, sink, sched := newTestToast(t)

	toast.Show("once")
	sched.fire()
	// A stray late timer firing again must not clear twice
	toast.hide()
	if sink.clears != 1 {
		t.Errorf("expected 1 clear, got %d", sink.clears)
	}
}
