package metrics

import (
	"errors"
	"testing"
	"time"
)

// fakeBackend is an in-memory Backend for tests.
type fakeBackend struct {
	counters   []counterCall
	histograms []histCall
	flushes    int
}

type counterCall struct {
	name   string
	delta  float64
	labels Labels
}

type histCall struct {
	name   string
	value  float64
	labels Labels
}

func (f *fakeBackend) IncCounter(name string, delta float64, labels Labels) {
	f.counters = append(f.counters, counterCall{name, delta, labels})
}

func (f *fakeBackend) ObserveHistogram(name string, value float64, labels Labels) {
	f.histograms = append(f.histograms, histCall{name, value, labels})
}

func (f *fakeBackend) Flush() error {
	f.flushes++
	return nil
}

func install(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	SetBackend(fb)
	t.Cleanup(Reset)
	return fb
}

func TestRecordStep_SuccessAndFailure(t *testing.T) {
	fb := install(t)

	RecordStep("weo", "normalize", nil, 2*time.Second)
	RecordStep("weo", "write_long", errors.New("boom"), 500*time.Millisecond)

	if len(fb.counters) != 2 || len(fb.histograms) != 2 {
		t.Fatalf("counters=%d histograms=%d, want 2 each", len(fb.counters), len(fb.histograms))
	}
	if c := fb.counters[0]; c.name != StepTotal || c.labels["status"] != "success" || c.labels["step"] != "normalize" {
		t.Fatalf("unexpected success counter %+v", c)
	}
	if c := fb.counters[1]; c.labels["status"] != "failure" || c.labels["job"] != "weo" {
		t.Fatalf("unexpected failure counter %+v", c)
	}
	if h := fb.histograms[0]; h.name != StepDurationSeconds || h.value != 2 {
		t.Fatalf("unexpected histogram %+v", h)
	}
}

func TestTime(t *testing.T) {
	fb := install(t)

	want := errors.New("fail")
	if err := Time("paper", "flatten", func() error { return want }); err != want {
		t.Fatalf("Time returned %v, want %v", err, want)
	}
	if len(fb.counters) != 1 || fb.counters[0].labels["status"] != "failure" {
		t.Fatalf("counters=%+v", fb.counters)
	}
}

func TestTimeStep(t *testing.T) {
	fb := install(t)

	ran := false
	TimeStep("weo", "pivot", func() { ran = true })
	if !ran {
		t.Fatal("fn not called")
	}
	if len(fb.counters) != 1 || len(fb.histograms) != 1 {
		t.Fatalf("counters=%d histograms=%d, want 1 each", len(fb.counters), len(fb.histograms))
	}
	if c := fb.counters[0]; c.labels["step"] != "pivot" || c.labels["status"] != "success" {
		t.Fatalf("unexpected counter %+v", c)
	}
}

func TestRecordRowsAndBatches(t *testing.T) {
	fb := install(t)

	RecordRows("weo", "long", 0)
	RecordRows("weo", "long", -3)
	RecordRows("weo", "long", 42)
	RecordBatches("weo", 0)
	RecordBatches("weo", 2)

	if len(fb.counters) != 2 {
		t.Fatalf("counters=%+v, want 2 calls", fb.counters)
	}
	if c := fb.counters[0]; c.name != RecordsTotal || c.delta != 42 || c.labels["kind"] != "long" {
		t.Fatalf("unexpected record counter %+v", c)
	}
	if c := fb.counters[1]; c.name != BatchesTotal || c.delta != 2 {
		t.Fatalf("unexpected batch counter %+v", c)
	}
}

func TestSetBackendNilAndFlush(t *testing.T) {
	fb := install(t)
	SetBackend(nil)
	if err := Flush(); err != nil {
		t.Fatal(err)
	}
	if fb.flushes != 1 {
		t.Fatalf("flushes=%d want 1", fb.flushes)
	}
	Reset()
	if err := Flush(); err != nil {
		t.Fatalf("nop flush: %v", err)
	}
}
