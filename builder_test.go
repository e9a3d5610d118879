package utid_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/itanoss/utid"
	"github.com/itanoss/utid/utidtest"
)

func TestBuilder_Basic(t *testing.T) {
	composer, err := utid.Compose().
		Constant(16, 42).
		Constant(48, 1).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	id, err := composer.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if want := utid.FromUint64(11821949021847553); id != want {
		t.Errorf("expected %v, got %v", want, id)
	}
}

func TestBuilder_FullOptions(t *testing.T) {
	epoch := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(epoch.Add(77 * time.Millisecond))
	metrics := &utid.BasicMetricsCollector{}

	composer, err := utid.Compose().
		Timestamp(41, utid.Milliseconds, epoch).
		Constant(10, 5).
		Random(12).
		Clock(clock).
		Source(utidtest.Seq(9)).
		Logger(utid.NoopLogger()).
		Metrics(metrics).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	id, err := composer.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if want := utid.FromUint64(77<<22 | 5<<12 | 9); id != want {
		t.Errorf("expected %v, got %v", want, id)
	}

	if got := metrics.GetStats().GenerateCount; got != 1 {
		t.Errorf("expected 1 recorded generate, got %d", got)
	}
}

func TestBuilder_Immutable(t *testing.T) {
	base := utid.Compose().Constant(8, 1)

	a := base.Constant(8, 2).MustBuild()
	b := base.Constant(8, 3).MustBuild()

	if a.Width() != 16 || b.Width() != 16 {
		t.Fatalf("expected both layouts to be 16 bits wide, got %d and %d", a.Width(), b.Width())
	}

	idA, err := a.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	idB, err := b.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if want := utid.FromUint64(1<<8 | 2); idA != want {
		t.Errorf("expected %v from the first branch, got %v", want, idA)
	}
	if want := utid.FromUint64(1<<8 | 3); idB != want {
		t.Errorf("expected %v from the second branch, got %v", want, idB)
	}
}

func TestBuilder_SegmentPrecedence(t *testing.T) {
	// A segment configured with its own source keeps it over the
	// builder-level one.
	composer := utid.Compose().
		Segment(utid.Random(8).WithSource(utidtest.Const(3))).
		Source(utidtest.Const(0xFF)).
		MustBuild()

	id, err := composer.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if want := utid.FromUint64(3); id != want {
		t.Errorf("expected %v, got %v", want, id)
	}
}

func TestBuilder_MustBuild_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustBuild to panic on an empty layout")
		}
	}()

	_ = utid.Compose().MustBuild()
}
