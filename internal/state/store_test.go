package state

import (
	"testing"

	"github.com/driveaware/restrictwatch/internal/model"
)

func TestNewStoreStartsAllClear(t *testing.T) {
	s := NewStore()
	if !s.Blocked().Empty() {
		t.Errorf("fresh store must block nothing, got %v", s.Blocked().Labels())
	}
}

func TestApplyReplacesSetWholesale(t *testing.T) {
	s := NewStore()

	s.Apply(model.Snapshot{ActiveFlags: model.NoDialpad | model.NoVideo, RequiresOptimization: true})
	if got := s.Blocked(); len(got) != 2 || !got.Has(model.FuncCall) || !got.Has(model.FuncVideo) {
		t.Fatalf("unexpected blocked set %v", got.Labels())
	}

	// A later snapshot fully replaces the set; nothing from the previous
	// one may survive.
	s.Apply(model.Snapshot{ActiveFlags: model.NoKeyboard, RequiresOptimization: true})
	got := s.Blocked()
	if len(got) != 1 || !got.Has(model.FuncKeyboard) {
		t.Fatalf("expected exactly {Keyboard}, got %v", got.Labels())
	}

	s.Apply(model.Snapshot{ActiveFlags: model.NoKeyboard, RequiresOptimization: false})
	if !s.Blocked().Empty() {
		t.Errorf("optimization off must clear the set, got %v", s.Blocked().Labels())
	}
}

func TestSubscribeDeliversCurrentSetImmediately(t *testing.T) {
	s := NewStore()
	s.Apply(model.Snapshot{ActiveFlags: model.NoFiltering, RequiresOptimization: true})

	var got []model.BlockedSet
	s.Subscribe(func(b model.BlockedSet) { got = append(got, b) })

	if len(got) != 1 {
		t.Fatalf("expected one synchronous initial delivery, got %d", len(got))
	}
	if !got[0].Has(model.FuncMessage) {
		t.Errorf("initial delivery must carry the current set, got %v", got[0].Labels())
	}
}

func TestSubscribersSeeEveryReplacement(t *testing.T) {
	s := NewStore()

	var got []model.BlockedSet
	s.Subscribe(func(b model.BlockedSet) { got = append(got, b) })

	s.Apply(model.Snapshot{ActiveFlags: model.NoDialpad, RequiresOptimization: true})
	s.Apply(model.Snapshot{RequiresOptimization: false})

	if len(got) != 3 {
		t.Fatalf("expected initial + 2 updates, got %d", len(got))
	}
	if !got[0].Empty() {
		t.Error("initial set must be empty")
	}
	if !got[1].Has(model.FuncCall) {
		t.Errorf("first update must block Call, got %v", got[1].Labels())
	}
	if !got[2].Empty() {
		t.Errorf("second update must clear, got %v", got[2].Labels())
	}
}

func TestSnapshotReturnsMostRecent(t *testing.T) {
	s := NewStore()
	want := model.Snapshot{ActiveFlags: model.LimitStringLength, RequiresOptimization: true}
	s.Apply(want)
	if got := s.Snapshot(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
