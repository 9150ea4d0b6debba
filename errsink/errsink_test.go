// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package errsink

import (
	"testing"

	"github.com/danielhkuo/live-vote/models"
)

func TestSink(t *testing.T) {
	sink := New()

	if sink.Current() != nil {
		t.Fatal("new sink should have no current error")
	}

	sink.Show(models.NewVotingError(models.ErrorServer, "first"))
	sink.Show(models.NewVotingError(models.ErrorStorage, "second"))

	got := sink.Current()
	if got == nil || got.Message != "second" || got.Type != models.ErrorStorage {
		t.Errorf("Current() = %+v, want the latest error", got)
	}

	sink.Clear()
	if sink.Current() != nil {
		t.Error("Clear() should remove the current error")
	}
}

func TestSinkIgnoresEmptyErrors(t *testing.T) {
	sink := New()
	sink.Show(models.NewVotingError(models.ErrorServer, "kept"))

	sink.Show(nil)
	sink.Show(models.NewVotingError(models.ErrorServer, ""))

	if got := sink.Current(); got == nil || got.Message != "kept" {
		t.Errorf("Current() = %+v, empty errors should be ignored", got)
	}
}

func TestSinkRemapsDuplicate(t *testing.T) {
	sink := New()
	original := models.NewVotingError(models.ErrorDuplicate, "You have already voted for this contestant")

	sink.Show(original)

	got := sink.Current()
	if got.Type != models.ErrorValidation {
		t.Errorf("Current().Type = %q, want %q", got.Type, models.ErrorValidation)
	}
	if original.Type != models.ErrorDuplicate {
		t.Error("Show() must not modify the caller's error")
	}
}

func TestBroadcast(t *testing.T) {
	b := NewBroadcast()
	first, second := New(), New()
	b.Attach(first)
	b.Attach(second)

	b.Show(models.NewVotingError(models.ErrorServer, "feed down"))

	for i, s := range []*Sink{first, second} {
		if got := s.Current(); got == nil || got.Message != "feed down" {
			t.Errorf("sink %d Current() = %+v", i, got)
		}
	}

	b.Detach(second)
	second.Clear()
	b.Show(models.NewVotingError(models.ErrorServer, "again"))
	if second.Current() != nil {
		t.Error("detached sink should not receive errors")
	}
}
