package app

import (
	"fmt"
	"sync"
	"testing"

	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

func containsID(ids []core.ConnectionID, want core.ConnectionID) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

func TestRoomDirectory_JoinCreatesAndReportsOthers(t *testing.T) {
	d := NewRoomDirectory()

	res := d.Join("r1", "a")
	if res.AlreadyMember || len(res.Others) != 0 || res.Previous != "" {
		t.Fatalf("first join: %+v", res)
	}

	res = d.Join("r1", "b")
	if res.AlreadyMember {
		t.Fatalf("second member flagged as duplicate")
	}
	if len(res.Others) != 1 || res.Others[0] != "a" {
		t.Fatalf("expected others=[a], got %v", res.Others)
	}

	if got, ok := d.RoomOf("b"); !ok || got != "r1" {
		t.Fatalf("RoomOf(b) = %v, %v", got, ok)
	}
}

func TestRoomDirectory_DuplicateJoinIsNoop(t *testing.T) {
	d := NewRoomDirectory()
	d.Join("r1", "a")
	d.Join("r1", "b")

	res := d.Join("r1", "a")
	if !res.AlreadyMember {
		t.Fatalf("expected AlreadyMember")
	}
	if len(res.Others) != 1 || res.Others[0] != "b" {
		t.Fatalf("duplicate join others = %v", res.Others)
	}
	if n := len(d.MembersOf("r1")); n != 2 {
		t.Fatalf("member set size changed on duplicate join: %d", n)
	}
}

func TestRoomDirectory_JoinImplicitlyLeavesPrevious(t *testing.T) {
	d := NewRoomDirectory()
	d.Join("r1", "a")

	res := d.Join("r2", "a")
	if res.Previous != "r1" {
		t.Fatalf("expected implicit leave of r1, got %q", res.Previous)
	}
	if got, ok := d.RoomOf("a"); !ok || got != "r2" {
		t.Fatalf("RoomOf(a) = %v, %v", got, ok)
	}
	// a was the sole member, so r1 must be gone.
	if len(d.MembersOf("r1")) != 0 {
		t.Fatalf("r1 should be empty")
	}
	if infos := d.List(); len(infos) != 1 || infos[0].ID != "r2" {
		t.Fatalf("directory should only hold r2: %v", infos)
	}
}

func TestRoomDirectory_ImplicitLeaveReportsRemaining(t *testing.T) {
	d := NewRoomDirectory()
	d.Join("r1", "a")
	d.Join("r1", "b")

	res := d.Join("r2", "a")
	if res.Previous != "r1" || !containsID(res.PreviousRemaining, "b") {
		t.Fatalf("previous room departure not reported: %+v", res)
	}
	if !containsID(d.MembersOf("r1"), "b") {
		t.Fatalf("b should remain in r1")
	}
}

func TestRoomDirectory_LeaveDeletesEmptyRoom(t *testing.T) {
	d := NewRoomDirectory()
	d.Join("r1", "a")
	d.Join("r1", "b")

	res := d.Leave("r1", "a")
	if !res.Removed || !containsID(res.Remaining, "b") {
		t.Fatalf("leave result: %+v", res)
	}
	if _, ok := d.RoomOf("a"); ok {
		t.Fatalf("a still has a room after leave")
	}

	res = d.Leave("r1", "b")
	if !res.Removed || len(res.Remaining) != 0 {
		t.Fatalf("last leave result: %+v", res)
	}
	if len(d.List()) != 0 {
		t.Fatalf("empty room leaked: %v", d.List())
	}
}

func TestRoomDirectory_LeaveUnknownIsNoop(t *testing.T) {
	d := NewRoomDirectory()
	if res := d.Leave("nope", "a"); res.Removed {
		t.Fatalf("leave of unknown room reported removal")
	}
	d.Join("r1", "a")
	if res := d.Leave("r1", "stranger"); res.Removed {
		t.Fatalf("leave of non-member reported removal")
	}
	if len(d.MembersOf("r1")) != 1 {
		t.Fatalf("member set mutated by no-op leave")
	}
}

func TestRoomDirectory_RemoveAll(t *testing.T) {
	d := NewRoomDirectory()

	if res := d.RemoveAll("ghost"); res.Removed {
		t.Fatalf("RemoveAll of unknown connection reported removal")
	}

	d.Join("r1", "a")
	d.Join("r1", "b")
	res := d.RemoveAll("a")
	if !res.Removed || res.Room != "r1" || !containsID(res.Remaining, "b") {
		t.Fatalf("RemoveAll result: %+v", res)
	}
	if _, ok := d.RoomOf("a"); ok {
		t.Fatalf("reverse index not cleared")
	}
}

func TestRoomDirectory_ConcurrentJoinLeave(t *testing.T) {
	d := NewRoomDirectory()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cid := core.ConnectionID(fmt.Sprintf("c%d", i))
			room := domain.RoomID(fmt.Sprintf("r%d", i%4))
			d.Join(room, cid)
			d.Join("hub", cid) // implicit leave of the first room
			d.Leave("hub", cid)
		}(i)
	}
	wg.Wait()

	// Everyone joined then left; nothing may remain.
	if infos := d.List(); len(infos) != 0 {
		t.Fatalf("rooms leaked after churn: %v", infos)
	}
	for i := 0; i < 64; i++ {
		cid := core.ConnectionID(fmt.Sprintf("c%d", i))
		if room, ok := d.RoomOf(cid); ok {
			t.Fatalf("%s still mapped to %s", cid, room)
		}
	}
}
