package pet

import "testing"

// countingCatalog records lookups so tests can prove when the catalog is used.
type countingCatalog struct {
	inner   *ItemCatalog
	lookups int
}

func (c *countingCatalog) Lookup(id ItemID) (Item, bool) {
	c.lookups++
	return c.inner.Lookup(id)
}

func newTestSelection(t *testing.T) (*Selection, *countingCatalog) {
	t.Helper()
	cat := DefaultCatalog()
	rotate, ok := cat.Lookup(ItemRotate)
	if !ok {
		t.Fatal("default catalog has no rotate item")
	}
	return NewSelection(rotate), &countingCatalog{inner: cat}
}

func mustItem(t *testing.T, id ItemID) Item {
	t.Helper()
	it, err := DefaultCatalog().Get(id)
	if err != nil {
		t.Fatalf("Get(%s): %v", id, err)
	}
	return it
}

func TestSelectPlaceResolveApple(t *testing.T) {
	sel, cat := newTestSelection(t)
	tr := NewStatTracker(Stats{Health: 50, Fun: 40})

	if !sel.Select(mustItem(t, ItemApple)) {
		t.Fatal("Select(apple) from Idle should succeed")
	}
	if sel.Phase() != PhaseItemSelected || sel.State().Item.ID != ItemApple {
		t.Fatalf("state = %+v, want ItemSelected(apple)", sel.State())
	}

	pending, ok := sel.Place(cat)
	if !ok {
		t.Fatal("Place() with a selection should succeed")
	}
	if sel.Phase() != PhaseBlocked || pending.Kind != PendingPlace {
		t.Fatalf("after Place: phase %v, pending %+v", sel.Phase(), pending)
	}
	if tr.Stats() != (Stats{Health: 50, Fun: 40}) {
		t.Fatal("stats must not change before the presentation resolves")
	}

	out, ok := sel.Resolve(tr)
	if !ok {
		t.Fatal("Resolve() while Blocked should succeed")
	}
	if sel.Phase() != PhaseIdle {
		t.Errorf("phase after Resolve = %v, want Idle", sel.Phase())
	}
	if out.Stats != (Stats{Health: 70, Fun: 40}) {
		t.Errorf("stats = %+v, want health +20 and fun unchanged", out.Stats)
	}
}

func TestSelectWhileBlockedIsNoOp(t *testing.T) {
	sel, cat := newTestSelection(t)
	tr := NewStatTracker(Stats{Health: 100, Fun: 100})

	sel.Select(mustItem(t, ItemCandy))
	sel.Place(cat)
	before := sel.State()

	if sel.Select(mustItem(t, ItemToy)) {
		t.Error("Select() while Blocked should be ignored")
	}
	if _, ok := sel.Rotate(); ok {
		t.Error("Rotate() while Blocked should be ignored")
	}
	if s := sel.State(); s.Phase != before.Phase || s.Item.ID != before.Item.ID || s.Pending != before.Pending {
		t.Errorf("state changed: %+v -> %+v", before, s)
	}
	if tr.Stats() != (Stats{Health: 100, Fun: 100}) {
		t.Errorf("stats changed: %+v", tr.Stats())
	}
}

func TestPlaceWithoutSelectionIsNoOp(t *testing.T) {
	sel, cat := newTestSelection(t)

	if _, ok := sel.Place(cat); ok {
		t.Error("Place() from Idle should be ignored")
	}
	if sel.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want Idle", sel.Phase())
	}
	if cat.lookups != 0 {
		t.Errorf("catalog consulted %d times for an ignored place", cat.lookups)
	}
}

func TestResolveWhenNotBlockedIsNoOp(t *testing.T) {
	sel, _ := newTestSelection(t)
	tr := NewStatTracker(Stats{Health: 10, Fun: 10})

	if _, ok := sel.Resolve(tr); ok {
		t.Error("Resolve() from Idle should be ignored")
	}
	sel.Select(mustItem(t, ItemApple))
	if _, ok := sel.Resolve(tr); ok {
		t.Error("Resolve() from ItemSelected should be ignored")
	}
	if tr.Stats() != (Stats{Health: 10, Fun: 10}) {
		t.Errorf("stats changed: %+v", tr.Stats())
	}
}

func TestReselectReplacesItem(t *testing.T) {
	sel, _ := newTestSelection(t)

	sel.Select(mustItem(t, ItemApple))
	if !sel.Select(mustItem(t, ItemToy)) {
		t.Fatal("selecting another item should replace the first")
	}
	st := sel.State()
	if st.Item.ID != ItemToy || !st.Selected(ItemToy) || st.Selected(ItemApple) {
		t.Errorf("state = %+v, want only toy selected", st)
	}
}

func TestSelectRejectsActionButton(t *testing.T) {
	sel, _ := newTestSelection(t)
	if sel.Select(mustItem(t, ItemRotate)) {
		t.Error("rotate is an action, not a selectable item")
	}
}

func TestRotateBypassesCatalog(t *testing.T) {
	sel, cat := newTestSelection(t)
	tr := NewStatTracker(Stats{Health: 60, Fun: 30})

	pending, ok := sel.Rotate()
	if !ok || pending.Kind != PendingRotate {
		t.Fatalf("Rotate() = %+v, %v", pending, ok)
	}
	if sel.Phase() != PhaseBlocked {
		t.Fatalf("phase = %v, want Blocked", sel.Phase())
	}

	out, ok := sel.Resolve(tr)
	if !ok {
		t.Fatal("Resolve() after Rotate should succeed")
	}
	if out.Stats != (Stats{Health: 60, Fun: 50}) {
		t.Errorf("stats = %+v, want fun +20", out.Stats)
	}
	if sel.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want Idle", sel.Phase())
	}
	if cat.lookups != 0 {
		t.Errorf("rotate consulted the catalog %d times", cat.lookups)
	}
}

func TestRotateDropsSelection(t *testing.T) {
	sel, _ := newTestSelection(t)
	sel.Select(mustItem(t, ItemCandy))

	if _, ok := sel.Rotate(); !ok {
		t.Fatal("Rotate() with an item selected should succeed")
	}
	if sel.State().Item.ID != ItemRotate {
		t.Errorf("in-flight item = %q, want rotate", sel.State().Item.ID)
	}
}

func TestResolveGameOverLocks(t *testing.T) {
	sel, cat := newTestSelection(t)
	tr := NewStatTracker(Stats{Health: 10, Fun: 100})

	sel.Select(mustItem(t, ItemCandy))
	sel.Place(cat)
	out, _ := sel.Resolve(tr)

	if !out.GameOver {
		t.Fatal("candy on 10 health should end the game")
	}
	if sel.Phase() != PhaseBlocked {
		t.Errorf("phase = %v, want Blocked after game over", sel.Phase())
	}
	if sel.Select(mustItem(t, ItemApple)) {
		t.Error("no selection after game over")
	}
	if _, ok := sel.Resolve(tr); ok {
		t.Error("a locked selection has nothing to resolve")
	}
}

func TestPlaceUsesCatalogDelta(t *testing.T) {
	inner, err := NewItemCatalog(
		Item{ID: ItemApple, Glyph: '@', Delta: Delta(1, 1)},
	)
	if err != nil {
		t.Fatal(err)
	}
	cat := &countingCatalog{inner: inner}
	sel := NewSelection(Item{ID: ItemRotate, Delta: Delta(0, 20)})

	// The button carries a stale delta; the catalog is authoritative.
	sel.Select(Item{ID: ItemApple, Delta: Delta(500, 500)})
	pending, ok := sel.Place(cat)
	if !ok {
		t.Fatal("Place() failed")
	}
	if pending.Delta.String() != "health+1 fun+1" {
		t.Errorf("pending delta = %s, want catalog delta", pending.Delta)
	}
	if cat.lookups != 1 {
		t.Errorf("lookups = %d, want 1", cat.lookups)
	}
}

func TestPlaceUnknownItemReturnsToIdle(t *testing.T) {
	inner, _ := NewItemCatalog()
	sel := NewSelection(Item{ID: ItemRotate})
	sel.Select(Item{ID: "pear"})

	if _, ok := sel.Place(&countingCatalog{inner: inner}); ok {
		t.Error("Place() of an item missing from the catalog should fail")
	}
	if sel.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want Idle", sel.Phase())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseBlocked.String() != "Blocked" || Phase(9).String() != "Unknown" {
		t.Error("unexpected Phase.String() output")
	}
}

func TestCancelOnlyDropsASelectedItem(t *testing.T) {
	sel, cat := newTestSelection(t)

	if sel.Cancel() {
		t.Error("Cancel() from Idle should be ignored")
	}

	sel.Select(mustItem(t, ItemApple))
	if !sel.Cancel() || sel.Phase() != PhaseIdle || sel.State().Item.ID != "" {
		t.Errorf("Cancel() from ItemSelected left %+v", sel.State())
	}

	sel.Select(mustItem(t, ItemApple))
	sel.Place(cat)
	if sel.Cancel() {
		t.Error("Cancel() while Blocked should be ignored")
	}
	if sel.Phase() != PhaseBlocked {
		t.Errorf("phase = %v, want Blocked", sel.Phase())
	}
}
