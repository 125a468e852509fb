package rain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdmitFirstAvailableInOrder(t *testing.T) {
	cols := NewColumns(4)
	cols[0] = Column{FallDepth: 3, Buffer: "busy", Cursor: 1}
	cols[2] = Column{FallDepth: 1, Buffer: "also busy"}

	i, ok := cols.Admit("hello")
	if !ok || i != 1 {
		t.Fatalf("Admit = (%d, %v), want (1, true)", i, ok)
	}
	if want := (Column{FallDepth: 1, Buffer: "hello"}); cols[1] != want {
		t.Errorf("column 1 = %+v, want %+v", cols[1], want)
	}

	i, ok = cols.Admit("world")
	if !ok || i != 3 {
		t.Errorf("Admit = (%d, %v), want (3, true)", i, ok)
	}
}

func TestAdmitResetsStaleDepth(t *testing.T) {
	cols := Columns{{FallDepth: 9}}
	if _, ok := cols.Admit("x"); !ok {
		t.Fatal("expected admit")
	}
	if cols[0].FallDepth != 1 {
		t.Errorf("FallDepth = %d, want 1", cols[0].FallDepth)
	}
}

func TestAdmitAllBusyIsNoop(t *testing.T) {
	cols := busyColumns(5)
	before := cols.Clone()

	i, ok := cols.Admit("dropped")
	if ok || i != -1 {
		t.Errorf("Admit = (%d, %v), want (-1, false)", i, ok)
	}
	if diff := cmp.Diff(before, cols); diff != "" {
		t.Errorf("busy lanes changed (-want +got):\n%s", diff)
	}
}

func TestAdmitEmptyTextDropped(t *testing.T) {
	cols := NewColumns(2)
	if _, ok := cols.Admit(""); ok {
		t.Error("empty text must not occupy a lane")
	}
	if cols.IdleCount() != 2 {
		t.Errorf("IdleCount = %d, want 2", cols.IdleCount())
	}
}

func TestAdmitNoColumns(t *testing.T) {
	var cols Columns
	if _, ok := cols.Admit("x"); ok {
		t.Error("admit into zero lanes must drop")
	}
}
