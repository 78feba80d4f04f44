package timemgr

import (
	"testing"
	"time"

	"corvus/board"
)

func TestStartBudgetsWithinRemainingTime(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	var h Handler
	h.Start(b, 10000, 0)

	budget := time.Until(h.deadline)
	if budget <= 0 {
		t.Fatal("expected a positive move budget")
	}
	if budget > 10*time.Second {
		t.Errorf("budget %v exceeds remaining time", budget)
	}
}

func TestStartNeverExceedsMaxFraction(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	var h Handler
	h.Start(b, 1000, 0)

	budget := time.Until(h.deadline)
	maxAllowed := time.Duration(float64(1000)*maxFraction) * time.Millisecond
	if budget > maxAllowed+time.Millisecond {
		t.Errorf("budget %v exceeds max fraction cap %v", budget, maxAllowed)
	}
}

func TestStartWithIncrementUsesPanicBranchWhenLow(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	var h Handler
	h.Start(b, 500, 1000)

	budget := time.Until(h.deadline)
	if budget <= 0 {
		t.Fatal("expected a positive move budget even under time pressure")
	}
}

func TestFixedDepthNeverExpires(t *testing.T) {
	var h Handler
	h.StartFixedDepth()
	if h.Expired() {
		t.Error("fixed-depth handler must never report expired")
	}
}

func TestMoveTimeExpiresAfterDuration(t *testing.T) {
	var h Handler
	h.StartMoveTime(1)
	time.Sleep(5 * time.Millisecond)
	if !h.Expired() {
		t.Error("expected handler to be expired after its movetime elapsed")
	}
}

func TestMoveTimeNotExpiredImmediately(t *testing.T) {
	var h Handler
	h.StartMoveTime(5000)
	if h.Expired() {
		t.Error("handler should not be expired right after starting")
	}
}

func TestPiecePhaseFullMaterialIsMax(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	if phase := piecePhase(b); phase != 24 {
		t.Errorf("expected full-material phase 24, got %d", phase)
	}
}

func TestPiecePhaseBareKingsIsZero(t *testing.T) {
	b := board.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if phase := piecePhase(b); phase != 0 {
		t.Errorf("expected bare-kings phase 0, got %d", phase)
	}
}
