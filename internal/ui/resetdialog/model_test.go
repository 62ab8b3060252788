package resetdialog

import (
	"testing"

	"github.com/llehouerou/resetconfig/internal/reset"
	"github.com/llehouerou/resetconfig/internal/ui/testutil"
)

func newTestDialog(initial reset.Selection) *testutil.PopupHarness {
	m := New(initial)
	m.SetSize(80, 30)
	return testutil.NewPopupHarness(&m)
}

func model(h *testutil.PopupHarness) *Model {
	return h.Popup().(*Model)
}

func down(h *testutil.PopupHarness, n int) {
	for range n {
		h.SendDown()
	}
}

func getProceed(t *testing.T, h *testutil.PopupHarness) reset.Selection {
	t.Helper()
	a := h.LastAction()
	p, ok := a.(Proceed)
	if !ok {
		t.Fatalf("expected Proceed, got %T", a)
	}
	return p.Selection
}

func TestView_ListsEveryCategory(t *testing.T) {
	h := newTestDialog(reset.Selection{})

	for _, want := range []string{
		"Reset Configuration",
		"[ ] Directories",
		"[ ] Interface and theme",
		"[ ] Keyboard shortcuts",
		"[ ] Playback and recording",
		"[ ] Effects",
		"[ ] All of the above",
		"(•) Standard set",
		"( ) Full set",
		"[ Proceed ]",
		"[ Cancel ]",
	} {
		if msg := h.AssertViewContains(want); msg != "" {
			t.Error(msg)
		}
	}
	if line := testutil.FindLine(testutil.StripANSI(h.View()), "Directories"); line[:2] != "> " {
		t.Errorf("cursor should start on the first category, got %q", line)
	}
}

func TestToggleAndProceed(t *testing.T) {
	h := newTestDialog(reset.Selection{})

	h.SendSpace()  // Directories
	down(h, 3)     // Playback
	h.SendKey("x") // Playback
	h.SendKey("p")

	got := getProceed(t, h)
	want := reset.Selection{Directories: true, Playback: true}
	if got != want {
		t.Errorf("Selection = %+v, want %+v", got, want)
	}
	if msg := h.AssertViewContains("[x] Directories"); msg != "" {
		t.Error(msg)
	}
}

func TestToggleTwiceClears(t *testing.T) {
	h := newTestDialog(reset.Selection{})

	h.SendSpace()
	h.SendSpace()

	if !model(h).Selection().Empty() {
		t.Errorf("Selection = %+v, want empty", model(h).Selection())
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name string
		send func(h *testutil.PopupHarness)
	}{
		{"escape", func(h *testutil.PopupHarness) { h.SendEscape() }},
		{"q", func(h *testutil.PopupHarness) { h.SendKey("q") }},
		{"cancel button", func(h *testutil.PopupHarness) {
			h.SendUp() // wraps to Cancel
			h.SendEnter()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestDialog(reset.Selection{})
			h.SendSpace()

			tt.send(h)

			if _, ok := h.LastAction().(Cancel); !ok {
				t.Errorf("expected Cancel, got %T", h.LastAction())
			}
		})
	}
}

func TestProceed_EmptySelectionShowsError(t *testing.T) {
	h := newTestDialog(reset.Selection{})

	h.SendKey("p")

	if h.LastCommand() != nil {
		t.Fatal("empty selection must not emit Proceed")
	}
	if msg := h.AssertViewContains("Select at least one category"); msg != "" {
		t.Error(msg)
	}

	// Toggling something clears the error.
	h.SendSpace()
	if msg := h.AssertViewNotContains("Select at least one category"); msg != "" {
		t.Error(msg)
	}
}

func TestKeyboardScope_DisabledUntilKeyboardSelected(t *testing.T) {
	h := newTestDialog(reset.Selection{})

	// Directories .. All is 6 rows; the scope rows are skipped.
	down(h, 6)
	if model(h).cursor != rowProceed {
		t.Fatalf("cursor = %d, want Proceed", model(h).cursor)
	}

	h.SendUp()
	if model(h).cursor != rowAll {
		t.Fatalf("cursor = %d, want All", model(h).cursor)
	}
}

func TestKeyboardScope_FullSet(t *testing.T) {
	h := newTestDialog(reset.Selection{})

	down(h, 2) // Keyboard
	h.SendSpace()
	down(h, 5) // Playback, Effects, All, Standard, Full
	if model(h).cursor != rowFull {
		t.Fatalf("cursor = %d, want Full", model(h).cursor)
	}
	h.SendSpace()
	h.SendKey("p")

	got := getProceed(t, h)
	if !got.Keyboard || !got.UseFullKeys {
		t.Errorf("Selection = %+v, want keyboard with full keys", got)
	}
	if msg := h.AssertViewContains("(•) Full set"); msg != "" {
		t.Error(msg)
	}
}

func TestKeyboardScope_EnabledByAll(t *testing.T) {
	h := newTestDialog(reset.Selection{UseFullKeys: true})

	h.SendKey("a")
	if model(h).cursor != rowAll {
		t.Errorf("cursor = %d, want All after categories were disabled", model(h).cursor)
	}
	h.SendDown()
	if model(h).cursor != rowStandard {
		t.Fatalf("cursor = %d, want Standard", model(h).cursor)
	}
	h.SendSpace()
	h.SendKey("p")

	got := getProceed(t, h)
	if !got.All || got.UseFullKeys {
		t.Errorf("Selection = %+v, want all with standard keys", got)
	}
}

func TestAll_CategoryRowsLocked(t *testing.T) {
	h := newTestDialog(reset.Selection{All: true})

	// Categories are disabled, so the cursor can't land there.
	h.SendUp()
	h.SendUp()
	h.SendUp()
	h.SendUp()
	if c := model(h).cursor; c < rowAll {
		t.Errorf("cursor landed on disabled row %d", c)
	}
	if msg := h.AssertViewContains("[x] Directories"); msg != "" {
		t.Error(msg)
	}
}

func TestBusyIgnoresInput(t *testing.T) {
	h := newTestDialog(reset.Selection{Interface: true})
	model(h).SetBusy(true)

	h.SendKey("p")
	h.SendEscape()

	if h.LastCommand() != nil {
		t.Error("busy dialog should ignore keys")
	}
	if msg := h.AssertViewContains("Resetting"); msg != "" {
		t.Error(msg)
	}
}

func TestSetStatus(t *testing.T) {
	h := newTestDialog(reset.Selection{})
	model(h).SetStatus("Failed to save preferences: disk full", true)

	if msg := h.AssertViewContains("Failed to save preferences: disk full"); msg != "" {
		t.Error(msg)
	}
}
