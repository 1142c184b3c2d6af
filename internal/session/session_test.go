package session_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"todo/internal/filter"
	"todo/internal/session"
	"todo/internal/task"
	"todo/internal/testutil"
)

func TestSession_AddToggleDeleteScenario(t *testing.T) {
	sess := session.New(session.WithStore(task.NewStore(task.WithIDFunc(testutil.SequentialIDs("todo-")))))

	if sess.Filter() != filter.All {
		t.Fatalf("expected default filter All, got %v", sess.Filter())
	}

	added := sess.Add("buy milk")
	if added.Name != "buy milk" || added.Completed {
		t.Fatalf("unexpected task: %+v", added)
	}
	if got := sess.Remaining(); got != 1 {
		t.Errorf("expected 1 remaining, got %d", got)
	}

	if !sess.Toggle(added.ID) {
		t.Fatal("expected toggle to find task")
	}
	if active, _ := sess.VisibleWith(filter.Active); len(active) != 0 {
		t.Errorf("expected no active tasks, got %+v", active)
	}
	if completed, _ := sess.VisibleWith(filter.Completed); len(completed) != 1 {
		t.Errorf("expected 1 completed task, got %+v", completed)
	}

	if !sess.Delete(added.ID) {
		t.Fatal("expected delete to find task")
	}
	for _, n := range filter.Names() {
		if got, _ := sess.VisibleWith(n); len(got) != 0 {
			t.Errorf("%s: expected empty, got %+v", n, got)
		}
	}
	if got := sess.Remaining(); got != 0 {
		t.Errorf("expected 0 remaining, got %d", got)
	}
}

func TestSession_UnknownIDReportsNotFound(t *testing.T) {
	sess := testutil.NewSession("a")

	if sess.Toggle("todo-9") {
		t.Error("expected toggle to report not found")
	}
	if sess.Edit("todo-9", "x") {
		t.Error("expected edit to report not found")
	}
	if sess.Delete("todo-9") {
		t.Error("expected delete to report not found")
	}
	if len(sess.Tasks()) != 1 {
		t.Errorf("expected collection unchanged, got %+v", sess.Tasks())
	}
}

func TestSession_SetFilter(t *testing.T) {
	sess := testutil.NewSession("a", "b")
	sess.Toggle("todo-1")

	if err := sess.SetFilter(filter.Active); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	visible := sess.Visible()
	if len(visible) != 1 || visible[0].ID != "todo-2" {
		t.Errorf("expected only todo-2 visible, got %+v", visible)
	}

	err := sess.SetFilter("Later")
	if !errors.Is(err, filter.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if sess.Filter() != filter.Active {
		t.Errorf("expected selection kept at Active, got %v", sess.Filter())
	}
}

func TestSession_RemainingFollowsActiveFilter(t *testing.T) {
	sess := testutil.NewSession("a", "b", "c")
	sess.Toggle("todo-3")

	want := map[filter.Name]int{
		filter.All:       3,
		filter.Active:    2,
		filter.Completed: 1,
	}
	for n, count := range want {
		if err := sess.SetFilter(n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := sess.Remaining(); got != count {
			t.Errorf("%s: expected %d remaining, got %d", n, count, got)
		}
	}
}

func TestSession_HeadingFocus(t *testing.T) {
	sess := testutil.NewSession("a", "b", "c")

	if sess.HeadingFocus() {
		t.Error("expected no focus before any change")
	}

	sess.Add("d")
	if sess.HeadingFocus() {
		t.Error("expected no focus after add")
	}

	sess.Toggle("todo-1")
	sess.Edit("todo-2", "x")
	if sess.HeadingFocus() {
		t.Error("expected no focus after toggle/edit")
	}

	sess.Delete("todo-1")
	if !sess.HeadingFocus() {
		t.Error("expected focus after delete")
	}
	if sess.HeadingFocus() {
		t.Error("expected focus to fire once")
	}

	// Two deletes between checks is a drop of two, not one.
	sess.Delete("todo-2")
	sess.Delete("todo-3")
	if sess.HeadingFocus() {
		t.Error("expected no focus when length dropped by two")
	}

	sess.Delete("todo-missing")
	if sess.HeadingFocus() {
		t.Error("expected no focus after no-op delete")
	}
}

func TestSession_End(t *testing.T) {
	sess := testutil.NewSession()
	if sess.Ended() {
		t.Fatal("expected new session not ended")
	}
	sess.End()
	if !sess.Ended() {
		t.Error("expected session ended")
	}
}

func TestSession_LogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	sess := session.New(
		session.WithStore(testutil.NewStore()),
		session.WithLogger(logger),
	)
	sess.Add("a")
	sess.Delete("todo-1")

	logs := buf.String()
	for _, want := range []string{"task added", "task deleted", "id=todo-1"} {
		if !strings.Contains(logs, want) {
			t.Errorf("expected logs to contain %q, got:\n%s", want, logs)
		}
	}
}
