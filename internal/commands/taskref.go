package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"todo/internal/session"
	"todo/internal/task"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num int    // 1-based position in the visible list, 0 if ID is set
	ID  string // task ID given verbatim
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ErrOutOfRange indicates a position outside the visible list.
var ErrOutOfRange = errors.New("task number out of range")

// ParseTaskRef parses a task reference from the first arg.
//
// Parsing rules:
// 1. All digits → position in the visible list (e.g. 3)
// 2. Starts with the task ID prefix → task ID (e.g. todo-0f3a...)
// 3. Otherwise → error: invalid task reference: <ref>
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}

	ref := args[0]
	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", ref)
		}
		return TaskRef{Num: num}, nil
	}

	if strings.HasPrefix(ref, task.IDPrefix) && len(ref) > len(task.IDPrefix) {
		return TaskRef{ID: ref}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", ref)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// resolveTaskID maps a reference to a task ID.
// Positions are looked up in the visible list under the active filter.
// IDs are returned as given; an unknown ID is left for the store to ignore.
func resolveTaskID(sess *session.Session, ref TaskRef) (string, error) {
	if ref.ID != "" {
		return ref.ID, nil
	}

	visible := sess.Visible()
	if ref.Num < 1 || ref.Num > len(visible) {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, ref.Num)
	}
	return visible[ref.Num-1].ID, nil
}

// resolveRefArg parses args[0] as a task reference and resolves it,
// reporting failures on errOut. ok is false if the command should stop
// with exitcode.UserError.
func resolveRefArg(sess *session.Session, args []string, errOut io.Writer) (id string, ok bool) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return "", false
	}

	id, err = resolveTaskID(sess, ref)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return "", false
	}
	return id, true
}
