package graph

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const cursorPrefix = "arrayconnection:"

// maxCursorOffset bounds decoded offsets so window arithmetic cannot overflow.
const maxCursorOffset = math.MaxInt32

var errInvalidGlobalID = errors.New("invalid global id")

// ToGlobalID encodes a type name and database id into an opaque node id.
func ToGlobalID(typ string, id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(typ + ":" + strconv.FormatInt(id, 10)))
}

// FromGlobalID reverses ToGlobalID. Ids outside the SERIAL range are rejected.
func FromGlobalID(globalID string) (string, int64, error) {
	raw, err := base64.StdEncoding.DecodeString(globalID)
	if err != nil {
		return "", 0, errInvalidGlobalID
	}
	typ, id, found := strings.Cut(string(raw), ":")
	if !found || typ == "" {
		return "", 0, errInvalidGlobalID
	}
	n, err := strconv.ParseInt(id, 10, 32)
	if err != nil {
		return "", 0, errInvalidGlobalID
	}
	return typ, n, nil
}

func offsetToCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// cursorToOffset returns def when the cursor is empty, malformed or out of range.
func cursorToOffset(cursor string, def int) int {
	if cursor == "" {
		return def
	}
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return def
	}
	s, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return def
	}
	offset, err := strconv.Atoi(s)
	if err != nil || offset < 0 || offset > maxCursorOffset {
		return def
	}
	return offset
}

// connectionArgs are the first/after/last/before pagination arguments.
// A negative first or last means the argument was not given.
type connectionArgs struct {
	first, last   int
	after, before string
}

func parseConnectionArgs(args map[string]interface{}) (connectionArgs, error) {
	a := connectionArgs{first: -1, last: -1}
	if v, ok := args["first"].(int); ok {
		if v < 0 {
			return a, badInput("first must be non-negative")
		}
		a.first = v
	}
	if v, ok := args["last"].(int); ok {
		if v < 0 {
			return a, badInput("last must be non-negative")
		}
		a.last = v
	}
	a.after, _ = args["after"].(string)
	a.before, _ = args["before"].(string)
	return a, nil
}

// window is the [start, end) slice of a list selected by connectionArgs.
type window struct {
	start, end           int
	hasPrevious, hasNext bool
}

func (a connectionArgs) window(total int) window {
	beforeOffset := cursorToOffset(a.before, total)
	afterOffset := cursorToOffset(a.after, -1)

	start := max(afterOffset, -1) + 1
	end := min(beforeOffset, total)
	if a.first >= 0 {
		end = min(end, start+a.first)
	}
	if a.last >= 0 {
		start = max(start, end-a.last)
	}
	if end < start {
		end = start
	}

	lower := 0
	if a.after != "" {
		lower = afterOffset + 1
	}
	upper := total
	if a.before != "" {
		upper = beforeOffset
	}

	return window{
		start:       start,
		end:         end,
		hasPrevious: a.last >= 0 && start > lower,
		hasNext:     a.first >= 0 && end < upper,
	}
}

func newConnection(nodes []interface{}, w window, total int) map[string]interface{} {
	edges := make([]interface{}, 0, len(nodes))
	var startCursor, endCursor interface{}
	for i, n := range nodes {
		cursor := offsetToCursor(w.start + i)
		if i == 0 {
			startCursor = cursor
		}
		endCursor = cursor
		edges = append(edges, map[string]interface{}{"node": n, "cursor": cursor})
	}

	return map[string]interface{}{
		"edges": edges,
		"pageInfo": map[string]interface{}{
			"hasNextPage":     w.hasNext,
			"hasPreviousPage": w.hasPrevious,
			"startCursor":     startCursor,
			"endCursor":       endCursor,
		},
		"totalCount": total,
	}
}

// parseNoteID accepts a numeric id or a Note global id. Ids that parse but
// fall outside the SERIAL range cannot exist and are reported as not found.
func parseNoteID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		var typ string
		typ, id, err = FromGlobalID(raw)
		if err != nil || typ != noteTypeName {
			return 0, badInput(fmt.Sprintf("invalid note id %q", raw))
		}
	}
	if id < 1 || id > math.MaxInt32 {
		return 0, &Error{Code: CodeNotFound, Message: "not found"}
	}
	return id, nil
}
