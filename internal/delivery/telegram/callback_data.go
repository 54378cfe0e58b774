package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback payload prefixes. Kept in the "name:arg" form the panel buttons
// have always used so old messages keep working.
const (
	cbViewUsers    = "view_users"
	cbPrevPage     = "prev_page"
	cbNextPage     = "next_page"
	cbToggleFilter = "toggle_filter"
	cbUserDetails  = "user_details"
	cbExportAll    = "export_all"
)

var (
	errUnknownCallback   = errors.New("unknown callback")
	errMalformedCallback = errors.New("malformed callback")
)

// callbackAction is a decoded admin panel button press.
type callbackAction interface {
	callbackData() string
}

type viewUsersAction struct{}

type pageDirection int

const (
	pagePrev pageDirection = iota
	pageNext
)

type pageAction struct {
	Page      int
	Direction pageDirection
}

type toggleFilterAction struct{}

type userDetailsAction struct {
	UserID int64
}

type exportAllAction struct{}

func (viewUsersAction) callbackData() string    { return cbViewUsers }
func (toggleFilterAction) callbackData() string { return cbToggleFilter }
func (exportAllAction) callbackData() string    { return cbExportAll }

func (a pageAction) callbackData() string {
	prefix := cbNextPage
	if a.Direction == pagePrev {
		prefix = cbPrevPage
	}
	return prefix + ":" + strconv.Itoa(a.Page)
}

func (a userDetailsAction) callbackData() string {
	return cbUserDetails + ":" + strconv.FormatInt(a.UserID, 10)
}

// callbackError carries which action failed to decode so the handler can
// pick the right notice.
type callbackError struct {
	kind string
	data string
	err  error
}

func (e *callbackError) Error() string {
	return fmt.Sprintf("%s callback %q: %v", e.kind, e.data, e.err)
}

func (e *callbackError) Unwrap() error { return e.err }

// decodeCallback parses raw callback data once at the boundary.
func decodeCallback(data string) (callbackAction, error) {
	data = strings.TrimSpace(data)
	name, arg, hasArg := strings.Cut(data, ":")

	switch name {
	case cbViewUsers:
		return viewUsersAction{}, nil
	case cbToggleFilter:
		return toggleFilterAction{}, nil
	case cbExportAll:
		return exportAllAction{}, nil
	case cbPrevPage, cbNextPage:
		page, err := strconv.Atoi(strings.TrimSpace(arg))
		if !hasArg || err != nil {
			return nil, &callbackError{kind: name, data: data, err: errMalformedCallback}
		}
		dir := pageNext
		if name == cbPrevPage {
			dir = pagePrev
		}
		return pageAction{Page: page, Direction: dir}, nil
	case cbUserDetails:
		id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if !hasArg || err != nil {
			return nil, &callbackError{kind: name, data: data, err: errMalformedCallback}
		}
		return userDetailsAction{UserID: id}, nil
	default:
		return nil, &callbackError{kind: "unknown", data: data, err: errUnknownCallback}
	}
}
