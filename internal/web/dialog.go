package web

import (
	"net/url"

	"github.com/erazemk/ecoshare/internal/model"
)

// DialogState is the open/closed state of the add-item dialog.
type DialogState bool

// Dialog states.
const (
	DialogClosed DialogState = false
	DialogOpen   DialogState = true
)

// DialogEvent is a gesture that affects the add-item dialog.
type DialogEvent int

// Dialog events.
const (
	EventOpen DialogEvent = iota
	EventClose
	EventCancel
	EventBackdrop
	EventSubmitted
)

// Next returns the dialog state after e.
func (s DialogState) Next(e DialogEvent) DialogState {
	switch e {
	case EventOpen:
		return DialogOpen
	case EventClose, EventCancel, EventBackdrop, EventSubmitted:
		return DialogClosed
	default:
		return s
	}
}

// dialogParam is the query parameter that holds the dialog open.
const (
	dialogParam = "dialog"
	dialogAdd   = "add"
	filterParam = "filter"
)

func dialogFromQuery(q url.Values) DialogState {
	return DialogState(q.Get(dialogParam) == dialogAdd)
}

func filterFromValue(v string) string {
	if v == "" {
		return model.FilterAll
	}
	return v
}

// boardURL is the page address for a filter and dialog state.
func boardURL(filter string, dialog DialogState) string {
	q := url.Values{}
	if filter != "" && filter != model.FilterAll {
		q.Set(filterParam, filter)
	}
	if dialog == DialogOpen {
		q.Set(dialogParam, dialogAdd)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
