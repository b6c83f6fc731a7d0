package events

import "reflect"

// Event is the interface that all deck events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// GetDeckID returns the DeckID field of an event, or "" if it has none.
func GetDeckID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	field := val.FieldByName("DeckID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
