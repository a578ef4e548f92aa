package events

import "reflect"

// ExtractSessionID reads the SessionID field of an event, or "" when it has none
func ExtractSessionID(event Event) string {
	val := reflect.ValueOf(event)

	// If it's a pointer, get the underlying element
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() == reflect.Struct {
		sessionID := val.FieldByName("SessionID")
		if sessionID.IsValid() && sessionID.Kind() == reflect.String {
			return sessionID.String()
		}
	}

	return ""
}
