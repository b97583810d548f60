package domain

// EventType classifies a calendar event for display.
type EventType string

const (
	EventStudy  EventType = "study"
	EventFun    EventType = "fun"
	EventSport  EventType = "sport"
	EventTravel EventType = "travel"
	EventOther  EventType = "other"
)

// EventTypes lists the accepted event types in display order.
var EventTypes = []EventType{EventStudy, EventFun, EventSport, EventTravel, EventOther}

// ValidEventTypes is the canonical set of accepted event type strings.
var ValidEventTypes = map[string]bool{
	"study": true, "fun": true, "sport": true, "travel": true, "other": true,
}

var eventTypeLabels = map[EventType]string{
	EventStudy:  "📚 学习 (Study)",
	EventFun:    "🎮 娱乐 (Fun)",
	EventSport:  "⚽️ 运动 (Sport)",
	EventTravel: "✈️ 出行 (Travel)",
	EventOther:  "✨ 其他 (Other)",
}

// Label returns the user-facing label for the type. Unknown types use the
// label of EventOther.
func (t EventType) Label() string {
	if l, ok := eventTypeLabels[t]; ok {
		return l
	}
	return eventTypeLabels[EventOther]
}

// NormalizeEventType maps an arbitrary string onto a known type, falling back
// to EventOther.
func NormalizeEventType(s string) EventType {
	if ValidEventTypes[s] {
		return EventType(s)
	}
	return EventOther
}

// RepeatMode selects how a creation request expands into occurrences.
type RepeatMode string

const (
	RepeatSingle RepeatMode = "single"
	RepeatRange  RepeatMode = "range"
	RepeatDaily  RepeatMode = "daily"
	RepeatWeekly RepeatMode = "weekly"
	RepeatCustom RepeatMode = "custom"
)

// RepeatModes lists the accepted repeat modes in display order.
var RepeatModes = []RepeatMode{RepeatSingle, RepeatRange, RepeatDaily, RepeatWeekly, RepeatCustom}

var repeatModeLabels = map[RepeatMode]string{
	RepeatSingle: "单次",
	RepeatRange:  "连续",
	RepeatDaily:  "每天",
	RepeatWeekly: "每周",
	RepeatCustom: "自定义",
}

// Label returns the user-facing label for the mode.
func (m RepeatMode) Label() string {
	return repeatModeLabels[m]
}

// Valid reports whether m is one of the known repeat modes.
func (m RepeatMode) Valid() bool {
	_, ok := repeatModeLabels[m]
	return ok
}
