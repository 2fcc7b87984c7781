package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemsLoaded      EventType = "ItemsLoaded"
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventModeChanged      EventType = "ModeChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemsLoadedEvent is emitted when a data file has been parsed into records
type ItemsLoadedEvent struct {
	Source string
	Count  int
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// SelectionChangedEvent is emitted after a click or reconciliation changed
// the membership of an item
type SelectionChangedEvent struct {
	GroupID  string
	Key      string // track-by key of the item that changed
	Selected bool
	Total    int // selected items after the change
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the whole selection is dropped
type SelectionClearedEvent struct {
	GroupID string
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// ModeChangedEvent is emitted when the selection mode is switched at runtime
type ModeChangedEvent struct {
	GroupID string
	Mode    string
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	DataFile string
	Mode     string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	ItemCount int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
