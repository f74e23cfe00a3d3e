package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPickerFocused     EventType = "PickerFocused"
	EventPickerBlurred     EventType = "PickerBlurred"
	EventExpirationChanged EventType = "ExpirationChanged"
	EventExpirationLoaded  EventType = "ExpirationLoaded"
	EventExpirationSaved   EventType = "ExpirationSaved"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PickerFocusedEvent is emitted when a trigger opens the picker modal
type PickerFocusedEvent struct {
	PickerID string
	Field    Field
}

func (e PickerFocusedEvent) Type() EventType { return EventPickerFocused }

// PickerBlurredEvent is emitted when the picker modal is dismissed by any path
type PickerBlurredEvent struct {
	PickerID string
	Field    Field
}

func (e PickerBlurredEvent) Type() EventType { return EventPickerBlurred }

// ExpirationChangedEvent is emitted by the store on every set
type ExpirationChangedEvent struct {
	Field    Field
	Value    string
	Previous string
	Current  Expiration
}

func (e ExpirationChangedEvent) Type() EventType { return EventExpirationChanged }

// ExpirationLoadedEvent is emitted when the state file has been read
type ExpirationLoadedEvent struct {
	Path       string
	Expiration Expiration
}

func (e ExpirationLoadedEvent) Type() EventType { return EventExpirationLoaded }

// ExpirationSavedEvent is emitted after the state file has been written
type ExpirationSavedEvent struct {
	Path       string
	Expiration Expiration
}

func (e ExpirationSavedEvent) Type() EventType { return EventExpirationSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
