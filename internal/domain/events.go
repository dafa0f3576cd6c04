package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSchemaLoaded  EventType = "SchemaLoaded"
	EventSchemaError   EventType = "SchemaError"
	EventSchemaChanged EventType = "SchemaChanged"
	EventIndexBuilt    EventType = "IndexBuilt"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SchemaLoadedEvent is emitted when a schema file has been parsed
// successfully. Schema carries the parsed *schema.Schema, typed as
// interface{} to keep the event layer free of upward dependencies.
type SchemaLoadedEvent struct {
	Path   string
	Schema interface{}
}

func (e SchemaLoadedEvent) Type() EventType { return EventSchemaLoaded }

// SchemaErrorEvent is emitted when reading or parsing a schema fails
type SchemaErrorEvent struct {
	Path string
	Err  error
}

func (e SchemaErrorEvent) Type() EventType { return EventSchemaError }

// SchemaChangedEvent is emitted when the watched schema file changes
// on disk, before the reload is attempted
type SchemaChangedEvent struct {
	Path string
}

func (e SchemaChangedEvent) Type() EventType { return EventSchemaChanged }

// IndexBuiltEvent is emitted after the search index has been rebuilt
type IndexBuiltEvent struct {
	Records int
}

func (e IndexBuiltEvent) Type() EventType { return EventIndexBuilt }

// ConfigLoadedEvent is emitted when configuration has been loaded
type ConfigLoadedEvent struct {
	SchemaPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration has been saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
