package logging

const (
	// FieldComponent names the subsystem emitting the record.
	FieldComponent = "component"
	// FieldEventType is a stable dotted identifier for the event, e.g. settings.load_failed.
	FieldEventType = "event_type"
	FieldError     = "error"
	// FieldOption is the settings key involved in the event.
	FieldOption = "option"
	// FieldKind is the settings failure classification.
	FieldKind = "kind"
	FieldPath = "path"
	// FieldLoadID correlates every record emitted during one settings load pass.
	FieldLoadID = "load_id"
)
