package domain

// FieldType is the JSON shape a field must have.
type FieldType string

const (
	TypeAny     FieldType = ""
	TypeString  FieldType = "string"
	TypeBoolean FieldType = "boolean"
	TypeInteger FieldType = "integer"
	TypeObject  FieldType = "object"
	TypeArray   FieldType = "array"
)

// Rule declares the constraints for one field. Fields that are not Required
// are nullable: they may be absent or an explicit null.
type Rule struct {
	Required bool
	Type     FieldType
	Enum     []string
	// Format is a validator tag applied to string values ("email", "len=2").
	Format string
}

// Rules maps a field name to its rule. Nested object members use dotted
// keys ("contact.company"); the parent must be declared as TypeObject.
type Rules map[string]Rule

// SyncState describes whether a resource's remote counterpart is confirmed.
type SyncState string

const (
	StateLocalOnly SyncState = "local_only"
	StateSynced    SyncState = "synced"
)
