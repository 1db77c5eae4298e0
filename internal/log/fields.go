package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldClientIP      = "client_ip"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldQuery         = "query"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldDurationHuman = "duration_human"
	FieldUserAgent     = "user_agent"
	FieldSuccess       = "success"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldYear          = "year"
	FieldMonth         = "month"
	FieldEntity        = "entity"
	FieldRecordID      = "record_id"
	FieldKind          = "kind"
	FieldAmountCents   = "amount_cents"
	FieldCategory      = "category"
	FieldRoomName      = "room_name"
	FieldSlotCount     = "slot_count"
	FieldPatients      = "patients"
	FieldCommissionBp  = "commission_bp"
)

// Components defines standard component names
const (
	ComponentApp          = "app"
	ComponentHTTP         = "http"
	ComponentTransaction  = "transaction"
	ComponentProfessional = "professional"
	ComponentRoom         = "room"
	ComponentStore        = "store"
	ComponentAMQP         = "amqp"
	ComponentWorker       = "worker"
	ComponentJournal      = "journal"
	ComponentCache        = "cache"
	ComponentRateLimit    = "rate_limit"
	ComponentTrace        = "trace"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpValidate = "validate"
	OpParse    = "parse"
	OpSeed     = "seed"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithRecord adds entity/record identification fields
func (f LogFields) WithRecord(entity, recordID string) LogFields {
	f[FieldEntity] = entity
	f[FieldRecordID] = recordID
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
