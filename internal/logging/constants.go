package logging

// Standardized field names for structured logging. These constants keep the
// application's log output consistent and easy to filter.
const (
	FieldAccount       = "account"
	FieldCategory      = "category"
	FieldCount         = "count"
	FieldFile          = "file_path"
	FieldRule          = "rule"
	FieldTransactionID = "transaction_id"
	FieldTransferTo    = "transfer_to"
)
