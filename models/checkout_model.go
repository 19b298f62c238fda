package models

// Outcomes of the individual checkout steps. The workflow reports every
// step's result separately instead of a single aggregate status.

type UpdateOutcome struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
	UpsertedCount int64 `json:"upserted_count"`
}

type InsertOutcome struct {
	InsertedID string `json:"inserted_id"`
}

type DeleteOutcome struct {
	DeletedCount int64 `json:"deleted_count"`
}

type CheckoutResult struct {
	UpdatedResult  UpdateOutcome `json:"updated_result"`
	EnrolledResult InsertOutcome `json:"enrolled_result"`
	DeletedResult  DeleteOutcome `json:"deleted_result"`
	PaymentResult  InsertOutcome `json:"payment_result"`
}
