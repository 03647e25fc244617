package domain

import "time"

// Default configuration values
const (
	DefaultSlotDuration = 30 * time.Minute
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Payment provider constants
const (
	EventTransactionUpdated = "transaction.updated"
	TransactionApproved     = "APPROVED"

	// TrialPlan тип подписки с пробным периодом в один месяц
	TrialPlan = "prueba"
)

// Payment-event journal limits
const (
	DefaultPaymentEventsLimit = 50
	MaxPaymentEventsLimit     = 500
)
