package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	EmployeeCreated       = "employee_created"
	EmployeeUpdated       = "employee_updated"
	EmployeeTerminated    = "employee_terminated"
	FinancialInfoAppended = "financial_info_appended"
)

type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	Fields     []string  `json:"fields,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type FinancialInfoAppendedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	RecordID      string    `json:"record_id"`
	CurrencyCode  string    `json:"currency_code"`
	EffectiveFrom string    `json:"effective_from"`
	OccurredAt    time.Time `json:"occurred_at"`
}
