package model

import "time"

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Error lets a Validate() method return an ErrorDetail directly.
func (e *ErrorDetail) Error() string {
	return e.Message
}

// MessageResponse wraps the human-readable responses of the deletion workflow
// and other single-message endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// User is a staff identity. Clearance is set only for officers; roles and
// clearance are mutable by an administrator, users are never deleted.
type User struct {
	ID           int64     `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"`
	Clearance    string    `bson:"clearance,omitempty" json:"clearance,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Case carries the minimum clearance an officer must hold to be assigned.
type Case struct {
	ID          int64     `bson:"_id,omitempty" json:"id"`
	CaseName    string    `bson:"case_name" json:"case_name"`
	Description string    `bson:"description" json:"description"`
	Area        string    `bson:"area" json:"area"`
	City        string    `bson:"city" json:"city"`
	Type        string    `bson:"type" json:"type"`
	Clearance   string    `bson:"clearance" json:"clearance"`
	Status      string    `bson:"status" json:"status"`
	CreatedBy   int64     `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// CaseAssignment binds one user to one case; (case_id, user_id) is unique.
type CaseAssignment struct {
	ID        int64     `bson:"_id,omitempty" json:"id"`
	CaseID    int64     `bson:"case_id" json:"case_id"`
	UserID    int64     `bson:"user_id" json:"user_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Evidence belongs to exactly one case. Deleted marks a soft delete; hard
// deletion removes the row through the deletion workflow.
type Evidence struct {
	ID        int64     `bson:"_id,omitempty" json:"id"`
	CaseID    int64     `bson:"case_id" json:"case_id"`
	Type      string    `bson:"type" json:"type"`
	Content   string    `bson:"content" json:"content"`
	Remarks   string    `bson:"remarks,omitempty" json:"remarks,omitempty"`
	Deleted   bool      `bson:"deleted" json:"deleted"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DeletionRequest tracks one in-progress hard-delete workflow per
// (evidence, user) pair. (evidence_id, user_id) is unique.
type DeletionRequest struct {
	ID         int64     `bson:"_id,omitempty" json:"id"`
	EvidenceID int64     `bson:"evidence_id" json:"evidence_id"`
	UserID     int64     `bson:"user_id" json:"user_id"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// AuditLog is append-only. EvidenceID is deliberately not a reference the
// storage layer enforces: the evidence row is gone after a hard delete.
type AuditLog struct {
	ID         int64     `bson:"_id,omitempty" json:"id"`
	EvidenceID int64     `bson:"evidence_id" json:"evidence_id"`
	UserID     int64     `bson:"user_id" json:"user_id"`
	Action     string    `bson:"action" json:"action"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// Report is a citizen crime report, optionally linked to a case later.
type Report struct {
	ID          int64     `bson:"_id,omitempty" json:"id"`
	Email       string    `bson:"email" json:"email"`
	CivilID     string    `bson:"civil_id" json:"civil_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Area        string    `bson:"area" json:"area"`
	City        string    `bson:"city" json:"city"`
	CaseID      *int64    `bson:"case_id,omitempty" json:"case_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Person is a suspect, victim or witness attached to a case.
type Person struct {
	ID        int64     `bson:"_id,omitempty" json:"id"`
	CaseID    int64     `bson:"case_id" json:"case_id"`
	Type      string    `bson:"type" json:"type"`
	Name      string    `bson:"name" json:"name"`
	Age       int       `bson:"age" json:"age"`
	Gender    string    `bson:"gender" json:"gender"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Comment is a staff note on a case.
type Comment struct {
	ID        int64     `bson:"_id,omitempty" json:"id"`
	CaseID    int64     `bson:"case_id" json:"case_id"`
	UserID    int64     `bson:"user_id" json:"user_id"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// DeletionStatusResponse is the body of the deletion-progress endpoint.
type DeletionStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
