package leave

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType string

const (
	TypeCasual    LeaveType = "casual"
	TypeSick      LeaveType = "sick"
	TypeEarned    LeaveType = "earned"
	TypeMaternity LeaveType = "maternity"
	TypePaternity LeaveType = "paternity"
	TypeUnpaid    LeaveType = "unpaid"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case TypeCasual, TypeSick, TypeEarned, TypeMaternity, TypePaternity, TypeUnpaid:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

type LeaveRequest struct {
	ID              uuid.UUID `json:"id"`
	EmployeeID      uuid.UUID `json:"employee_id"`
	LeaveType       LeaveType `json:"leave_type"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Days            int       `json:"days"`
	Reason          string    `json:"reason"`
	Status          Status    `json:"status"`
	ApproverComment string    `json:"approver_comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ApplyLeaveParams struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	LeaveType  LeaveType `json:"leave_type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
}

type ListLeavesParams struct {
	EmployeeID uuid.UUID
	Status     Status
	Limit      int32
	Offset     int32
}
