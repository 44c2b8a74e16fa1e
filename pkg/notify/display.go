package notify

import "fmt"

// OrdinalDisplay renders a positive count as "1st", "2nd", "3rd", "11th" etc.
func OrdinalDisplay(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

var leaveTypeDisplay = map[string]string{
	"casual":    "Casual Leave",
	"sick":      "Sick Leave",
	"earned":    "Earned Leave",
	"maternity": "Maternity Leave",
	"paternity": "Paternity Leave",
	"unpaid":    "Leave Without Pay",
}

var leaveStatusDisplay = map[string]string{
	"pending":   "Pending",
	"approved":  "Approved",
	"rejected":  "Rejected",
	"cancelled": "Cancelled",
}

var grievanceStatusDisplay = map[string]string{
	"open":      "Open",
	"escalated": "Escalated",
	"resolved":  "Resolved",
	"closed":    "Closed",
}

var resignationStatusDisplay = map[string]string{
	"applied":  "Applied",
	"approved": "Approved",
	"rejected": "Rejected",
	"settled":  "Settled",
}

// LeaveTypeDisplay maps a stored leave type code to its template-facing
// label, falling back to the raw code for unknown values.
func LeaveTypeDisplay(code string) string {
	if d, ok := leaveTypeDisplay[code]; ok {
		return d
	}
	return code
}

func LeaveStatusDisplay(code string) string {
	if d, ok := leaveStatusDisplay[code]; ok {
		return d
	}
	return code
}

func GrievanceStatusDisplay(code string) string {
	if d, ok := grievanceStatusDisplay[code]; ok {
		return d
	}
	return code
}

func ResignationStatusDisplay(code string) string {
	if d, ok := resignationStatusDisplay[code]; ok {
		return d
	}
	return code
}

// GrantedDisplay renders a clearance flag the way exit templates expect it.
func GrantedDisplay(granted bool) string {
	if granted {
		return "Granted"
	}
	return "Not Granted"
}

// SettledDisplay renders a full-and-final settlement flag.
func SettledDisplay(settled bool) string {
	if settled {
		return "Settled"
	}
	return "Pending"
}
