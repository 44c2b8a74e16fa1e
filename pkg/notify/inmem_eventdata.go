package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryEventDataRepository implements EventDataRepository over plain
// maps. It serves development setups without a database and the composer
// tests. Missing keys resolve to (nil, nil) like the SQL implementation.
type InMemoryEventDataRepository struct {
	mu sync.RWMutex

	Birthdays     []CelebrationData
	Anniversaries []CelebrationData
	Welcomes      map[uuid.UUID]*WelcomeData
	Resignations  map[uuid.UUID]*ResignationData
	Leaves        map[uuid.UUID]*LeaveData
	Grievances    map[string]*GrievanceData
	OwnerEmails   map[string][]string
	KPIPlans      map[uuid.UUID]*KPIData
	Policies      map[uuid.UUID]*PolicyData
	Feedback      map[uuid.UUID]*FeedbackData
	Roles         map[uuid.UUID]*RoleData
	RoleEmails    map[string][]string
}

func NewInMemoryEventDataRepository() *InMemoryEventDataRepository {
	return &InMemoryEventDataRepository{
		Welcomes:     map[uuid.UUID]*WelcomeData{},
		Resignations: map[uuid.UUID]*ResignationData{},
		Leaves:       map[uuid.UUID]*LeaveData{},
		Grievances:   map[string]*GrievanceData{},
		OwnerEmails:  map[string][]string{},
		KPIPlans:     map[uuid.UUID]*KPIData{},
		Policies:     map[uuid.UUID]*PolicyData{},
		Feedback:     map[uuid.UUID]*FeedbackData{},
		Roles:        map[uuid.UUID]*RoleData{},
		RoleEmails:   map[string][]string{},
	}
}

func (r *InMemoryEventDataRepository) GetBirthdayData(ctx context.Context) ([]CelebrationData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]CelebrationData(nil), r.Birthdays...), nil
}

func (r *InMemoryEventDataRepository) GetAnniversaryData(ctx context.Context) ([]CelebrationData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]CelebrationData(nil), r.Anniversaries...), nil
}

func (r *InMemoryEventDataRepository) GetWelcomeData(ctx context.Context, employeeID uuid.UUID) (*WelcomeData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyOf(r.Welcomes[employeeID]), nil
}

func (r *InMemoryEventDataRepository) GetResignationData(ctx context.Context, resignationID uuid.UUID) (*ResignationData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyOf(r.Resignations[resignationID]), nil
}

func (r *InMemoryEventDataRepository) GetLeaveData(ctx context.Context, leaveID uuid.UUID) (*LeaveData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyOf(r.Leaves[leaveID]), nil
}

func (r *InMemoryEventDataRepository) GetGrievanceData(ctx context.Context, ticketNo string) (*GrievanceData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyOf(r.Grievances[ticketNo]), nil
}

func (r *InMemoryEventDataRepository) GetGrievanceOwnerEmails(ctx context.Context, ticketNo string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.OwnerEmails[ticketNo]...), nil
}

func (r *InMemoryEventDataRepository) GetKPICompleteData(ctx context.Context, planID uuid.UUID) (*KPIData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyOf(r.KPIPlans[planID]), nil
}

func (r *InMemoryEventDataRepository) GetPolicyData(ctx context.Context, policyID uuid.UUID) (*PolicyData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyOf(r.Policies[policyID]), nil
}

func (r *InMemoryEventDataRepository) GetFeedbackData(ctx context.Context, feedbackID uuid.UUID) (*FeedbackData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyOf(r.Feedback[feedbackID]), nil
}

func (r *InMemoryEventDataRepository) GetRoleData(ctx context.Context, roleID uuid.UUID) (*RoleData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyOf(r.Roles[roleID]), nil
}

func (r *InMemoryEventDataRepository) GetEmailsByRole(ctx context.Context, role string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.RoleEmails[role]...), nil
}

func copyOf[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
