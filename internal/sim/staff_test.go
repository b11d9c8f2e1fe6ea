package sim

import (
	"strings"
	"testing"

	"github.com/mkweon/grandmall/internal/catalog"
)

func applicant(id string, role catalog.StaffRole, skill int) *StaffMember {
	def := catalog.StaffRoles[role]
	return &StaffMember{
		ID:           id,
		Name:         "Test " + id,
		Role:         role,
		Skill:        skill,
		SalaryPerDay: def.BaseSalary + (skill-1)*def.SalaryPerSkill,
	}
}

func TestHireStaffMovesApplicantToPayroll(t *testing.T) {
	st := newTestState(t)
	st.Applicants = append(st.Applicants, applicant("a1", catalog.RoleCleaner, 2))

	if !st.HireStaff("a1", false) {
		t.Fatal("hire rejected")
	}
	if len(st.Applicants) != 0 || len(st.Staff) != 1 {
		t.Fatalf("applicants=%d staff=%d", len(st.Applicants), len(st.Staff))
	}
	if st.HireStaff("a1", false) {
		t.Error("hired the same applicant twice")
	}
}

func TestHireStaffHonorsCap(t *testing.T) {
	st := newTestState(t)
	for i := 0; i < st.MaxStaffSlots; i++ {
		st.Staff = append(st.Staff, applicant(string(rune('a'+i)), catalog.RoleCleaner, 1))
	}
	st.Applicants = append(st.Applicants, applicant("extra", catalog.RoleCleaner, 1))

	if st.HireStaff("extra", false) {
		t.Error("hire accepted beyond cap")
	}
	if !strings.Contains(lastLog(st), "Staff limit") {
		t.Errorf("unexpected rejection message %q", lastLog(st))
	}
}

func TestAssignStaffValidation(t *testing.T) {
	st := newTestState(t)
	st.Staff = append(st.Staff, applicant("m1", catalog.RoleManager, 1))

	if st.AssignStaff("ghost", st.Floors[0].ID, false) {
		t.Error("assigned unknown staff")
	}
	if st.AssignStaff("m1", "no-such-floor", false) {
		t.Error("assigned to unknown floor")
	}
	if !st.AssignStaff("m1", st.Floors[0].ID, false) {
		t.Fatal("valid assignment rejected")
	}
	if st.Staff[0].AssignedFloor != st.Floors[0].ID {
		t.Error("assignment not recorded")
	}
	// Empty floor id clears the assignment.
	if !st.AssignStaff("m1", "", false) {
		t.Fatal("clearing assignment rejected")
	}
	if st.Staff[0].AssignedFloor != "" {
		t.Error("assignment not cleared")
	}
}

func TestSettleSalariesClampsAtZero(t *testing.T) {
	st := newTestState(t)
	st.Staff = append(st.Staff, applicant("m1", catalog.RoleManager, 3))
	salary := st.Staff[0].SalaryPerDay
	if salary != 75+2*25 {
		t.Fatalf("salary = %d, want 125", salary)
	}

	st.Gold = 1000
	st.WithLock(func(s *State) { s.settleSalaries() })
	if st.Gold != 1000-salary {
		t.Errorf("gold = %d, want %d", st.Gold, 1000-salary)
	}

	st.Gold = 10
	st.WithLock(func(s *State) { s.settleSalaries() })
	if st.Gold != 0 {
		t.Errorf("gold = %d, want 0 after shortfall", st.Gold)
	}
}

func TestDailyCleanlinessDecayAndCleaners(t *testing.T) {
	st := newTestState(t)
	f := st.Floors[0]
	f.Cleanliness = 40

	st.WithLock(func(s *State) { s.applyDailyCleanliness() })
	if f.Cleanliness != 35 {
		t.Errorf("cleanliness = %f, want 35", f.Cleanliness)
	}

	cleaner := applicant("c1", catalog.RoleCleaner, 2)
	cleaner.AssignedFloor = f.ID
	st.Staff = append(st.Staff, cleaner)

	st.WithLock(func(s *State) { s.applyDailyCleanliness() })
	// 35 - 5 decay + 2*10 cleaner boost = 50.
	if f.Cleanliness != 50 {
		t.Errorf("cleanliness = %f, want 50", f.Cleanliness)
	}

	f.Cleanliness = 99
	st.WithLock(func(s *State) { s.applyDailyCleanliness() })
	if f.Cleanliness != 100 {
		t.Errorf("cleanliness = %f, want clamp at 100", f.Cleanliness)
	}
}

func TestManagerReputationTrickle(t *testing.T) {
	st := newTestState(t)
	mgr := applicant("m1", catalog.RoleManager, 3)
	mgr.AssignedFloor = st.Floors[0].ID
	st.Staff = append(st.Staff, mgr)
	st.Staff = append(st.Staff, applicant("m2", catalog.RoleManager, 2)) // idle, no trickle

	st.WithLock(func(s *State) { s.applyManagerReputation() })
	if st.Reputation != 3 {
		t.Errorf("reputation = %d, want 3", st.Reputation)
	}
}

func TestGenerateApplicantsFiltersRolesByReputation(t *testing.T) {
	st := newTestState(t)
	st.rng = &scriptedRand{
		floats: []float64{0.1, 0.9}, // pass daily chance, two applicants
		ints:   []int{0, 1, 0, 0, 2, 1},
	}
	st.Reputation = 60 // cleaners only; managers need 150

	st.WithLock(func(s *State) { s.generateApplicants() })
	if len(st.Applicants) != 2 {
		t.Fatalf("applicants = %d, want 2", len(st.Applicants))
	}
	for _, a := range st.Applicants {
		if a.Role != catalog.RoleCleaner {
			t.Errorf("generated %s below its reputation gate", a.Role)
		}
		def := catalog.StaffRoles[a.Role]
		if want := def.BaseSalary + (a.Skill-1)*def.SalaryPerSkill; a.SalaryPerDay != want {
			t.Errorf("salary = %d, want %d for skill %d", a.SalaryPerDay, want, a.Skill)
		}
	}
}
