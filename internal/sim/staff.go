package sim

import (
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/mkweon/grandmall/internal/catalog"
)

// HireStaff moves an applicant onto the payroll. Fails when the payroll is
// full or the applicant id is not in the pool.
func (st *State) HireStaff(applicantID string, automated bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.hireStaff(applicantID, automated)
}

func (st *State) hireStaff(applicantID string, automated bool) bool {
	if len(st.Staff) >= st.MaxStaffSlots {
		if !automated {
			st.addLog("error", "Staff limit reached. Research more slots to keep hiring.")
		}
		return false
	}
	idx := -1
	for i, a := range st.Applicants {
		if a.ID == applicantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		if !automated {
			st.addLog("error", "Unknown applicant.")
		}
		return false
	}

	hired := st.Applicants[idx]
	st.Applicants = append(st.Applicants[:idx], st.Applicants[idx+1:]...)
	st.Staff = append(st.Staff, hired)

	role := catalog.StaffRoles[hired.Role]
	if automated {
		st.addAutoLog("Hired %s %s (%s). Daily salary: %sG", role.Emoji, hired.Name, role.Name, humanize.Comma(int64(hired.SalaryPerDay)))
	} else {
		st.addLog("success", "Hired %s %s (%s)! Daily salary: %sG", role.Emoji, hired.Name, role.Name, humanize.Comma(int64(hired.SalaryPerDay)))
	}
	return true
}

// FireStaff removes an employee from the payroll. No refund, no notice.
func (st *State) FireStaff(staffID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i, s := range st.Staff {
		if s.ID == staffID {
			role := catalog.StaffRoles[s.Role]
			st.Staff = append(st.Staff[:i], st.Staff[i+1:]...)
			st.addLog("info", "Let %s %s go.", role.Emoji, s.Name)
			return true
		}
	}
	return false
}

// AssignStaff moves a staff member to a floor, or clears the assignment
// when floorID is empty. Reassignment is unrestricted and immediate.
func (st *State) AssignStaff(staffID, floorID string, automated bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.assignStaff(staffID, floorID, automated)
}

func (st *State) assignStaff(staffID, floorID string, automated bool) bool {
	s := st.staffByID(staffID)
	if s == nil {
		if !automated {
			st.addLog("error", "Unknown staff member.")
		}
		return false
	}
	if floorID != "" && st.floorByID(floorID) == nil {
		if !automated {
			st.addLog("error", "Unknown floor.")
		}
		return false
	}
	if s.AssignedFloor != floorID {
		role := catalog.StaffRoles[s.Role]
		where := "off duty"
		if f := st.floorByID(floorID); f != nil {
			where = "to floor " + humanize.Ordinal(f.Number)
		}
		if automated {
			st.addAutoLog("Assigned %s %s %s.", role.Emoji, s.Name, where)
		} else {
			st.addLog("info", "Assigned %s %s %s.", role.Emoji, s.Name, where)
		}
	}
	s.AssignedFloor = floorID
	return true
}

// settleSalaries deducts the payroll at the day boundary. A shortfall
// clamps gold to zero with a warning; nobody gets fired over it.
func (st *State) settleSalaries() {
	total := 0
	for _, s := range st.Staff {
		total += s.SalaryPerDay
	}
	if total == 0 {
		return
	}
	st.Gold -= total
	if st.Gold < 0 {
		st.addLog("error", "Out of gold! Could not cover %sG in staff salaries.", humanize.Comma(int64(total)))
		st.Gold = 0
	}
}

// applyDailyCleanliness decays every floor, then applies each assigned
// cleaner's boost, clamping to [0,100].
func (st *State) applyDailyCleanliness() {
	cleanerDef := catalog.StaffRoles[catalog.RoleCleaner]
	for _, f := range st.Floors {
		c := f.Cleanliness - catalog.CleanlinessDecayPerDay
		if c < 0 {
			c = 0
		}
		for _, s := range st.Staff {
			if s.Role == catalog.RoleCleaner && s.AssignedFloor == f.ID {
				c += float64(cleanerDef.FloorCleanlinessBoost * s.Skill)
			}
		}
		f.Cleanliness = clampFloat(c, 0, 100)
	}
}

// applyManagerReputation adds the daily reputation trickle from every
// assigned manager.
func (st *State) applyManagerReputation() {
	mgrDef := catalog.StaffRoles[catalog.RoleManager]
	total := 0
	for _, s := range st.Staff {
		if s.Role == catalog.RoleManager && s.AssignedFloor != "" {
			total += mgrDef.GlobalRepPerDay * s.Skill
		}
	}
	if total > 0 {
		st.Reputation += total
		st.addLog("success", "Gained +%d reputation from your managers!", total)
	}
}

// generateApplicants probabilistically adds one or two applicants to the
// pool once per day. Only roles whose reputation gate the player already
// meets are generated.
func (st *State) generateApplicants() {
	if st.rng.Float64() >= catalog.ApplicantChancePerDay || len(st.Applicants) >= catalog.MaxApplicants {
		return
	}
	count := 2
	if st.rng.Float64() < 0.7 {
		count = 1
	}

	var roles []catalog.StaffRole
	for _, role := range []catalog.StaffRole{catalog.RoleManager, catalog.RoleCleaner} {
		if st.Reputation >= catalog.StaffRoles[role].MinReputation {
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		return
	}

	added := 0
	for i := 0; i < count && len(st.Applicants) < catalog.MaxApplicants; i++ {
		role := roles[st.rng.Intn(len(roles))]
		def := catalog.StaffRoles[role]
		skill := st.rng.Intn(3) + 1
		st.Applicants = append(st.Applicants, &StaffMember{
			ID:           uuid.NewString(),
			Name:         st.pickApplicantName(),
			Role:         role,
			Skill:        skill,
			SalaryPerDay: def.BaseSalary + (skill-1)*def.SalaryPerSkill,
		})
		added++
	}
	if added > 0 {
		st.addLog("info", "%d new job applicant(s) arrived.", added)
	}
}

// pickApplicantName draws from the name pool, retrying on collision with
// current staff and applicants, eventually suffixing.
func (st *State) pickApplicantName() string {
	taken := map[string]bool{}
	for _, s := range st.Staff {
		taken[s.Name] = true
	}
	for _, a := range st.Applicants {
		taken[a.Name] = true
	}
	name := catalog.StaffNames[st.rng.Intn(len(catalog.StaffNames))]
	for attempt := 0; taken[name] && attempt < len(catalog.StaffNames)*2; attempt++ {
		name = catalog.StaffNames[st.rng.Intn(len(catalog.StaffNames))]
		if attempt > len(catalog.StaffNames) {
			name += " Jr."
		}
	}
	return name
}
