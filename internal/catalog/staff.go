package catalog

// StaffRole identifies an employee role.
type StaffRole string

const (
	RoleManager StaffRole = "MANAGER"
	RoleCleaner StaffRole = "CLEANER"
)

// StaffRoleDefinition describes a hireable role. Salary scales linearly with
// skill; effects scale per skill level.
type StaffRoleDefinition struct {
	Role          StaffRole
	Name          string
	Emoji         string
	Description   string
	BaseSalary    int // per day
	SalaryPerSkill int
	MinReputation int

	// per skill level
	FloorIncomeBoost     float64 // fractional
	GlobalRepPerDay      int
	FloorCleanlinessBoost int // per day
}

var StaffRoles = map[StaffRole]StaffRoleDefinition{
	RoleManager: {
		Role: RoleManager, Name: "Manager", Emoji: "👨‍💼",
		Description:      "Runs floor operations. Boosts shop income on the assigned floor and adds a little store-wide reputation each day.",
		BaseSalary:       75,
		SalaryPerSkill:   25,
		MinReputation:    150,
		FloorIncomeBoost: 0.02,
		GlobalRepPerDay:  1,
	},
	RoleCleaner: {
		Role: RoleCleaner, Name: "Cleaner", Emoji: "🧹",
		Description:           "Keeps the store spotless. Improves the assigned floor's cleanliness each day.",
		BaseSalary:            30,
		SalaryPerSkill:        10,
		MinReputation:         50,
		FloorCleanlinessBoost: 10,
	},
}

// StaffRoleByID looks up a staff role definition.
func StaffRoleByID(role StaffRole) (StaffRoleDefinition, bool) {
	def, ok := StaffRoles[role]
	return def, ok
}
