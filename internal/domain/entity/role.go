package entity

// Role keys are allcode keys of type ROLE stored in users.role_id
const (
	RoleAdmin   = "R1"
	RoleDoctor  = "R2"
	RolePatient = "R3"
)
