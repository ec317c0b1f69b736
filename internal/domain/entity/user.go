package entity

// Roles canónicos para User. La taxonomía varió entre versiones del sistema
// (admin/owner); aquí el conjunto es fijo y "owner" se considera admin.
const (
	RoleAdmin     = "admin"
	RoleDeveloper = "developer"
	RoleEmployee  = "employee"
	RoleJefeObra  = "jefe_obra"
)

// ElevatedRoles roles con permiso de administración de usuarios.
var ElevatedRoles = []string{RoleAdmin, RoleDeveloper}

// AllRoles todos los roles reconocidos.
var AllRoles = []string{RoleAdmin, RoleDeveloper, RoleEmployee, RoleJefeObra}

// ValidRole indica si el rol pertenece al conjunto reconocido.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Email        string // único a nivel de DB
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Category     string // rol: admin, developer, employee, jefe_obra
}
