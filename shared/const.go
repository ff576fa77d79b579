package shared

const (
	UserID   = "user_id"
	UserRole = "user_role"

	OperationAddition       = "addition"
	OperationSubtraction    = "subtraction"
	OperationMultiplication = "multiplication"
	OperationDivision       = "division"

	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"

	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"

	// QuestionsPerSession is the fixed length of one practice run.
	QuestionsPerSession = 10

	// MaxOperand bounds both operands and the division quotient.
	MaxOperand = 12

	// RecentSessionsLimit bounds the recent-sessions list on dashboards.
	RecentSessionsLimit = 5
)

// Operations is the closed set of practice operations, in display order.
var Operations = []string{
	OperationAddition,
	OperationDivision,
	OperationMultiplication,
	OperationSubtraction,
}

func IsValidOperation(operation string) bool {
	for _, op := range Operations {
		if op == operation {
			return true
		}
	}
	return false
}
