package models

import "time"

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID           int64         `json:"teacherId" db:"teacher_id" example:"1"`
	EmployeeCode string        `json:"employeeCode" db:"employee_code" example:"EMP2024001"`
	HireDate     *time.Time    `json:"hireDate,omitempty" db:"hire_date"`
	Status       TeacherStatus `json:"status" db:"status" example:"active" enums:"active,inactive,suspended"`
	UserID       int64         `json:"userId" db:"user_id" example:"1"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}
