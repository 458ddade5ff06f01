package models

import "time"

// Project is owned by exactly one user.
type Project struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Project model.
func (Project) TableName() string {
	return "projects"
}

// Progress is a stage within a project. UserID duplicates the project owner
// so ownership filters do not need a join.
type Progress struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null;default:''"`
	ProjectID int64     `json:"project_id" gorm:"not null;index"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Project   *Project  `json:"-" gorm:"foreignKey:ProjectID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Progress model.
func (Progress) TableName() string {
	return "progress"
}

// Task belongs to exactly one progress entry.
type Task struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Done        bool      `json:"done" gorm:"not null;default:false"`
	ProgressID  int64     `json:"progress_id" gorm:"not null;index"`
	Progress    *Progress `json:"-" gorm:"foreignKey:ProgressID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Role{},
		&UserRole{},
		&Project{},
		&Progress{},
		&Task{},
	}
}
