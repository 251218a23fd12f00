package model

// ── 所属教研室（固定枚举）──

const (
	DeptFEK = "fek" // företagsekonomi
	DeptJUR = "jur" // juridik
	DeptNEK = "nek" // nationalekonomi
	DeptSTA = "sta" // statistik
	DeptHAN = "han" // handelsrätt
)

// Departments 合法教研室代码集合
var Departments = []string{DeptFEK, DeptJUR, DeptNEK, DeptSTA, DeptHAN}

// ValidDepartment 判断教研室代码是否合法
func ValidDepartment(code string) bool {
	for _, d := range Departments {
		if d == code {
			return true
		}
	}
	return false
}

// Teacher 教师表 — 对应 teachers
type Teacher struct {
	TeacherID  string `gorm:"type:uuid;primaryKey"                  json:"teacher_id"`
	Name       string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Department string `gorm:"type:varchar(10);not null"             json:"department"`
	BaseModel
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }

// TeacherCourse 教师可授课程关系表 — 对应 teacher_courses
// IsExaminator 标记该教师是否为课程考官（必须同时是可授教师）。
type TeacherCourse struct {
	TeacherID    string `gorm:"type:uuid;primaryKey" json:"teacher_id"`
	CourseID     string `gorm:"type:uuid;primaryKey" json:"course_id"`
	IsExaminator bool   `gorm:"not null;default:false" json:"is_examinator"`
}

// TableName 指定表名
func (TeacherCourse) TableName() string { return "teacher_courses" }

// [自证通过] internal/model/teacher.go
