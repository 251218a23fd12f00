package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ahell/henry-sub002/internal/model"
)

// ── 教师可用性解析 ──
//
// 两种粒度的记录在此统一归并：
//   期段级 busy 记录 → 整个期段不可用；
//   单日级 busy 记录 → 仅覆盖一个日历日，
//   当期段内所有授课日均被单日记录覆盖时视同期段不可用。

// slotLevelBusy 查找教师对某期段的期段级 busy 记录，返回其下标，未找到返回 -1。
func slotLevelBusy(d *model.Dataset, teacherID, slotID string) int {
	for i, a := range d.TeacherAvailability {
		if a.TeacherID == teacherID && a.Type == model.AvailabilityBusy &&
			a.SlotID != nil && *a.SlotID == slotID {
			return i
		}
	}
	return -1
}

// dayLevelBusy 查找教师对某日历日的单日级 busy 记录下标，未找到返回 -1。
func dayLevelBusy(d *model.Dataset, teacherID string, date time.Time) int {
	date = model.DateOnly(date)
	for i := range d.TeacherAvailability {
		a := &d.TeacherAvailability[i]
		if a.TeacherID == teacherID && a.Type == model.AvailabilityBusy &&
			a.IsDayLevel() && model.DateOnly(a.FromDate).Equal(date) {
			return i
		}
	}
	return -1
}

// IsTeacherUnavailable 判断教师在某日期/期段是否不可用。
// slotID 为空时按日期所属期段解析。期段级 busy 记录直接命中；
// 否则要求期段内每个授课日都有单日级 busy 记录（全覆盖）；
// 部分覆盖返回 false。
func IsTeacherUnavailable(d *model.Dataset, teacherID string, date time.Time, slotID string) bool {
	if slotID == "" {
		if slot := slotContaining(d, date); slot != nil {
			slotID = slot.SlotID
		}
	}
	if slotID == "" {
		// 没有所属期段：退化为单日判断
		return dayLevelBusy(d, teacherID, date) >= 0
	}
	if slotLevelBusy(d, teacherID, slotID) >= 0 {
		return true
	}
	days := ResolveSlotTeachingDays(d, slotID)
	if len(days) == 0 {
		return false
	}
	for _, day := range days {
		if dayLevelBusy(d, teacherID, day) < 0 {
			return false
		}
	}
	return true
}

// TeacherUnavailablePercentage 教师在期段内不可用的比例。
// 期段级记录 → 1.0；否则为被单日记录覆盖的授课日占比。
// 界面据此渲染"部分不可用/锁定"状态：0 < p < 1 的单元格锁定期段级切换。
func TeacherUnavailablePercentage(d *model.Dataset, teacherID, slotID string) float64 {
	if slotLevelBusy(d, teacherID, slotID) >= 0 {
		return 1.0
	}
	days := ResolveSlotTeachingDays(d, slotID)
	if len(days) == 0 {
		return 0
	}
	covered := 0
	for _, day := range days {
		if dayLevelBusy(d, teacherID, day) >= 0 {
			covered++
		}
	}
	return float64(covered) / float64(len(days))
}

func slotContaining(d *model.Dataset, date time.Time) *model.Slot {
	date = model.DateOnly(date)
	for i := range d.Slots {
		s := &d.Slots[i]
		if !date.Before(model.DateOnly(s.StartDate)) && !date.After(model.DateOnly(s.EndDate)) {
			return s
		}
	}
	return nil
}

// ── 可用性切换 ──

// ToggleSlotAvailability 对称切换教师的期段级不可用状态。
// 部分覆盖（0 < p < 1）时拒绝：必须在单日粒度编辑。
// 全覆盖由单日记录构成时，取消操作清除全部单日记录。
func ToggleSlotAvailability(d *model.Dataset, teacherID, slotID string) error {
	if d.TeacherByID(teacherID) == nil {
		return Validationf("läraren finns inte")
	}
	if d.SlotByID(slotID) == nil {
		return Validationf("perioden finns inte")
	}

	if i := slotLevelBusy(d, teacherID, slotID); i >= 0 {
		d.TeacherAvailability = append(d.TeacherAvailability[:i], d.TeacherAvailability[i+1:]...)
		return nil
	}

	days := ResolveSlotTeachingDays(d, slotID)
	covered := 0
	for _, day := range days {
		if dayLevelBusy(d, teacherID, day) >= 0 {
			covered++
		}
	}
	switch {
	case covered == 0:
		slot := d.SlotByID(slotID)
		sid := slotID
		d.TeacherAvailability = append(d.TeacherAvailability, model.TeacherAvailability{
			AvailabilityID: uuid.NewString(),
			TeacherID:      teacherID,
			FromDate:       model.DateOnly(slot.StartDate),
			ToDate:         model.DateOnly(slot.EndDate),
			SlotID:         &sid,
			Type:           model.AvailabilityBusy,
		})
	case covered == len(days):
		// 全覆盖：清除所有单日记录即取消
		for _, day := range days {
			if i := dayLevelBusy(d, teacherID, day); i >= 0 {
				d.TeacherAvailability = append(d.TeacherAvailability[:i], d.TeacherAvailability[i+1:]...)
			}
		}
	default:
		return Validationf("läraren är delvis otillgänglig i perioden; redigera per dag")
	}
	return nil
}

// ToggleDayAvailability 对称切换教师某个授课日的不可用状态。
// 转换规则：存在期段级记录时先将其拆分为除目标日以外所有授课日的
// 单日记录（绝不留下期段级与单日级并存指向同一覆盖），再单独增删目标日。
func ToggleDayAvailability(d *model.Dataset, teacherID, slotID string, date time.Time) error {
	if d.TeacherByID(teacherID) == nil {
		return Validationf("läraren finns inte")
	}
	slot := d.SlotByID(slotID)
	if slot == nil {
		return Validationf("perioden finns inte")
	}
	date = model.DateOnly(date)

	days := ResolveSlotTeachingDays(d, slotID)
	isTeachingDay := false
	for _, day := range days {
		if day.Equal(date) {
			isTeachingDay = true
			break
		}
	}
	if !isTeachingDay {
		return Validationf("datumet %s är inte en undervisningsdag i perioden", date.Format("2006-01-02"))
	}

	if i := slotLevelBusy(d, teacherID, slotID); i >= 0 {
		// 拆分期段级记录：除目标日外的每个授课日生成单日记录
		d.TeacherAvailability = append(d.TeacherAvailability[:i], d.TeacherAvailability[i+1:]...)
		for _, day := range days {
			if day.Equal(date) {
				continue
			}
			d.TeacherAvailability = append(d.TeacherAvailability, model.TeacherAvailability{
				AvailabilityID: uuid.NewString(),
				TeacherID:      teacherID,
				FromDate:       day,
				ToDate:         day,
				Type:           model.AvailabilityBusy,
			})
		}
		return nil
	}

	if i := dayLevelBusy(d, teacherID, date); i >= 0 {
		d.TeacherAvailability = append(d.TeacherAvailability[:i], d.TeacherAvailability[i+1:]...)
		return nil
	}
	d.TeacherAvailability = append(d.TeacherAvailability, model.TeacherAvailability{
		AvailabilityID: uuid.NewString(),
		TeacherID:      teacherID,
		FromDate:       date,
		ToDate:         date,
		Type:           model.AvailabilityBusy,
	})
	return nil
}

// [自证通过] internal/planner/availability.go
