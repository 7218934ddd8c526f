package game

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Store 键值存储（胜场统计与设置共用）
// *gdata.Manager 满足此接口
type Store interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// 存储路径常量
const (
	tallyObject   = "tally"
	tallyProperty = "wins"
)

// TallyManager 胜场统计管理器
// 负责胜场统计的加载、更新和持久化
type TallyManager struct {
	store  Store // 可为 nil（降级模式，仅内存统计）
	tally  *Tally
	logger *zap.Logger
}

// NewTallyManager 创建胜场统计管理器并立即加载已保存的统计
//
// 参数：
//   - store: 键值存储，可为 nil（不持久化）
//   - logger: 日志，可为 nil
func NewTallyManager(store Store, logger *zap.Logger) *TallyManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	tm := &TallyManager{
		store:  store,
		tally:  NewTally(),
		logger: logger.Named("tally"),
	}
	tm.LoadTally()
	return tm
}

// HasStore 是否启用了持久化
func (tm *TallyManager) HasStore() bool {
	return tm.store != nil
}

// LoadTally 从存储中读取胜场统计
//
// 数据不存在或无法解析时返回空统计，不视为错误。
// 没有存储时只返回内存中的统计，不会清空已记录的胜场。
func (tm *TallyManager) LoadTally() *Tally {
	if tm.store == nil {
		return tm.tally.Clone()
	}
	tm.tally = tm.readStore()
	return tm.tally.Clone()
}

func (tm *TallyManager) readStore() *Tally {
	if !tm.store.ObjectPropExists(tallyObject, tallyProperty) {
		return NewTally()
	}

	data, err := tm.store.LoadObjectProp(tallyObject, tallyProperty)
	if err != nil {
		tm.logger.Warn("failed to load tally, starting empty", zap.Error(err))
		return NewTally()
	}

	tally := NewTally()
	if err := json.Unmarshal(data, tally); err != nil {
		tm.logger.Warn("tally data unreadable, starting empty", zap.Error(err))
		return NewTally()
	}

	tm.logger.Debug("tally loaded", zap.Int("teams", tally.Len()))
	return tally
}

// RecordWin 记录一场胜利并立即写回存储
//
// 降级模式下只更新内存中的统计，返回 nil。
//
// 返回：
//   - error: 序列化或写入失败时返回错误（内存中的统计已更新）
func (tm *TallyManager) RecordWin(team string) error {
	wins := tm.tally.Increment(team)
	tm.logger.Info("win recorded", zap.String("team", team), zap.Int("wins", wins))

	if tm.store == nil {
		return nil
	}

	data, err := json.Marshal(tm.tally)
	if err != nil {
		return fmt.Errorf("failed to marshal tally: %w", err)
	}

	if err := tm.store.SaveObjectProp(tallyObject, tallyProperty, data); err != nil {
		return fmt.Errorf("failed to save tally: %w", err)
	}

	return nil
}

// Tally 返回当前统计的副本
func (tm *TallyManager) Tally() *Tally {
	return tm.tally.Clone()
}
