package game

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeStore 内存键值存储
type fakeStore struct {
	props   map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{props: make(map[string][]byte)}
}

func (s *fakeStore) ObjectPropExists(objectKey, propKey string) bool {
	_, ok := s.props[objectKey+"/"+propKey]
	return ok
}

func (s *fakeStore) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.props[objectKey+"/"+propKey], nil
}

func (s *fakeStore) SaveObjectProp(objectKey, propKey string, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.props[objectKey+"/"+propKey] = data
	return nil
}

// createTestGdataManager 创建用于测试的 gdata Manager
// 存储目录指向临时目录，测试结束后自动清理
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("fighting_boxes_test_%s_%d", testName, time.Now().UnixNano()),
	})
	if err != nil {
		return nil
	}
	return manager
}

func TestTallyManager_RecordWinRoundTrip(t *testing.T) {
	store := newFakeStore()
	tm := NewTallyManager(store, nil)

	require.NoError(t, tm.RecordWin("red"))
	assert.Equal(t, 1, tm.LoadTally().Wins("red"))

	require.NoError(t, tm.RecordWin("red"))
	require.NoError(t, tm.RecordWin("blue"))
	loaded := tm.LoadTally()
	assert.Equal(t, 2, loaded.Wins("red"))
	assert.Equal(t, 1, loaded.Wins("blue"))
	assert.Equal(t, `{"red":2,"blue":1}`, string(store.props["tally/wins"]))
	assert.Equal(t, 3, store.saves)

	// 新的管理器从存储中恢复
	restored := NewTallyManager(store, nil)
	assert.Equal(t, loaded.Entries(), restored.Tally().Entries())
}

func TestTallyManager_WithGdata(t *testing.T) {
	manager := createTestGdataManager(t, "roundtrip")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	tm := NewTallyManager(manager, nil)
	assert.True(t, tm.HasStore())
	assert.Equal(t, 0, tm.LoadTally().Len())

	require.NoError(t, tm.RecordWin("orange"))
	require.NoError(t, tm.RecordWin("orange"))

	restored := NewTallyManager(manager, nil)
	assert.Equal(t, 2, restored.Tally().Wins("orange"))
}

func TestTallyManager_NoStore(t *testing.T) {
	tm := NewTallyManager(nil, nil)

	assert.False(t, tm.HasStore())
	require.NoError(t, tm.RecordWin("green"))
	require.NoError(t, tm.RecordWin("green"))
	assert.Equal(t, 2, tm.Tally().Wins("green"))

	// 没有存储时重新加载保留内存中的胜场
	loaded := tm.LoadTally()
	assert.Equal(t, 2, loaded.Wins("green"))
	assert.Equal(t, 2, tm.Tally().Wins("green"))

	// 重启后（新的管理器）为空
	assert.Equal(t, 0, NewTallyManager(nil, nil).LoadTally().Len())
}

func TestTallyManager_NoStoreLoadAfterWin(t *testing.T) {
	tm := NewTallyManager(nil, nil)
	require.NoError(t, tm.RecordWin("red"))

	assert.Equal(t, 1, tm.LoadTally().Wins("red"))
	require.NoError(t, tm.RecordWin("red"))
	assert.Equal(t, 2, tm.LoadTally().Wins("red"))
}

func TestTallyManager_CorruptData(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeStore)
	}{
		{name: "无法解析", setup: func(s *fakeStore) { s.props["tally/wins"] = []byte("not json") }},
		{name: "负数胜场", setup: func(s *fakeStore) { s.props["tally/wins"] = []byte(`{"red":-3}`) }},
		{name: "读取失败", setup: func(s *fakeStore) {
			s.props["tally/wins"] = []byte(`{"red":1}`)
			s.loadErr = errors.New("io error")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			store := newFakeStore()
			tt.setup(store)

			tm := NewTallyManager(store, zap.New(core))
			assert.Equal(t, 0, tm.Tally().Len())
			assert.Equal(t, 1, logs.Len())

			store.loadErr = nil
			require.NoError(t, tm.RecordWin("red"))
			assert.Equal(t, `{"red":1}`, string(store.props["tally/wins"]))
		})
	}
}

func TestTallyManager_SaveFailure(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("read-only")
	tm := NewTallyManager(store, nil)

	err := tm.RecordWin("teal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save tally")
	assert.ErrorIs(t, err, store.saveErr)
	// 内存中的统计仍然更新
	assert.Equal(t, 1, tm.Tally().Wins("teal"))
}
