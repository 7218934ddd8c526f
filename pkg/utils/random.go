package utils

import "math/rand/v2"

// Random 随机数来源
//
// 出生位置、速度、攻击力以及碰撞时由哪一方受伤都通过它取值，
// 测试中可以注入固定序列使结果可复现。
type Random interface {
	// Float64 返回 [0, 1) 内的随机数
	Float64() float64
}

// NewSeededRandom 创建基于种子的随机数来源
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceRandom 按固定序列循环返回数值的随机数来源
type SequenceRandom struct {
	values []float64
	next   int
}

// NewSequenceRandom 创建固定序列随机数来源
// values 为空时始终返回 0
func NewSequenceRandom(values ...float64) *SequenceRandom {
	return &SequenceRandom{values: values}
}

// Float64 返回序列中的下一个值，到达末尾后从头开始
func (s *SequenceRandom) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws 返回已取值次数
func (s *SequenceRandom) Draws() int {
	return s.next
}

// RandomInRange 返回 [min, max) 内的均匀随机数
func RandomInRange(r Random, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}
