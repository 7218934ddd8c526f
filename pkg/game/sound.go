package game

// SoundCue 对战音效
// 前端可以不提供音效，此时使用 NopSoundCue
type SoundCue interface {
	// PlayHit 敌对方块碰撞时调用，每帧最多一次
	PlayHit()
	// PlayVictory 决出胜者时调用
	PlayVictory()
}

// NopSoundCue 不发声的音效实现
type NopSoundCue struct{}

// PlayHit 实现 SoundCue
func (NopSoundCue) PlayHit() {}

// PlayVictory 实现 SoundCue
func (NopSoundCue) PlayVictory() {}
