//go:build !mobile

package utils

import "os"

// EnvMobileEmulate 设置为 1 时桌面端按移动端处理（本地调试用）
const EnvMobileEmulate = "FIGHTBOX_MOBILE_EMULATE"

// IsMobile 是否运行在移动设备上
// 移动端没有窗口，也不支持全屏切换热键
func IsMobile() bool {
	return os.Getenv(EnvMobileEmulate) == "1"
}
