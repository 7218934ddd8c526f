//go:build mobile

package utils

// EnvMobileEmulate 移动端构建中不起作用
const EnvMobileEmulate = "FIGHTBOX_MOBILE_EMULATE"

// IsMobile 是否运行在移动设备上，移动端构建始终为 true
func IsMobile() bool {
	return true
}
