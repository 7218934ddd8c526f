//go:build !android

package utils

// EnsureStoreDir 非 Android 平台由 gdata 自行创建目录
func EnsureStoreDir() error {
	return nil
}

// StoreDir 非 Android 平台返回空字符串
func StoreDir() string {
	return ""
}
