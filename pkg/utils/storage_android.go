//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStoreDir 在打开 gdata 存储之前确保应用数据目录存在且可写
//
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会预先创建目录。
//
// 返回：
//   - error: 无法识别包名、创建目录失败或目录不可写时返回错误
func EnsureStoreDir() error {
	dir := StoreDir()
	if dir == "" {
		return fmt.Errorf("failed to detect android package name")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("store directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// StoreDir 返回应用数据目录，无法识别包名时返回空字符串
func StoreDir() string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}

// androidPackage 从 /proc/self/cmdline 读取包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	name := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 || ch == '\n' {
			continue
		}
		name = append(name, ch)
	}
	if len(name) == 0 {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return string(name), nil
}
