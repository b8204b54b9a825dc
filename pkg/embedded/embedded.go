// Package embedded 提供资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包在嵌入资源之上叠加一个可选的磁盘覆盖目录：
// 覆盖目录中存在同名文件时优先使用磁盘文件，否则回退到嵌入的默认资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// assetsPrefix 所有资源路径的前缀
const assetsPrefix = "assets/"

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	overrideDir string
	initialized bool
)

// Init 初始化嵌入资源
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = true
}

// SetOverrideDir 设置磁盘覆盖目录（对应 assets/ 的根），空字符串表示不覆盖
func SetOverrideDir(dir string) {
	overrideDir = dir
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径并校验前缀
func normalize(p string) (string, error) {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = path.Clean(p)
	if !strings.HasPrefix(p, assetsPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", p)
	}
	return p, nil
}

// overridePath 返回覆盖目录中的对应路径，未设置覆盖目录时返回空字符串
func overridePath(p string) string {
	if overrideDir == "" {
		return ""
	}
	return filepath.Join(overrideDir, filepath.FromSlash(strings.TrimPrefix(p, assetsPrefix)))
}

// ReadFile 读取资源文件内容，优先读取覆盖目录
// 路径必须以 "assets/" 开头
func ReadFile(p string) ([]byte, error) {
	if !initialized {
		return nil, errNotInitialized
	}

	p, err := normalize(p)
	if err != nil {
		return nil, err
	}

	if disk := overridePath(p); disk != "" {
		data, err := os.ReadFile(disk)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read override %s: %w", disk, err)
		}
	}

	return fs.ReadFile(assetsFS, p)
}

// Exists 检查资源是否存在（覆盖目录或嵌入资源）
func Exists(p string) bool {
	if !initialized {
		return false
	}

	p, err := normalize(p)
	if err != nil {
		return false
	}

	if disk := overridePath(p); disk != "" {
		if info, err := os.Stat(disk); err == nil && !info.IsDir() {
			return true
		}
	}

	info, err := fs.Stat(assetsFS, p)
	return err == nil && !info.IsDir()
}
