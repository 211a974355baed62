// Package embedded 提供对编译进查看器二进制文件的精灵表资源的访问
//
// //go:embed 指令只能嵌入当前包目录及其子目录的文件,
// 因此 embed.FS 声明在项目根目录(embed.go),在 main 开始时通过 Init 传入
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	initialized bool
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 设置资源文件系统,必须在加载任何精灵表之前调用
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = true
}

// IsInitialized 检查是否已调用 Init
func IsInitialized() bool {
	return initialized
}

// normalize 将路径转换为 embed.FS 需要的斜杠格式并检查前缀
func normalize(name string) (string, error) {
	name = filepath.ToSlash(name)
	name = strings.TrimPrefix(name, "./")
	name = path.Clean(name)
	if !strings.HasPrefix(name, "assets/") && name != "assets" {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", name)
	}
	return name, nil
}

// Open 打开嵌入的资源文件,路径必须以 "assets/" 开头
func Open(name string) (fs.File, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	name, err := normalize(name)
	if err != nil {
		return nil, err
	}
	return assetsFS.Open(name)
}

// ReadFile 读取嵌入的资源文件,路径必须以 "assets/" 开头
func ReadFile(name string) ([]byte, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	name, err := normalize(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(assetsFS, name)
}

// Exists 检查嵌入资源是否存在
func Exists(name string) bool {
	f, err := Open(name)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Glob 匹配嵌入资源,例如 "assets/sheets/*.json"
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	pattern, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(assetsFS, pattern)
}

// Sub 返回以 dir 为根的文件系统,可用于 utils.FSSource
func Sub(dir string) (fs.FS, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	dir, err := normalize(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(assetsFS, dir)
}
