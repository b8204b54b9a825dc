package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func resetState() {
	assetsFS = nil
	overrideDir = ""
	initialized = false
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"assets/words.txt":             {Data: []byte("cat\ndog\n")},
		"assets/config/resources.yaml": {Data: []byte("version: \"1.0\"\n")},
		"assets/fonts":                 {Mode: os.ModeDir},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetState()
	defer resetState()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	resetState()

	_, err := ReadFile("assets/words.txt")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
	if Exists("assets/words.txt") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFileEmbedded 测试读取嵌入资源与路径标准化
func TestReadFileEmbedded(t *testing.T) {
	resetState()
	defer resetState()
	Init(testFS())

	for _, p := range []string{"assets/words.txt", "./assets/words.txt", "assets/config/../words.txt"} {
		data, err := ReadFile(p)
		if err != nil {
			t.Errorf("ReadFile(%q) error: %v", p, err)
			continue
		}
		if string(data) != "cat\ndog\n" {
			t.Errorf("ReadFile(%q) = %q", p, data)
		}
	}

	if _, err := ReadFile("data/words.txt"); err == nil {
		t.Error("expected error for unknown prefix")
	}
	if _, err := ReadFile("assets/missing.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestOverrideDir 测试磁盘覆盖目录优先
func TestOverrideDir(t *testing.T) {
	resetState()
	defer resetState()
	Init(testFS())

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "words.txt"), []byte("sun\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sounds"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sounds", "chime.wav"), []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetOverrideDir(dir)

	data, err := ReadFile("assets/words.txt")
	if err != nil || string(data) != "sun\n" {
		t.Errorf("override not used: %q, %v", data, err)
	}

	// 覆盖目录中不存在的文件回退到嵌入资源
	if _, err := ReadFile("assets/config/resources.yaml"); err != nil {
		t.Errorf("fallback to embedded failed: %v", err)
	}

	if !Exists("assets/sounds/chime.wav") {
		t.Error("Exists() should see override-only file")
	}
	if Exists("assets/fonts") {
		t.Error("Exists() should be false for directories")
	}
	if Exists("assets/sounds/boop.wav") {
		t.Error("Exists() should be false for missing file")
	}
}
