package game

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/tinytype/pkg/embedded"
	"github.com/quasilyte/gdata/v2"
	"github.com/samber/lo"
)

// ErrEmptyWordList 所有来源都没有提供任何单词
var ErrEmptyWordList = errors.New("word list is empty")

const (
	// WordsAssetPath 内置单词表
	WordsAssetPath = "assets/words.txt"

	userWordsObject   = "words"
	userWordsProperty = "list"
)

// UserWordStore 用户数据目录中的单词表（只读）
//
// *gdata.Manager 满足此接口。
type UserWordStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
}

var _ UserWordStore = (*gdata.Manager)(nil)

// WordSource 单词表来源，按优先级依次尝试：
//  1. Path: 命令行或环境变量显式指定的文件
//  2. UserData: 用户数据目录中的 words/list（家长自定义的单词表）
//  3. AssetPath: 内置（或 -assets 覆盖目录中的）words.txt
//
// 第一个产生非空行的来源胜出。
type WordSource struct {
	Path      string
	UserData  UserWordStore
	AssetPath string
}

// Load 读取原始单词行
//
// 返回的行尚未去除空白，也未应用大小写策略（由 systems.LoadWordBank 负责）。
// 所有来源均为空或不可读时返回 nil 和一个包装了 ErrEmptyWordList 的错误；
// 调用方仍应把 nil 交给 LoadWordBank，由它回退到数字表。
func (ws WordSource) Load() ([]string, error) {
	var errs []error

	if ws.Path != "" {
		data, err := os.ReadFile(ws.Path)
		if err != nil {
			errs = append(errs, fmt.Errorf("word file %s: %w", ws.Path, err))
		} else if lines := ParseWordLines(data); hasWord(lines) {
			logger("words").Debug().Str("source", ws.Path).Int("lines", len(lines)).Msg("word list loaded")
			return lines, nil
		}
	}

	if ws.UserData != nil && ws.UserData.ObjectPropExists(userWordsObject, userWordsProperty) {
		data, err := ws.UserData.LoadObjectProp(userWordsObject, userWordsProperty)
		if err != nil {
			errs = append(errs, fmt.Errorf("user word list: %w", err))
		} else if lines := ParseWordLines(data); hasWord(lines) {
			logger("words").Debug().Str("source", "user data").Int("lines", len(lines)).Msg("word list loaded")
			return lines, nil
		}
	}

	assetPath := ws.AssetPath
	if assetPath == "" {
		assetPath = WordsAssetPath
	}
	data, err := embedded.ReadFile(assetPath)
	if err != nil {
		errs = append(errs, fmt.Errorf("word asset %s: %w", assetPath, err))
	} else if lines := ParseWordLines(data); hasWord(lines) {
		logger("words").Debug().Str("source", assetPath).Int("lines", len(lines)).Msg("word list loaded")
		return lines, nil
	}

	return nil, errors.Join(append([]error{ErrEmptyWordList}, errs...)...)
}

// ParseWordLines 把文件内容拆分为行（兼容 CRLF）
func ParseWordLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func hasWord(lines []string) bool {
	return lo.ContainsBy(lines, func(line string) bool {
		return strings.TrimSpace(line) != ""
	})
}
