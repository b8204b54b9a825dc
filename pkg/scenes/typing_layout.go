package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/tinytype/pkg/components"
	"github.com/decker502/tinytype/pkg/config"
)

// placedText 一段已确定位置的文字
//
// X, Y 为左上角；Scale 作用于 GeoM（以左上角为原点）。
type placedText struct {
	Text  string
	X, Y  float64
	Scale float64
	Color color.RGBA
	Alpha float64
}

// typingLayout 一帧的全部文字布局
type typingLayout struct {
	Letters []placedText
	Wrong   *placedText
	Emoji   *placedText
	WPM     placedText
}

// typingFaces 按屏幕高度生成的字体
type typingFaces struct {
	Main  *text.GoTextFace
	Wrong *text.GoTextFace
	WPM   *text.GoTextFace
	Emoji *text.GoTextFace
}

func newTypingFaces(source *text.GoTextFaceSource, screenH int, scale float64) typingFaces {
	face := func(ratio float64) *text.GoTextFace {
		return &text.GoTextFace{
			Source:    source,
			Size:      config.ScaledFontSize(screenH, ratio),
			Direction: text.DirectionLeftToRight,
		}
	}
	return typingFaces{
		Main:  face(config.MainFontRatio),
		Wrong: face(config.WrongFontRatio),
		WPM:   face(config.WPMFontRatio),
		Emoji: face(config.EmojiFontRatio * scale),
	}
}

// lineHeight 字体未缩放时的行高
func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

// letterColor 第 i 个字母的颜色：已输入 / 下一个目标 / 剩余
func letterColor(i, typed int, palette config.Palette) color.RGBA {
	switch {
	case i < typed:
		return palette.TypedLetter
	case i == typed:
		return palette.TargetLetter
	default:
		return palette.RemainingLetter
	}
}

// layoutTyping 计算一帧的文字位置
//
// 单词在屏幕中心水平排开，字母间距随缩放变化；抖动只作用于单词的水平位置，
// 滑出偏移同时作用于单词和表情。错误字母固定在单词下方，WPM 固定在右上角。
func layoutTyping(frame *components.FrameState, faces typingFaces, palette config.Palette, screenW, screenH int) typingLayout {
	var out typingLayout

	cx := float64(screenW / 2)
	cy := float64(screenH / 2)
	mainH := lineHeight(faces.Main)
	visual := frame.Celebration
	scale := visual.Scale
	if scale <= 0 {
		scale = 1
	}

	spacing := math.Trunc(float64(screenW) * config.LetterSpacingRatio * scale)

	letters := make([]string, len(frame.Word))
	widths := make([]float64, len(frame.Word))
	total := 0.0
	for i, r := range frame.Word {
		letters[i] = string(r)
		widths[i] = text.Advance(letters[i], faces.Main) * scale
		total += widths[i]
	}
	if len(letters) > 1 {
		total += spacing * float64(len(letters)-1)
	}

	x := cx - math.Floor(total/2) + frame.ShakeOffset + visual.OffsetX
	y := cy - math.Floor(mainH/2) + visual.OffsetY
	out.Letters = make([]placedText, len(letters))
	for i, letter := range letters {
		out.Letters[i] = placedText{
			Text:  letter,
			X:     x,
			Y:     y,
			Scale: scale,
			Color: letterColor(i, frame.Typed, palette),
			Alpha: 1,
		}
		x += widths[i] + spacing
	}

	if frame.LastWrong != 0 {
		s := string(frame.LastWrong)
		w := text.Advance(s, faces.Wrong)
		out.Wrong = &placedText{
			Text:  s,
			X:     cx - math.Floor(w/2),
			Y:     cy + math.Floor(mainH/2) + config.WrongLetterGap,
			Scale: 1,
			Color: palette.IncorrectLetter,
			Alpha: 1,
		}
	}

	if visual.Emoji != "" && visual.EmojiAlpha > 0 {
		w := text.Advance(visual.Emoji, faces.Emoji)
		h := lineHeight(faces.Emoji)
		out.Emoji = &placedText{
			Text:  visual.Emoji,
			X:     cx - math.Floor(w/2) + visual.OffsetX,
			Y:     cy - math.Floor(mainH/2) - h - config.EmojiGap + visual.OffsetY,
			Scale: 1,
			Color: color.RGBA{A: 0xff},
			Alpha: visual.EmojiAlpha,
		}
	}

	wpm := fmt.Sprintf("WPM: %d", frame.WPM)
	out.WPM = placedText{
		Text:  wpm,
		X:     float64(screenW) - text.Advance(wpm, faces.WPM) - config.WPMMargin,
		Y:     config.WPMMargin,
		Scale: 1,
		Color: palette.WPMText,
		Alpha: 1,
	}

	return out
}
