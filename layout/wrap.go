package layout

import "strings"

// 贪心换行：按词从左到右累积，放不下换行；单词超宽时按字符拆分。
// 输出是输入的纯函数，空白会被折叠（不保留原有的多余空白）。

// WrapText 用默认估算器把文本拆成若干行，每行估算宽度不超过 maxWidth。
// 空文本返回单个空行（而不是零行），调用方可以依赖"至少一行"做布局计算。
func WrapText(text string, maxWidth, fontSize float64) []string {
	return wrapWidth(text, maxWidth, fontSize, Estimate)
}

func wrapWidth(text string, maxWidth, fontSize float64, measure WidthFunc) []string {
	if text == "" {
		return []string{""}
	}

	words := strings.Fields(text)
	var lines []string
	current := ""

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		// 恰好等宽视为放得下（含等号比较）
		if measure(candidate, fontSize) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = word
			if measure(word, fontSize) > maxWidth {
				segments := breakWord(word, maxWidth, fontSize, measure)
				lines = append(lines, segments[:len(segments)-1]...)
				current = segments[len(segments)-1]
			}
		} else {
			// 行首单词已经超宽，直接拆分
			segments := breakWord(word, maxWidth, fontSize, measure)
			lines = append(lines, segments[:len(segments)-1]...)
			current = segments[len(segments)-1]
		}
	}

	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// breakWord 把放不进一行的单词按字符贪心拆成若干段。
// 保证 concat(segments) == word：字符既不丢失也不重排；
// 单个字符仍超宽时原样作为一段输出（容忍超宽，不丢数据，也不会死循环）。
func breakWord(word string, maxWidth, fontSize float64, measure WidthFunc) []string {
	if word == "" {
		return []string{""}
	}

	var segments []string
	current := ""

	for _, r := range word {
		candidate := current + string(r)
		if measure(candidate, fontSize) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			segments = append(segments, current)
			current = string(r)
		} else {
			segments = append(segments, string(r))
			current = ""
		}
	}

	if current != "" {
		segments = append(segments, current)
	}
	if len(segments) == 0 {
		return []string{word}
	}
	return segments
}
