package converter

// Segment 记录代码块的位置信息
type Segment struct {
	Kind       string // "code_block" or "inline_code"
	TextStart  int    // 文本起始位置（字节）
	TextEnd    int    // 文本结束位置（字节）
	UTF16Start int    // UTF-16 起始位置
	UTF16End   int    // UTF-16 结束位置
	Language   string // 编程语言
	RawCode    string // 原始代码内容
}

const (
	SegmentCodeBlock  = "code_block"
	SegmentInlineCode = "inline_code"
)
