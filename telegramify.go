// Package msgparser 将聊天消息切分为文本、表情和代码块片段
//
// 消息中的表情位置由上游（如 Twitch IRC 的 emotes 标签）以排序且不重叠的
// 字节区间给出；代码块由一个或三个反引号界定。两种界定方式合并为一个
// 有序、不重叠的片段序列，代码块优先于落在其中的表情。
//
// 主要 API：
//   - ParseParts(): 切分消息，返回 []Part
//   - Convert(): 片段转换为 Telegram (text, entities)
//   - RenderHTML(): 片段渲染为 HTML
//   - Telegramify(): 完整处理，返回可发送的内容列表
//
// 示例：
//
//	parts, err := msgparser.ParseParts("hello `world` Kappa", []msgparser.Emote{
//	    {ID: "25", Start: 14, End: 19},
//	})
//	for _, p := range parts {
//	    switch p.Kind {
//	    case msgparser.PartText:
//	    case msgparser.PartEmote:
//	    case msgparser.PartCodeblock:
//	    }
//	}
package msgparser

import (
	"context"
)

// Telegramify 将聊天消息转换为 Telegram 就绪的内容片段
//
// 参数：
//   - ctx: 上下文
//   - msg: 原始消息文本
//   - emotes: 排序且不重叠的表情字节区间
//   - maxMessageLength: 每条文本消息的最大 UTF-16 code units（Telegram 限制为 4096）
//   - opts: 渲染选项
//
// 返回：
//   - []Content: Text 或 File 对象的有序列表
//   - error: 表情区间未排序或重叠时返回 *PreconditionError
func Telegramify(
	ctx context.Context,
	msg string,
	emotes []Emote,
	maxMessageLength int,
	opts ...Option,
) ([]Content, error) {
	return ProcessMessage(ctx, msg, emotes, maxMessageLength, opts...)
}
