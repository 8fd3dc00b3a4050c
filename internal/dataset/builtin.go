// Package dataset provides the character tables used by the quiz.
package dataset

import "github.com/verte-zerg/tuihanzi/internal/model"

var builtin = []model.CharacterEntry{
	{Glyph: "一", Reading: "yi", Meaning: "数字一"},
	{Glyph: "二", Reading: "er", Meaning: "数字二"},
	{Glyph: "三", Reading: "san", Meaning: "数字三"},
	{Glyph: "人", Reading: "ren", Meaning: "人"},
	{Glyph: "大", Reading: "da", Meaning: "大的"},
	{Glyph: "小", Reading: "xiao", Meaning: "小的"},
	{Glyph: "上", Reading: "shang", Meaning: "上面"},
	{Glyph: "下", Reading: "xia", Meaning: "下面"},
	{Glyph: "中", Reading: "zhong", Meaning: "中间"},
	{Glyph: "口", Reading: "kou", Meaning: "嘴巴"},
	{Glyph: "手", Reading: "shou", Meaning: "手"},
	{Glyph: "目", Reading: "mu", Meaning: "眼睛"},
	{Glyph: "耳", Reading: "er", Meaning: "耳朵"},
	{Glyph: "日", Reading: "ri", Meaning: "太阳"},
	{Glyph: "月", Reading: "yue", Meaning: "月亮"},
	{Glyph: "水", Reading: "shui", Meaning: "水"},
	{Glyph: "火", Reading: "huo", Meaning: "火"},
	{Glyph: "木", Reading: "mu", Meaning: "木头"},
	{Glyph: "土", Reading: "tu", Meaning: "土"},
	{Glyph: "山", Reading: "shan", Meaning: "山"},
}

// Builtin returns a copy of the compiled-in table.
func Builtin() []model.CharacterEntry {
	out := make([]model.CharacterEntry, len(builtin))
	copy(out, builtin)
	return out
}
