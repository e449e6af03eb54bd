// ABOUTME: Motivational quote catalog with a deterministic daily pick.
// ABOUTME: The same logical day always maps to the same quote.

package quotes

import "github.com/skosaka/tsumiage/internal/daykey"

// Quote is a single motivational quote.
type Quote struct {
	No     int    `json:"no"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

var catalog = []Quote{
	{1, "成功とは、小さな努力を毎日積み重ねることだ。", "ロバート・コリアー"},
	{2, "始める方法は、話すのをやめて行動し始めることだ。", "ウォルト・ディズニー"},
	{3, "未来は、今日何をするかで決まる。", "マハトマ・ガンディー"},
	{4, "どんなにゆっくりでも、止まらない限り前進だ。", "孔子"},
	{5, "習慣は、最初は蜘蛛の糸、最後は鎖になる。", "スペインのことわざ"},
	{6, "千里の道も一歩から。", "老子"},
	{7, "昨日の自分を超えること、それが最大の勝利だ。", "不明"},
	{8, "努力は裏切らない。ただ、結果の時期が違うだけだ。", "不明"},
	{9, "続けることが、いちばんの才能だ。", "不明"},
	{10, "行動がすべてを変える。", "不明"},
	{11, "今日の一歩が、明日の景色を変える。", "不明"},
	{12, "やる気は行動から生まれる。", "不明"},
	{13, "小さくても、毎日やれば大きくなる。", "不明"},
	{14, "自分を信じることが、最初の一歩だ。", "不明"},
	{15, "あきらめない人が、最後に勝つ。", "不明"},
	{16, "失敗は、成功の途中経過。", "不明"},
	{17, "完璧を目指すより、まず終わらせよう。", "不明"},
	{18, "今日は、残りの人生の最初の日だ。", "不明"},
	{19, "一度決めたら、迷わず続ける。", "不明"},
	{20, "毎日の小さな積み上げが、未来を作る。", "不明"},
	{21, "今やれることを、今やる。", "不明"},
	{22, "やり抜く力が、夢を現実にする。", "不明"},
	{23, "目標は、毎日の行動で近づく。", "不明"},
	{24, "努力は、確実に自分を強くする。", "不明"},
	{25, "今日を大切にする人が、未来を手にする。", "不明"},
	{26, "時間は、使い方次第で味方になる。", "不明"},
	{27, "昨日より少し前へ。", "不明"},
	{28, "積み上げは、目に見える力になる。", "不明"},
	{29, "一日一歩が、一年後の自分を作る。", "不明"},
	{30, "続けた分だけ、景色が変わる。", "不明"},
	{31, "小さな成功が、大きな自信になる。", "不明"},
	{32, "目の前の一歩を、丁寧に。", "不明"},
	{33, "できることから始めればいい。", "不明"},
	{34, "やらない後悔より、やる後悔。", "不明"},
	{35, "自分のペースで、止まらずに。", "不明"},
	{36, "信じる力が、行動を支える。", "不明"},
	{37, "昨日の自分に、今日の自分で勝つ。", "不明"},
	{38, "毎日は、未来への投資だ。", "不明"},
	{39, "できるだけやる。できるだけ続ける。", "不明"},
	{40, "努力は静かに積み上がる。", "不明"},
	{41, "少しずつが、いちばん強い。", "不明"},
	{42, "始める勇気が、すべてを変える。", "不明"},
	{43, "継続は、自分を裏切らない。", "不明"},
	{44, "今日の努力は、明日の自分への贈り物。", "不明"},
	{45, "小さな積み上げが、習慣を作る。", "不明"},
	{46, "一歩ずつが、いちばん速い。", "不明"},
	{47, "続けるほど、迷いは減る。", "不明"},
	{48, "いつでも、今日が一番若い日。", "不明"},
	{49, "やると決めたら、あとは淡々と。", "不明"},
	{50, "今の一歩が、未来の標準になる。", "不明"},
}

// All returns the full catalog in order.
func All() []Quote {
	out := make([]Quote, len(catalog))
	copy(out, catalog)
	return out
}

// Count returns the number of quotes in the catalog.
func Count() int {
	return len(catalog)
}

// indexFor hashes a seed string into a catalog index. The hash is a
// 31-multiplier rolling hash over the seed's UTF-16 code units, which
// for day keys (ASCII) is the same as hashing the bytes.
func indexFor(seed string) int {
	var hash uint32
	for _, r := range seed {
		hash = hash*31 + uint32(r)
	}
	return int(hash % uint32(len(catalog)))
}

// ForDay returns the quote for a logical day key. The pick is
// deterministic so every surface shows the same quote for the day.
func ForDay(day string) Quote {
	return catalog[indexFor(day)]
}

// HistoryEntry pairs a logical day with its quote.
type HistoryEntry struct {
	Day   string `json:"day"`
	Quote Quote  `json:"quote"`
}

// History returns the quotes for the last `days` logical days ending
// at today, newest first. Because the pick is deterministic there is
// nothing to store; the history is recomputed from the day keys.
func History(today string, days int) []HistoryEntry {
	if days < 1 {
		days = 1
	}
	out := make([]HistoryEntry, 0, days)
	day := today
	for i := 0; i < days; i++ {
		out = append(out, HistoryEntry{Day: day, Quote: ForDay(day)})
		day = daykey.Shift(day, -1)
	}
	return out
}
