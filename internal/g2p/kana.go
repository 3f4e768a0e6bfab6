package g2p

import "unicode/utf8"

// moraTable maps katakana morae to phoneme sequences. Two-rune morae
// (consonant + small ya/yu/yo/vowel) are listed alongside single kana;
// kanaToPhonemes tries the two-rune form first so キャ resolves as one
// mora rather than キ followed by a stray small ャ.
var moraTable = map[string][]string{
	"ア": {"a"}, "イ": {"i"}, "ウ": {"u"}, "エ": {"e"}, "オ": {"o"},
	"カ": {"k", "a"}, "キ": {"k", "i"}, "ク": {"k", "u"}, "ケ": {"k", "e"}, "コ": {"k", "o"},
	"ガ": {"g", "a"}, "ギ": {"g", "i"}, "グ": {"g", "u"}, "ゲ": {"g", "e"}, "ゴ": {"g", "o"},
	"サ": {"s", "a"}, "シ": {"sh", "i"}, "ス": {"s", "u"}, "セ": {"s", "e"}, "ソ": {"s", "o"},
	"ザ": {"z", "a"}, "ジ": {"j", "i"}, "ズ": {"z", "u"}, "ゼ": {"z", "e"}, "ゾ": {"z", "o"},
	"タ": {"t", "a"}, "チ": {"ch", "i"}, "ツ": {"ts", "u"}, "テ": {"t", "e"}, "ト": {"t", "o"},
	"ダ": {"d", "a"}, "ヂ": {"j", "i"}, "ヅ": {"z", "u"}, "デ": {"d", "e"}, "ド": {"d", "o"},
	"ナ": {"n", "a"}, "ニ": {"n", "i"}, "ヌ": {"n", "u"}, "ネ": {"n", "e"}, "ノ": {"n", "o"},
	"ハ": {"h", "a"}, "ヒ": {"h", "i"}, "フ": {"f", "u"}, "ヘ": {"h", "e"}, "ホ": {"h", "o"},
	"バ": {"b", "a"}, "ビ": {"b", "i"}, "ブ": {"b", "u"}, "ベ": {"b", "e"}, "ボ": {"b", "o"},
	"パ": {"p", "a"}, "ピ": {"p", "i"}, "プ": {"p", "u"}, "ペ": {"p", "e"}, "ポ": {"p", "o"},
	"マ": {"m", "a"}, "ミ": {"m", "i"}, "ム": {"m", "u"}, "メ": {"m", "e"}, "モ": {"m", "o"},
	"ヤ": {"y", "a"}, "ユ": {"y", "u"}, "ヨ": {"y", "o"},
	"ラ": {"r", "a"}, "リ": {"r", "i"}, "ル": {"r", "u"}, "レ": {"r", "e"}, "ロ": {"r", "o"},
	"ワ": {"w", "a"}, "ヲ": {"o"}, "ン": {"N"},
	"ヴ": {"b", "u"},
	"ッ": {"cl"},
	"ー": {"long"},

	"キャ": {"k", "y", "a"}, "キュ": {"k", "y", "u"}, "キョ": {"k", "y", "o"},
	"ギャ": {"g", "y", "a"}, "ギュ": {"g", "y", "u"}, "ギョ": {"g", "y", "o"},
	"シャ": {"sh", "a"}, "シュ": {"sh", "u"}, "ショ": {"sh", "o"}, "シェ": {"sh", "e"},
	"ジャ": {"j", "a"}, "ジュ": {"j", "u"}, "ジョ": {"j", "o"}, "ジェ": {"j", "e"},
	"チャ": {"ch", "a"}, "チュ": {"ch", "u"}, "チョ": {"ch", "o"}, "チェ": {"ch", "e"},
	"ニャ": {"n", "y", "a"}, "ニュ": {"n", "y", "u"}, "ニョ": {"n", "y", "o"},
	"ヒャ": {"h", "y", "a"}, "ヒュ": {"h", "y", "u"}, "ヒョ": {"h", "y", "o"},
	"ビャ": {"b", "y", "a"}, "ビュ": {"b", "y", "u"}, "ビョ": {"b", "y", "o"},
	"ピャ": {"p", "y", "a"}, "ピュ": {"p", "y", "u"}, "ピョ": {"p", "y", "o"},
	"ミャ": {"m", "y", "a"}, "ミュ": {"m", "y", "u"}, "ミョ": {"m", "y", "o"},
	"リャ": {"r", "y", "a"}, "リュ": {"r", "y", "u"}, "リョ": {"r", "y", "o"},
	"ファ": {"f", "a"}, "フィ": {"f", "i"}, "フェ": {"f", "e"}, "フォ": {"f", "o"},
	"ティ": {"t", "i"}, "ディ": {"d", "i"}, "トゥ": {"t", "u"}, "ドゥ": {"d", "u"},
	"ウィ": {"w", "i"}, "ウェ": {"w", "e"}, "ウォ": {"w", "o"},

	"、": {"pau"}, "。": {"pau"}, "・": {"pau"}, "！": {"pau"}, "？": {"pau"},
}

// kanaToPhonemes expands a katakana string into phonemes, longest mora
// first (the same greedy discipline as the symbol scanner). Runes outside
// the table pass through as single tokens.
func kanaToPhonemes(kana string) []string {
	var phones []string
	for len(kana) > 0 {
		// Try a two-rune mora first.
		_, size1 := utf8.DecodeRuneInString(kana)
		if len(kana) > size1 {
			_, size2 := utf8.DecodeRuneInString(kana[size1:])
			if ph, ok := moraTable[kana[:size1+size2]]; ok {
				phones = append(phones, ph...)
				kana = kana[size1+size2:]
				continue
			}
		}
		if ph, ok := moraTable[kana[:size1]]; ok {
			phones = append(phones, ph...)
		} else {
			phones = append(phones, kana[:size1])
		}
		kana = kana[size1:]
	}
	return phones
}
