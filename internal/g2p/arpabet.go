package g2p

import "unicode/utf8"

// ipaArpabetTable maps IPA symbols to ARPABET codes. Multi-rune entries
// (diphthongs, affricates, long vowels) must win over their single-rune
// prefixes, so the mapper tries two-rune symbols first.
var ipaArpabetTable = map[string]string{
	"ɑː": "AA", "aɪ": "AY", "aʊ": "AW", "eɪ": "EY", "oʊ": "OW",
	"ɔɪ": "OY", "ɜː": "ER", "iː": "IY", "uː": "UW", "ɔː": "AO",
	"tʃ": "CH", "dʒ": "JH",

	"ɑ": "AA", "æ": "AE", "ʌ": "AH", "ɔ": "AO", "ə": "AX",
	"ɚ": "AXR", "ɛ": "EH", "ɝ": "ER", "ɪ": "IH", "i": "IY",
	"ʊ": "UH", "u": "UW", "a": "AA", "e": "EH", "o": "AO",

	"b": "B", "d": "D", "ð": "DH", "f": "F", "ɡ": "G", "g": "G",
	"h": "HH", "ɦ": "HH", "j": "Y", "k": "K", "l": "L", "ɫ": "L",
	"m": "M", "n": "N", "ŋ": "NG", "p": "P", "ɹ": "R", "r": "R",
	"ɾ": "DX", "s": "S", "ʃ": "SH", "t": "T", "θ": "TH",
	"v": "V", "w": "W", "x": "K", "z": "Z", "ʒ": "ZH", "ʔ": "Q",
}

// ipaToArpabet converts an IPA string into ARPABET tokens with a greedy
// longest-symbol-first pass. Stress marks, length marks, separators, and
// any symbol without an ARPABET counterpart are skipped.
func ipaToArpabet(ipa string) []string {
	var tokens []string
	for len(ipa) > 0 {
		_, size1 := utf8.DecodeRuneInString(ipa)
		if len(ipa) > size1 {
			_, size2 := utf8.DecodeRuneInString(ipa[size1:])
			if code, ok := ipaArpabetTable[ipa[:size1+size2]]; ok {
				tokens = append(tokens, code)
				ipa = ipa[size1+size2:]
				continue
			}
		}
		if code, ok := ipaArpabetTable[ipa[:size1]]; ok {
			tokens = append(tokens, code)
		}
		ipa = ipa[size1:]
	}
	return tokens
}
