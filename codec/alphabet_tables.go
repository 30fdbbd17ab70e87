package codec

// basicCharset is the GSM 03.38 default alphabet, one entry per 7-bit
// code point 0x00-0x7f.
var basicCharset = [128]string{
	"@", "£", "$", "¥", "è", "é", "ù", "ì",
	"ò", "Ç", "\n", "Ø", "ø", "\r", "Å", "å",
	"Δ", "_", "Φ", "Γ", "Λ", "Ω", "Π", "Ψ",
	"Σ", "Θ", "Ξ", "￿", "Æ", "æ", "ß", "É",
	" ", "!", "\"", "#", "¤", "%", "&", "'",
	"(", ")", "*", "+", ",", "-", ".", "/",
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", ":", ";", "<", "=", ">", "?",
	"¡", "A", "B", "C", "D", "E", "F", "G",
	"H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W",
	"X", "Y", "Z", "Ä", "Ö", "Ñ", "Ü", "§",
	"¿", "a", "b", "c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t", "u", "v", "w",
	"x", "y", "z", "ä", "ö", "ñ", "ü", "à",
}

// basicCharsetExtension is the GSM 03.38 extension table, selected by a
// preceding escape character (0x1b). Unmapped positions render as a
// single space, matching the reference table.
var basicCharsetExtension = [128]string{
	" ", " ", " ", " ", " ", " ", " ", " ",
	" ", " ", "\f", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", "^", " ", " ", " ",
	" ", " ", " ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", " ", " ", " ", " ",
	"{", "}", " ", " ", " ", " ", " ", "\\",
	" ", " ", " ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", "[", "~", "]", " ",
	"|", " ", " ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", " ", "€", " ", " ",
	" ", " ", " ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", " ", " ", " ", " ",
}
