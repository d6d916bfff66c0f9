package font

// small is the 5x7 glyph table. Entries 0 to 94 cover ASCII 0x20 to 0x7E,
// entries 95 to 190 cover Latin-1 0xA0 to 0xFF.
var small = [...][SmallWidth]byte{
	{0x00, 0x00, 0x00, 0x00, 0x00}, // U+0020
	{0x00, 0x00, 0x4F, 0x00, 0x00}, // '!'
	{0x00, 0x07, 0x00, 0x07, 0x00}, // '"'
	{0x14, 0x7F, 0x14, 0x7F, 0x14}, // '#'
	{0x24, 0x2A, 0x7F, 0x2A, 0x12}, // '$'
	{0x23, 0x13, 0x08, 0x64, 0x62}, // '%'
	{0x36, 0x49, 0x55, 0x22, 0x50}, // '&'
	{0x00, 0x05, 0x03, 0x00, 0x00}, // '\''
	{0x00, 0x1C, 0x22, 0x41, 0x00}, // '('
	{0x00, 0x41, 0x22, 0x1C, 0x00}, // ')'
	{0x14, 0x08, 0x3E, 0x08, 0x14}, // '*'
	{0x08, 0x08, 0x3E, 0x08, 0x08}, // '+'
	{0x00, 0x50, 0x30, 0x00, 0x00}, // ','
	{0x08, 0x08, 0x08, 0x08, 0x08}, // '-'
	{0x00, 0x60, 0x60, 0x00, 0x00}, // '.'
	{0x20, 0x10, 0x08, 0x04, 0x02}, // '/'
	{0x3E, 0x51, 0x49, 0x45, 0x3E}, // '0'
	{0x00, 0x42, 0x7F, 0x40, 0x00}, // '1'
	{0x42, 0x61, 0x51, 0x49, 0x46}, // '2'
	{0x21, 0x41, 0x45, 0x4B, 0x31}, // '3'
	{0x18, 0x14, 0x12, 0x7F, 0x10}, // '4'
	{0x27, 0x45, 0x45, 0x45, 0x39}, // '5'
	{0x3C, 0x4A, 0x49, 0x49, 0x30}, // '6'
	{0x01, 0x71, 0x09, 0x05, 0x03}, // '7'
	{0x36, 0x49, 0x49, 0x49, 0x36}, // '8'
	{0x06, 0x49, 0x49, 0x29, 0x1E}, // '9'
	{0x00, 0x36, 0x36, 0x00, 0x00}, // ':'
	{0x00, 0x56, 0x36, 0x00, 0x00}, // ';'
	{0x08, 0x14, 0x22, 0x41, 0x00}, // '<'
	{0x14, 0x14, 0x14, 0x14, 0x14}, // '='
	{0x00, 0x41, 0x22, 0x14, 0x08}, // '>'
	{0x02, 0x01, 0x51, 0x09, 0x06}, // '?'
	{0x32, 0x49, 0x79, 0x41, 0x3E}, // '@'
	{0x7E, 0x11, 0x11, 0x11, 0x7E}, // 'A'
	{0x7F, 0x49, 0x49, 0x49, 0x36}, // 'B'
	{0x3E, 0x41, 0x41, 0x41, 0x22}, // 'C'
	{0x7F, 0x41, 0x41, 0x22, 0x1C}, // 'D'
	{0x7F, 0x49, 0x49, 0x49, 0x41}, // 'E'
	{0x7F, 0x09, 0x09, 0x09, 0x01}, // 'F'
	{0x3E, 0x41, 0x49, 0x49, 0x7A}, // 'G'
	{0x7F, 0x08, 0x08, 0x08, 0x7F}, // 'H'
	{0x00, 0x41, 0x7F, 0x41, 0x00}, // 'I'
	{0x20, 0x40, 0x41, 0x3F, 0x01}, // 'J'
	{0x7F, 0x08, 0x14, 0x22, 0x41}, // 'K'
	{0x7F, 0x40, 0x40, 0x40, 0x40}, // 'L'
	{0x7F, 0x02, 0x0C, 0x02, 0x7F}, // 'M'
	{0x7F, 0x04, 0x08, 0x10, 0x7F}, // 'N'
	{0x3E, 0x41, 0x41, 0x41, 0x3E}, // 'O'
	{0x7F, 0x09, 0x09, 0x09, 0x06}, // 'P'
	{0x3E, 0x41, 0x51, 0x21, 0x5E}, // 'Q'
	{0x7F, 0x09, 0x19, 0x29, 0x46}, // 'R'
	{0x46, 0x49, 0x49, 0x49, 0x31}, // 'S'
	{0x01, 0x01, 0x7F, 0x01, 0x01}, // 'T'
	{0x3F, 0x40, 0x40, 0x40, 0x3F}, // 'U'
	{0x1F, 0x20, 0x40, 0x20, 0x1F}, // 'V'
	{0x3F, 0x40, 0x38, 0x40, 0x3F}, // 'W'
	{0x63, 0x14, 0x08, 0x14, 0x63}, // 'X'
	{0x07, 0x08, 0x70, 0x08, 0x07}, // 'Y'
	{0x61, 0x51, 0x49, 0x45, 0x43}, // 'Z'
	{0x00, 0x7F, 0x41, 0x41, 0x00}, // '['
	{0x02, 0x04, 0x08, 0x10, 0x20}, // '\\'
	{0x00, 0x41, 0x41, 0x7F, 0x00}, // ']'
	{0x04, 0x02, 0x01, 0x02, 0x04}, // '^'
	{0x40, 0x40, 0x40, 0x40, 0x40}, // '_'
	{0x01, 0x02, 0x04, 0x00, 0x00}, // '`'
	{0x20, 0x54, 0x54, 0x54, 0x78}, // 'a'
	{0x7F, 0x48, 0x44, 0x44, 0x38}, // 'b'
	{0x38, 0x44, 0x44, 0x44, 0x20}, // 'c'
	{0x38, 0x44, 0x44, 0x48, 0x7F}, // 'd'
	{0x38, 0x54, 0x54, 0x54, 0x18}, // 'e'
	{0x08, 0x7E, 0x09, 0x01, 0x02}, // 'f'
	{0x08, 0x54, 0x54, 0x54, 0x3C}, // 'g'
	{0x7F, 0x08, 0x04, 0x04, 0x78}, // 'h'
	{0x00, 0x44, 0x7D, 0x40, 0x00}, // 'i'
	{0x20, 0x40, 0x44, 0x3D, 0x00}, // 'j'
	{0x7F, 0x10, 0x28, 0x44, 0x00}, // 'k'
	{0x00, 0x41, 0x7F, 0x40, 0x00}, // 'l'
	{0x7C, 0x04, 0x18, 0x04, 0x7C}, // 'm'
	{0x7C, 0x08, 0x04, 0x04, 0x78}, // 'n'
	{0x38, 0x44, 0x44, 0x44, 0x38}, // 'o'
	{0x7C, 0x14, 0x14, 0x14, 0x08}, // 'p'
	{0x08, 0x14, 0x14, 0x18, 0x7C}, // 'q'
	{0x7C, 0x08, 0x04, 0x04, 0x08}, // 'r'
	{0x48, 0x54, 0x54, 0x54, 0x20}, // 's'
	{0x04, 0x3F, 0x44, 0x40, 0x20}, // 't'
	{0x3C, 0x40, 0x40, 0x20, 0x7C}, // 'u'
	{0x1C, 0x20, 0x40, 0x20, 0x1C}, // 'v'
	{0x3C, 0x40, 0x30, 0x40, 0x3C}, // 'w'
	{0x44, 0x28, 0x10, 0x28, 0x44}, // 'x'
	{0x0C, 0x50, 0x50, 0x50, 0x3C}, // 'y'
	{0x44, 0x64, 0x54, 0x4C, 0x44}, // 'z'
	{0x00, 0x08, 0x36, 0x41, 0x00}, // '{'
	{0x00, 0x00, 0x7F, 0x00, 0x00}, // '|'
	{0x00, 0x41, 0x36, 0x08, 0x00}, // '}'
	{0x02, 0x01, 0x02, 0x04, 0x02}, // '~'
	{0x00, 0x00, 0x00, 0x00, 0x00}, // U+00A0
	{0x00, 0x00, 0x79, 0x00, 0x00}, // '¡'
	{0x18, 0x24, 0x74, 0x2E, 0x24}, // '¢'
	{0x48, 0x7E, 0x49, 0x42, 0x40}, // '£'
	{0x5D, 0x22, 0x22, 0x22, 0x5D}, // '¤'
	{0x15, 0x16, 0x7C, 0x16, 0x15}, // '¥'
	{0x00, 0x00, 0x77, 0x00, 0x00}, // '¦'
	{0x0A, 0x55, 0x55, 0x55, 0x28}, // '§'
	{0x00, 0x01, 0x00, 0x01, 0x00}, // '¨'
	{0x3E, 0x41, 0x41, 0x41, 0x22}, // '©'
	{0x00, 0x0A, 0x0D, 0x0A, 0x04}, // 'ª'
	{0x08, 0x14, 0x2A, 0x14, 0x22}, // '«'
	{0x04, 0x04, 0x04, 0x04, 0x1C}, // '¬'
	{0x00, 0x08, 0x08, 0x08, 0x00}, // U+00AD
	{0x7F, 0x09, 0x19, 0x29, 0x46}, // '®'
	{0x01, 0x01, 0x01, 0x01, 0x01}, // '¯'
	{0x00, 0x02, 0x05, 0x02, 0x00}, // '°'
	{0x44, 0x44, 0x5F, 0x44, 0x44}, // '±'
	{0x00, 0x00, 0x1D, 0x17, 0x00}, // '²'
	{0x00, 0x00, 0x15, 0x1F, 0x00}, // '³'
	{0x00, 0x00, 0x04, 0x02, 0x01}, // '´'
	{0x7E, 0x20, 0x20, 0x10, 0x3E}, // 'µ'
	{0x06, 0x0F, 0x7F, 0x00, 0x7F}, // '¶'
	{0x00, 0x18, 0x18, 0x00, 0x00}, // '·'
	{0x00, 0x40, 0x50, 0x20, 0x00}, // '¸'
	{0x00, 0x00, 0x02, 0x0F, 0x00}, // '¹'
	{0x00, 0x0A, 0x0D, 0x0A, 0x00}, // 'º'
	{0x22, 0x14, 0x2A, 0x14, 0x08}, // '»'
	{0x17, 0x08, 0x34, 0x2A, 0x7D}, // '¼'
	{0x17, 0x08, 0x04, 0x6A, 0x59}, // '½'
	{0x25, 0x12, 0x08, 0x34, 0x62}, // '¾'
	{0x30, 0x48, 0x45, 0x40, 0x20}, // '¿'
	{0x70, 0x29, 0x26, 0x28, 0x70}, // 'À'
	{0x70, 0x28, 0x26, 0x29, 0x70}, // 'Á'
	{0x70, 0x2A, 0x25, 0x2A, 0x70}, // 'Â'
	{0x72, 0x29, 0x26, 0x29, 0x70}, // 'Ã'
	{0x70, 0x29, 0x24, 0x29, 0x70}, // 'Ä'
	{0x70, 0x2A, 0x2D, 0x2A, 0x70}, // 'Å'
	{0x7E, 0x11, 0x7F, 0x49, 0x49}, // 'Æ'
	{0x0E, 0x51, 0x51, 0x71, 0x11}, // 'Ç'
	{0x7C, 0x55, 0x56, 0x54, 0x44}, // 'È'
	{0x7C, 0x55, 0x56, 0x54, 0x44}, // 'É'
	{0x7C, 0x56, 0x55, 0x56, 0x44}, // 'Ê'
	{0x7C, 0x55, 0x54, 0x55, 0x44}, // 'Ë'
	{0x00, 0x45, 0x7E, 0x44, 0x00}, // 'Ì'
	{0x00, 0x44, 0x7E, 0x45, 0x00}, // 'Í'
	{0x00, 0x46, 0x7D, 0x46, 0x00}, // 'Î'
	{0x00, 0x45, 0x7C, 0x45, 0x00}, // 'Ï'
	{0x7F, 0x49, 0x49, 0x41, 0x3E}, // 'Ð'
	{0x7C, 0x0A, 0x11, 0x22, 0x7D}, // 'Ñ'
	{0x38, 0x45, 0x46, 0x44, 0x38}, // 'Ò'
	{0x38, 0x44, 0x46, 0x45, 0x38}, // 'Ó'
	{0x38, 0x46, 0x45, 0x46, 0x38}, // 'Ô'
	{0x38, 0x46, 0x45, 0x46, 0x39}, // 'Õ'
	{0x38, 0x45, 0x44, 0x45, 0x38}, // 'Ö'
	{0x22, 0x14, 0x08, 0x14, 0x22}, // '×'
	{0x2E, 0x51, 0x49, 0x45, 0x3A}, // 'Ø'
	{0x3C, 0x41, 0x42, 0x40, 0x3C}, // 'Ù'
	{0x3C, 0x40, 0x42, 0x41, 0x3C}, // 'Ú'
	{0x3C, 0x42, 0x41, 0x42, 0x3C}, // 'Û'
	{0x3C, 0x41, 0x40, 0x41, 0x3C}, // 'Ü'
	{0x0C, 0x10, 0x62, 0x11, 0x0C}, // 'Ý'
	{0x7F, 0x12, 0x12, 0x12, 0x0C}, // 'Þ'
	{0x40, 0x3E, 0x01, 0x49, 0x36}, // 'ß'
	{0x20, 0x55, 0x56, 0x54, 0x78}, // 'à'
	{0x20, 0x54, 0x56, 0x55, 0x78}, // 'á'
	{0x20, 0x56, 0x55, 0x56, 0x78}, // 'â'
	{0x20, 0x55, 0x56, 0x55, 0x78}, // 'ã'
	{0x20, 0x55, 0x54, 0x55, 0x78}, // 'ä'
	{0x20, 0x56, 0x57, 0x56, 0x78}, // 'å'
	{0x24, 0x54, 0x78, 0x54, 0x58}, // 'æ'
	{0x0C, 0x52, 0x52, 0x72, 0x13}, // 'ç'
	{0x38, 0x55, 0x56, 0x54, 0x18}, // 'è'
	{0x38, 0x54, 0x56, 0x55, 0x18}, // 'é'
	{0x38, 0x56, 0x55, 0x56, 0x18}, // 'ê'
	{0x38, 0x55, 0x54, 0x55, 0x18}, // 'ë'
	{0x00, 0x49, 0x7A, 0x40, 0x00}, // 'ì'
	{0x00, 0x48, 0x7A, 0x41, 0x00}, // 'í'
	{0x00, 0x4A, 0x79, 0x42, 0x00}, // 'î'
	{0x00, 0x4A, 0x78, 0x42, 0x00}, // 'ï'
	{0x31, 0x4A, 0x4E, 0x4A, 0x30}, // 'ð'
	{0x7A, 0x11, 0x0A, 0x09, 0x70}, // 'ñ'
	{0x30, 0x49, 0x4A, 0x48, 0x30}, // 'ò'
	{0x30, 0x48, 0x4A, 0x49, 0x30}, // 'ó'
	{0x30, 0x4A, 0x49, 0x4A, 0x30}, // 'ô'
	{0x30, 0x4A, 0x49, 0x4A, 0x31}, // 'õ'
	{0x30, 0x4A, 0x48, 0x4A, 0x30}, // 'ö'
	{0x08, 0x08, 0x2A, 0x08, 0x08}, // '÷'
	{0x38, 0x64, 0x54, 0x4C, 0x38}, // 'ø'
	{0x38, 0x41, 0x42, 0x20, 0x78}, // 'ù'
	{0x38, 0x40, 0x42, 0x21, 0x78}, // 'ú'
	{0x38, 0x42, 0x41, 0x22, 0x78}, // 'û'
	{0x38, 0x42, 0x40, 0x22, 0x78}, // 'ü'
	{0x0C, 0x50, 0x52, 0x51, 0x3C}, // 'ý'
	{0x7E, 0x14, 0x14, 0x14, 0x08}, // 'þ'
	{0x0C, 0x51, 0x50, 0x51, 0x3C}, // 'ÿ'
}

// big is the 13x16 glyph table for '+' to '9'. Each entry holds the
// 13 columns of the upper page followed by the 13 columns of the lower page.
var big = [...][2 * BigWidth]byte{
	{ // '+'
		0x00, 0x00, 0x80, 0x80, 0x80, 0xF0, 0xF0, 0x80, 0x80, 0x80, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x01, 0x01, 0x01, 0x0F, 0x0F, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00,
	},
	{ // ','
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0xB8, 0xF8, 0x78, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // '-'
		0x00, 0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00,
	},
	{ // '.'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x38, 0x38, 0x38, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // '/'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0xC0, 0xE0, 0x70, 0x38, 0x1C, 0x0E, 0x06,
		0x00, 0x18, 0x1C, 0x0E, 0x07, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // '0'
		0x00, 0xF8, 0xFE, 0x06, 0x03, 0x83, 0xC3, 0x63, 0x33, 0x1E, 0xFE, 0xF8, 0x00,
		0x00, 0x07, 0x1F, 0x1E, 0x33, 0x31, 0x30, 0x30, 0x30, 0x18, 0x1F, 0x07, 0x00,
	},
	{ // '1'
		0x00, 0x00, 0x00, 0x0C, 0x0C, 0x0E, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x30, 0x30, 0x30, 0x3F, 0x3F, 0x30, 0x30, 0x30, 0x00, 0x00,
	},
	{ // '2'
		0x00, 0x1C, 0x1E, 0x07, 0x03, 0x03, 0x83, 0xC3, 0xE3, 0x77, 0x3E, 0x1C, 0x00,
		0x00, 0x30, 0x38, 0x3C, 0x3E, 0x37, 0x33, 0x31, 0x30, 0x30, 0x30, 0x30, 0x00,
	},
	{ // '3'
		0x00, 0x0C, 0x0E, 0x07, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xE7, 0x7E, 0x3C, 0x00,
		0x00, 0x0C, 0x1C, 0x38, 0x30, 0x30, 0x30, 0x30, 0x30, 0x39, 0x1F, 0x0E, 0x00,
	},
	{ // '4'
		0x00, 0xC0, 0xE0, 0x70, 0x38, 0x1C, 0x0E, 0x07, 0xFF, 0xFF, 0x00, 0x00, 0x00,
		0x00, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x3F, 0x3F, 0x03, 0x03, 0x00,
	},
	{ // '5'
		0x00, 0x3F, 0x7F, 0x63, 0x63, 0x63, 0x63, 0x63, 0x63, 0xE3, 0xC3, 0x83, 0x00,
		0x00, 0x0C, 0x1C, 0x38, 0x30, 0x30, 0x30, 0x30, 0x30, 0x38, 0x1F, 0x0F, 0x00,
	},
	{ // '6'
		0x00, 0x00, 0xC0, 0xF0, 0xF8, 0xDC, 0xCE, 0xC7, 0xC3, 0xC3, 0xC3, 0x80, 0x00,
		0x00, 0x07, 0x0F, 0x1F, 0x39, 0x30, 0x30, 0x30, 0x30, 0x30, 0x39, 0x1F, 0x0F,
	},
	{ // '7'
		0x00, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0xC3, 0xF3, 0x3F, 0x0F, 0x03, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x30, 0x3C, 0x0F, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // '8'
		0x00, 0xBC, 0xFE, 0xE7, 0xC3, 0xC3, 0xC3, 0xE7, 0xFE, 0xBC, 0x00, 0x00, 0x00,
		0x0F, 0x1F, 0x39, 0x30, 0x30, 0x30, 0x30, 0x30, 0x39, 0x1F, 0x0F, 0x00, 0x00,
	},
	{ // '9'
		0x00, 0x3C, 0x7E, 0xE7, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xE7, 0xFE, 0xFC, 0x00,
		0x00, 0x00, 0x00, 0x30, 0x30, 0x30, 0x38, 0x1C, 0x0E, 0x07, 0x03, 0x00, 0x00,
	},
}
