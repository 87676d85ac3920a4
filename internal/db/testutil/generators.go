// Package testutil provides shared test utilities and generators for property-based testing.
// All string generators are intentionally aggressive to catch edge cases.
package testutil

import (
	"strings"

	"pgregory.net/rapid"
)

// ArbitraryString generates truly arbitrary strings including:
// - Empty strings
// - Null bytes
// - Unicode (CJK, Arabic, emoji)
// - Control characters
// - SQL injection attempts
// - LIKE wildcard characters
// - Very long strings
func ArbitraryString() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.String(),                              // Truly arbitrary (rapid's default)
		rapid.Just(""),                              // Empty string
		rapid.Just("\x00"),                          // Single null byte
		rapid.Just("test\x00test"),                  // Embedded null
		rapid.StringMatching(`[a-zA-Z0-9 ]{0,100}`), // Normal alphanumeric
		rapid.StringMatching(`[\x01-\x1F]{1,10}`),   // Control characters
		arbitrarySQLInjection(),                     // SQL injection attempts
		arbitraryLikeWildcards(),                    // LIKE wildcard edge cases
		arbitraryUnicode(),                          // Unicode edge cases
		arbitraryWhitespace(),                       // Whitespace variations
		arbitraryLongString(),                       // Long strings
	)
}

// ValidNoteTitle generates titles that pass validation: non-blank after
// trimming and at most 255 characters.
func ValidNoteTitle() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		core := rapid.StringMatching(`[a-zA-Z0-9][a-zA-Z0-9 _\-.,!?]{0,60}`).Draw(t, "title_core")
		return strings.TrimSpace(core)
	}).Filter(func(s string) bool {
		return s != "" && len([]rune(s)) <= 255
	})
}

// InvalidNoteTitle generates titles that fail validation: blank after
// trimming or longer than 255 characters.
func InvalidNoteTitle() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.StringMatching(`[ \t\n]{1,10}`),
		rapid.Custom(func(t *rapid.T) string {
			length := rapid.IntRange(256, 600).Draw(t, "overlong_len")
			return strings.Repeat("x", length)
		}),
	)
}

// ArbitraryNoteContent generates content for property testing.
// Can be empty or contain any characters.
func ArbitraryNoteContent() *rapid.Generator[string] {
	return ArbitraryString()
}

// ArbitrarySearchQuery generates strings suitable for substring search
// testing. Includes the edge cases that could break LIKE-based search.
func ArbitrarySearchQuery() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.String(),
		rapid.Just(""),
		rapid.StringMatching(`[a-zA-Z0-9 ]{1,30}`),
		arbitrarySQLInjection(),
		arbitraryLikeWildcards(),
		arbitraryUnicode(),
		arbitraryWhitespace(),
	)
}

// arbitrarySQLInjection generates common SQL injection patterns
func arbitrarySQLInjection() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		`' OR 1=1 --`,
		`'; DROP TABLE notes; --`,
		`" OR "1"="1`,
		`1; SELECT * FROM notes`,
		`admin'--`,
		`' UNION SELECT * FROM notes --`,
		`'; TRUNCATE TABLE notes; --`,
		`' OR ''='`,
		`1' AND '1'='1`,
		`%27%20OR%20%271%27%3D%271`,
		`<script>alert('xss')</script>`,
		`' OR 1=1#`,
		`admin' #`,
		`' AND 1=0 UNION SELECT 1,2,3 --`,
	})
}

// arbitraryLikeWildcards generates strings containing LIKE metacharacters
// that must be treated literally by substring search.
func arbitraryLikeWildcards() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		`%`,
		`%%`,
		`_`,
		`__`,
		`%_%`,
		`100%`,
		`50% off`,
		`a_b`,
		`snake_case_name`,
		`\`,
		`\\`,
		`\%`,
		`\_`,
		`C:\notes\file`,
		`%' OR '1'='1`,
		`[abc]`,
		`*star*`,
	})
}

// arbitraryUnicode generates various Unicode edge cases
func arbitraryUnicode() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		"日本語",                            // Japanese
		"中文测试",                           // Chinese
		"العربية",                        // Arabic (RTL)
		"עברית",                          // Hebrew (RTL)
		"🔥🎉💻🚀",                           // Emoji
		"emoji🔥in🎉middle",                // Mixed emoji
		"Ñoño",                           // Spanish
		"Zürich",                         // German umlaut
		"Москва",                         // Cyrillic
		"Ελληνικά",                       // Greek
		"한국어",                            // Korean
		"\u200B",                         // Zero-width space
		"\uFEFF",                         // BOM
		"a\u0300",                        // Combining diacritical
		"\u202E" + "reversed" + "\u202C", // RTL override
		"🧑‍💻",                            // ZWJ sequence (person + computer)
		"é" + "\u0301",                   // Double combining
		"test\u00A0space",                // Non-breaking space
		"line\u2028separator",            // Line separator
		"math∑∏∫",                        // Mathematical symbols
	})
}

// arbitraryWhitespace generates various whitespace patterns
func arbitraryWhitespace() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		" ",
		"  ",
		"\t",
		"\n",
		"\r",
		"\r\n",
		" \t \n ",
		"  test  ",
		"\ttest\t",
		"line1\nline2",
		"line1\r\nline2",
		"\u00A0", // Non-breaking space
		"\u2003", // Em space
		"\u3000", // Ideographic space
		"\v",     // Vertical tab
		"\f",     // Form feed
	})
}

// arbitraryLongString generates very long strings to test limits
func arbitraryLongString() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		length := rapid.SampledFrom([]int{
			1000,   // 1KB
			10000,  // 10KB
			100000, // 100KB
		}).Draw(t, "length")

		// Generate a repeating pattern
		base := "abcdefghij"
		result := make([]byte, length)
		for i := 0; i < length; i++ {
			result[i] = base[i%len(base)]
		}
		return string(result)
	})
}
