package css

import "sync"

// userAgentCSS is the minimal user agent stylesheet: which elements default
// to block-level boxes and which are not rendered at all. It sits below all
// author sheets in the cascade.
const userAgentCSS = `
html, body, div, p, h1, h2, h3, h4, h5, h6,
ul, ol, li, dl, dt, dd, blockquote, pre, form, fieldset,
header, footer, nav, main, section, article, aside, figure, figcaption,
table, hr, address {
	display: block;
}
head, style, script, title, meta, link, base, template {
	display: none;
}
body {
	margin-top: 8px;
	margin-right: 8px;
	margin-bottom: 8px;
	margin-left: 8px;
}
`

var (
	uaSheetOnce sync.Once
	uaSheet     *StyleSheet
)

// UserAgentSheet returns the parsed user agent stylesheet. The sheet is
// shared and must not be mutated.
func UserAgentSheet() *StyleSheet {
	uaSheetOnce.Do(func() {
		uaSheet = NewStyleSheet(userAgentCSS, nil)
	})
	return uaSheet
}
