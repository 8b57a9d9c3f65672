package site

// DefaultScrollThreshold is the vertical scroll offset, in pixels, past which
// the header switches to its compact "is-scrolled" style.
const DefaultScrollThreshold = 16

// ScrolledClass is toggled on the header once the threshold is passed.
const ScrolledClass = "is-scrolled"

// Header describes the sticky page header.
type Header struct {
	Title           string
	ScrollThreshold int
}

// NewHeader returns a header with the default scroll threshold.
func NewHeader(title string) Header {
	return Header{Title: title, ScrollThreshold: DefaultScrollThreshold}
}

// Scrolled reports whether the header is in its scrolled state at offset y.
func (h Header) Scrolled(y int) bool {
	return y > h.ScrollThreshold
}

// Footer carries the copyright line.
type Footer struct {
	Owner string
	Year  int
}

// NewFooter stamps the footer with the current year read from clock.
func NewFooter(owner string, clock Clock) Footer {
	return Footer{Owner: owner, Year: clock.Now().Year()}
}
