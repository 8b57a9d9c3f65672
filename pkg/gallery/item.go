package gallery

// Item is a single photo in the gallery.
type Item struct {
	ID      string `yaml:"id" json:"id"`
	Thumb   string `yaml:"thumb" json:"thumb"`
	Full    string `yaml:"full" json:"full"`
	Alt     string `yaml:"alt" json:"alt"`
	Caption string `yaml:"caption" json:"caption"`
}

// DisplayCaption returns the text shown under the enlarged image:
// the caption, else the alt text, else "".
func (i Item) DisplayCaption() string {
	if i.Caption != "" {
		return i.Caption
	}
	return i.Alt
}
