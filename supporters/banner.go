package supporters

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Banner is the supporters bar as found in a page HTML snapshot.
type Banner struct {
	Present bool   `json:"present"`
	Text    string `json:"text"`
	Name    string `json:"name"`
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseBanner extracts the banner and supporter name from page HTML.
func ParseBanner(html, bannerSel, nameSel string) (Banner, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Banner{}, err
	}

	banner := Banner{}
	bar := doc.Find(bannerSel).First()
	if bar.Length() > 0 {
		banner.Present = true
		banner.Text = collapseSpaces(bar.Text())
	}

	name := doc.Find(nameSel).First()
	if name.Length() > 0 {
		banner.Name = collapseSpaces(name.Text())
	}

	return banner, nil
}
