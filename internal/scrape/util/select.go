package util

import "github.com/PuerkitoBio/goquery"

// Board markup drifts constantly, so every field is extracted through
// an ordered selector list: first selector that yields anything wins.

func FirstText(s *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if t := CleanText(s.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func FirstAttr(s *goquery.Selection, attr string, selectors ...string) string {
	for _, sel := range selectors {
		if v, ok := s.Find(sel).First().Attr(attr); ok && CleanText(v) != "" {
			return CleanText(v)
		}
	}
	return ""
}

// FirstCards returns the card set from the first selector that matches
// anything at all.
func FirstCards(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, sel := range selectors {
		if s := doc.Find(sel); s.Length() > 0 {
			return s
		}
	}
	return doc.Find(selectors[len(selectors)-1])
}
