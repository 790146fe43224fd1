package main

import (
	"encoding/xml"
	"fmt"
	"time"

	"promptvault/repositories"
)

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// buildSitemap renders the homepage, the admin page, and one entry per
// prompt into a sitemap urlset document.
func buildSitemap(siteURL string, refs []repositories.PromptRef, now time.Time) ([]byte, error) {
	set := urlSet{XMLNS: sitemapXMLNS}

	set.URLs = append(set.URLs, urlEntry{
		Loc:        siteURL + "/",
		LastMod:    now.Format("2006-01-02"),
		ChangeFreq: "daily",
		Priority:   "1.0",
	})
	set.URLs = append(set.URLs, urlEntry{
		Loc:        siteURL + "/admin",
		ChangeFreq: "monthly",
		Priority:   "0.3",
	})
	for _, ref := range refs {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        fmt.Sprintf("%s/prompt/%s", siteURL, ref.ID.Hex()),
			LastMod:    ref.CreatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
