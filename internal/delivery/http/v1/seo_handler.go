package v1

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"go-fontaneria-backend/internal/delivery/http/response"
	"go-fontaneria-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct {
	contentUC domain.ContentUsecase
}

// NewSEOHandler registers the SEO surface: the sitemap at the site root
// and the structured-data endpoint under the API group.
func NewSEOHandler(engine *gin.Engine, public *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &SEOHandler{contentUC: contentUC}

	engine.GET("/sitemap.xml", handler.Sitemap)
	public.GET("/seo/negocio", handler.BusinessJSONLD)
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap builds the sitemap from the static pages plus one entry per
// service and service-area page, using the configured site URL as base.
func (h *SEOHandler) Sitemap(c *gin.Context) {
	ctx := c.Request.Context()

	business, err := h.contentUC.GetBusiness(ctx)
	if err != nil {
		c.Error(err)
		return
	}
	base := strings.TrimRight(business.URL, "/")

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: base + "/", ChangeFreq: "weekly", Priority: 1.0},
			{Loc: base + "/servicios", ChangeFreq: "weekly", Priority: 0.9},
			{Loc: base + "/zonas", ChangeFreq: "monthly", Priority: 0.7},
			{Loc: base + "/contacto", ChangeFreq: "monthly", Priority: 0.8},
		},
	}

	services, err := h.contentUC.ListServices(ctx, domain.LocaleES)
	if err != nil {
		c.Error(err)
		return
	}
	for _, s := range services {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/servicios/" + s.Slug,
			ChangeFreq: "monthly",
			Priority:   0.8,
		})
	}

	cities, err := h.contentUC.ListCities(ctx)
	if err != nil {
		c.Error(err)
		return
	}
	for _, city := range cities {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/zonas/" + city.Slug,
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

// BusinessJSONLD serves schema.org LocalBusiness structured data built
// from the live business config, ready for the frontend to inline.
func (h *SEOHandler) BusinessJSONLD(c *gin.Context) {
	business, err := h.contentUC.GetBusiness(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	ld := gin.H{
		"@context":    "https://schema.org",
		"@type":       "Plumber",
		"name":        business.Name,
		"description": business.Title,
		"url":         business.URL,
		"telephone":   business.Contact.Phone,
		"email":       business.Contact.Email,
		"address": gin.H{
			"@type":          "PostalAddress",
			"streetAddress":  business.Contact.Address,
			"addressCountry": "ES",
		},
	}

	if business.ServiceArea.Coordinates.Latitude != 0 || business.ServiceArea.Coordinates.Longitude != 0 {
		ld["geo"] = gin.H{
			"@type":     "GeoCoordinates",
			"latitude":  business.ServiceArea.Coordinates.Latitude,
			"longitude": business.ServiceArea.Coordinates.Longitude,
		}
	}

	if business.Stats.GoogleReviewCount > 0 {
		ld["aggregateRating"] = gin.H{
			"@type":       "AggregateRating",
			"ratingValue": fmt.Sprintf("%.1f", business.Stats.GoogleReviewScore),
			"reviewCount": business.Stats.GoogleReviewCount,
		}
	}

	var sameAs []string
	for _, link := range []string{business.Social.Facebook, business.Social.Instagram, business.Social.LinkedIn} {
		if link != "" {
			sameAs = append(sameAs, link)
		}
	}
	if len(sameAs) > 0 {
		ld["sameAs"] = sameAs
	}

	response.Data(c, http.StatusOK, ld)
}
