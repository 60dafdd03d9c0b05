// Package i18n holds the static UI string table (Spanish/English) served to
// the frontend and used for localized API messages, plus Accept-Language
// negotiation for the content endpoints.
package i18n

import (
	"golang.org/x/text/language"
)

// Entry is one translatable string.
type Entry struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

// Table maps dot-separated keys ("nav.home", "common.call") to their
// translations. Content translations live in the content files, not here.
var Table = map[string]Entry{
	"nav.home":     {ES: "Inicio", EN: "Home"},
	"nav.services": {ES: "Servicios", EN: "Services"},
	"nav.gallery":  {ES: "Galería", EN: "Gallery"},
	"nav.about":    {ES: "Sobre Mí", EN: "About"},
	"nav.contact":  {ES: "Contacto", EN: "Contact"},

	"common.call":         {ES: "Llamar", EN: "Call"},
	"common.callNow":      {ES: "Llamar Ahora", EN: "Call Now"},
	"common.whatsapp":     {ES: "WhatsApp", EN: "WhatsApp"},
	"common.requestQuote": {ES: "Pedir Presupuesto", EN: "Request Quote"},
	"common.learnMore":    {ES: "Saber Más", EN: "Learn More"},
	"common.viewAll":      {ES: "Ver Todos", EN: "View All"},
	"common.back":         {ES: "Volver", EN: "Back"},
	"common.loading":      {ES: "Cargando...", EN: "Loading..."},
	"common.send":         {ES: "Enviar", EN: "Send"},
	"common.sending":      {ES: "Enviando...", EN: "Sending..."},
	"common.readMore":     {ES: "Leer más", EN: "Read more"},

	"hero.title":     {ES: "Fontanero Profesional en Gondomar", EN: "Professional Plumber in Gondomar"},
	"hero.subtitle":  {ES: "Servicio de fontanería de confianza para hogares y negocios", EN: "Trusted plumbing service for homes and businesses"},
	"hero.cta":       {ES: "Solicitar Presupuesto Gratis", EN: "Request Free Quote"},
	"hero.emergency": {ES: "Urgencias 24h", EN: "24h Emergencies"},

	"contact.success": {ES: "Mensaje enviado correctamente", EN: "Message sent successfully"},
	"contact.error":   {ES: "Error al enviar el mensaje", EN: "Failed to send the message"},
}

// T looks up a key for the given language, falling back to Spanish and then
// to the key itself so a missing translation never renders as empty text.
func T(lang, key string) string {
	entry, ok := Table[key]
	if !ok {
		return key
	}
	if lang == "en" && entry.EN != "" {
		return entry.EN
	}
	if entry.ES != "" {
		return entry.ES
	}
	return key
}

// Strings returns the flat key→string table for one language, for the
// frontend to fetch in a single request.
func Strings(lang string) map[string]string {
	out := make(map[string]string, len(Table))
	for key := range Table {
		out[key] = T(lang, key)
	}
	return out
}

var matcher = language.NewMatcher([]language.Tag{
	language.Spanish, // default
	language.English,
})

// Negotiate picks "es" or "en" from an explicit lang parameter or an
// Accept-Language header. The explicit parameter wins; anything
// unrecognized falls back to Spanish.
func Negotiate(langParam, acceptLanguage string) string {
	switch langParam {
	case "es", "en":
		return langParam
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "es"
	}
	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()
	if base.String() == "en" {
		return "en"
	}
	return "es"
}
