// File: internal/handlers/page_handlers.go
package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"sync"

	"github.com/yuin/goldmark"

	"github.com/rsaadi/chathub/internal/services"
	"github.com/rsaadi/chathub/internal/services/ai"
)

// Template cache to avoid parsing templates on every request
var (
	templateCache     map[string]*template.Template
	templateCacheOnce sync.Once
)

// markdownToHTML renders assistant message content, which providers
// return as markdown, into HTML for the chat page.
func markdownToHTML(content string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		log.Printf("[PageHandler] Markdown rendering failed: %v", err)
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(buf.String())
}

// loadTemplateCache creates separate template sets for each page
func loadTemplateCache() {
	templateCache = make(map[string]*template.Template)

	templates := []string{"index.html", "chat.html", "error.html"}

	for _, tmpl := range templates {
		ts := template.New(tmpl).Funcs(template.FuncMap{
			"markdown": markdownToHTML,
		})

		ts, err := ts.ParseFiles("web/templates/layout.html")
		if err != nil {
			log.Fatalf("Error parsing layout for %s: %v", tmpl, err)
		}

		ts, err = ts.ParseFiles("web/templates/" + tmpl)
		if err != nil {
			log.Fatalf("Error parsing %s: %v", tmpl, err)
		}

		templateCache[tmpl] = ts
	}
}

// renderTemplate uses the individual template cache
func renderTemplate(w http.ResponseWriter, tmpl string, data map[string]interface{}) {
	templateCacheOnce.Do(loadTemplateCache)

	if data == nil {
		data = make(map[string]interface{})
	}

	t, ok := templateCache[tmpl]
	if !ok {
		log.Printf("Template %s not found in cache", tmpl)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("Error rendering template %s: %v", tmpl, err)
	}
}

type PageHandler struct {
	ChatService *services.ChatService
}

func NewPageHandler(cs *services.ChatService) *PageHandler {
	return &PageHandler{ChatService: cs}
}

// ShowIndexPage renders the chat list.
func (h *PageHandler) ShowIndexPage(w http.ResponseWriter, r *http.Request) {
	chats, err := h.ChatService.GetAllChats(r.Context())
	if err != nil {
		h.ShowErrorPage(w, "500", "Internal Error", "Could not load chats.")
		return
	}
	renderTemplate(w, "index.html", map[string]interface{}{
		"Title":     "ChatHub",
		"Chats":     chats,
		"Providers": ai.Providers(),
	})
}

// ShowChatPage renders one conversation with assistant markdown rendered
// to HTML.
func (h *PageHandler) ShowChatPage(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDFromRequest(w, r)
	if !ok {
		return
	}

	chatRecord, err := h.ChatService.GetChat(r.Context(), chatID)
	if err != nil {
		h.ShowErrorPage(w, "404", "Chat Not Found", "The chat you are looking for does not exist.")
		return
	}

	messages, err := h.ChatService.GetChatMessages(r.Context(), chatID)
	if err != nil {
		h.ShowErrorPage(w, "500", "Internal Error", "Could not load messages.")
		return
	}

	renderTemplate(w, "chat.html", map[string]interface{}{
		"Title":    chatRecord.Title,
		"Chat":     chatRecord,
		"Messages": messages,
	})
}

// ShowErrorPage renders the shared error template.
func (h *PageHandler) ShowErrorPage(w http.ResponseWriter, code, title, message string) {
	renderTemplate(w, "error.html", map[string]interface{}{
		"Code":    code,
		"Title":   title,
		"Message": message,
	})
}
