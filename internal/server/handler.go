// Package server exposes the catalog and the printable booklet over HTTP
// so the booklet can be printed from a browser.
package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zhubert/songbook/internal/booklet"
	"github.com/zhubert/songbook/internal/song"
)

// Handler serves one loaded book. The book never changes, so the booklet
// is rendered once up front.
type Handler struct {
	book *song.Book
	html []byte
	text []byte
}

// NewHandler renders the booklet for book.
func NewHandler(book *song.Book) (*Handler, error) {
	doc := booklet.Build(book.Catalog, book.Metadata)

	var html, text bytes.Buffer
	if err := booklet.WriteHTML(&html, doc); err != nil {
		return nil, err
	}
	if err := booklet.WriteText(&text, doc, booklet.DefaultTextWidth); err != nil {
		return nil, err
	}
	return &Handler{book: book, html: html.Bytes(), text: text.Bytes()}, nil
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/booklet", h.bookletHTML)     // GET /booklet
	rg.GET("/booklet.txt", h.bookletText) // GET /booklet.txt
	rg.GET("/api/songs", h.listSongs)     // GET /api/songs
	rg.GET("/api/songs/:id", h.getSong)   // GET /api/songs/:id
	rg.GET("/health", h.health)
}

func (h *Handler) bookletHTML(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.html)
}

func (h *Handler) bookletText(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", h.text)
}

func (h *Handler) listSongs(c *gin.Context) {
	songs := h.book.Catalog.Songs()
	c.JSON(http.StatusOK, gin.H{
		"title":    h.book.Metadata.Title,
		"subtitle": h.book.Metadata.Subtitle,
		"total":    len(songs),
		"items":    songs,
	})
}

func (h *Handler) getSong(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid song id"})
		return
	}
	s, ok := h.book.Catalog.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "songs": h.book.Catalog.Len(), "source": h.book.Source})
}
