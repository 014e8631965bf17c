package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/bribes/minecraft-avatar-api/internal/imaging"
)

//go:embed templates/*.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

// Example textures shown on the landing page.
const (
	exampleCape = "953cac8b779fe41383e675ee2b86071a71658f2180f56fbce8aa315ea70e2ed6"
	exampleFace = "663904192ee4ca0df05dce2b2af677b3290db7311648b125fac140f616641dfa"
)

type indexData struct {
	CapeWidth   int
	FaceSize    int
	CapeExample string
	FaceExample string
}

// handleIndex shows the homepage.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := indexData{
		CapeWidth:   imaging.DefaultCapeWidth,
		FaceSize:    imaging.DefaultFaceSize,
		CapeExample: exampleCape,
		FaceExample: exampleFace,
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, p); err != nil {
		loggerFrom(r.Context(), s.logger).Error("failed to render index", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}
