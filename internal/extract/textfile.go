package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yungbote/vedicqa/internal/platform/logger"
)

// TextFileSource reads a UTF-8 text dump of a source document. Pages
// are separated by form-feed characters; a file with no form feeds is
// treated as a single page.
type TextFileSource struct {
	path    string
	chunker *Chunker
	log     *logger.Logger
}

func NewTextFileSource(path string, chunker *Chunker, baseLog *logger.Logger) *TextFileSource {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &TextFileSource{
		path:    path,
		chunker: chunker,
		log:     baseLog.With("component", "text_source", "path", path),
	}
}

func (s *TextFileSource) Chunks() ([]Chunk, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", s.path, err)
	}
	pages := strings.Split(string(raw), "\f")
	for i := range pages {
		pages[i] = CleanText(pages[i])
	}
	sections := DetectSections(pages)
	chunks := s.chunker.ChunkSections(sections, filepath.Base(s.path))
	s.log.Info("extracted chunks", "pages", len(pages), "sections", len(sections), "chunks", len(chunks))
	return chunks, nil
}
