// internal/storage/storage.go
package storage

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/touchline/goalviz/internal/scene"
	"github.com/touchline/goalviz/pkg/core"
)

// Artifact is one rendered diagram ready to be stored
type Artifact struct {
	RenderID  string
	Name      string // file stem, see Slug
	CreatedAt time.Time
	Match     core.MatchInfo

	SVG   []byte
	Scene *scene.Scene // draw commands of the pitch; nil skips the export
}

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	Save(a *Artifact) error
}

// Exported is an optional interface for backends that write files.
type Exported interface {
	ExportedPaths() []string
}

// Slug builds a file stem from the match, e.g. "argentina_vs_serbia_and_montenegro_2006".
func Slug(info core.MatchInfo) string {
	parts := []string{info.HomeTeam, "vs", info.AwayTeam}
	if info.Year > 0 {
		parts = append(parts, strconv.Itoa(info.Year))
	}

	var sb strings.Builder
	sep := false
	for _, r := range strings.Join(parts, " ") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			sep = false
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sep = true
	}

	if sb.Len() == 0 || !hasTeams(info) {
		return "goal"
	}
	return sb.String()
}

func hasTeams(info core.MatchInfo) bool {
	return strings.TrimSpace(info.HomeTeam) != "" || strings.TrimSpace(info.AwayTeam) != ""
}
