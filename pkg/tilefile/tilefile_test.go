package tilefile

import (
	"strings"
	"testing"

	"github.com/eternity/tessellate/pkg/model"
)

const sample = `# Type: eternity2
# Dimensions: 1x2
# Difficulty: trivial
# SortOrder: descending
# PrioritizeBorders: true
# PieceFixePosition: 1 0 0 0
1 0 5 0 0
2 0 0 0 5
`

func TestParseReadsDirectivesAndTiles(t *testing.T) {
	def, err := Parse(strings.NewReader(sample), "sample")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Rows != 1 || def.Cols != 2 {
		t.Fatalf("expected 1x2 dimensions, got %dx%d", def.Rows, def.Cols)
	}
	if def.SortOrder != model.Descending {
		t.Fatalf("expected descending sort order, got %v", def.SortOrder)
	}
	if !def.PrioritizeBorders {
		t.Fatal("expected PrioritizeBorders=true")
	}
	if len(def.FixedPieces) != 1 || def.FixedPieces[0].TileID != 1 {
		t.Fatalf("expected one fixed piece for tile 1, got %+v", def.FixedPieces)
	}
	if len(def.Tiles) != 2 {
		t.Fatalf("expected 2 tiles, got %d", len(def.Tiles))
	}
	tile1 := def.Tiles[1]
	if tile1.Edges() != [4]model.Color{0, 5, 0, 0} {
		t.Fatalf("unexpected edges for tile 1: %v", tile1.Edges())
	}
}

func TestParseRejectsMissingDimensions(t *testing.T) {
	_, err := Parse(strings.NewReader("1 0 0 0 0\n"), "broken")
	if err == nil {
		t.Fatal("expected an error when Dimensions directive is absent")
	}
}

func TestParseRejectsTileCountMismatch(t *testing.T) {
	input := "# Dimensions: 2x2\n1 0 0 0 0\n"
	_, err := Parse(strings.NewReader(input), "broken")
	if err == nil {
		t.Fatal("expected an error when tile count doesn't match rows*cols")
	}
}

func TestParseRejectsDuplicateTileID(t *testing.T) {
	input := "# Dimensions: 1x2\n1 0 0 0 0\n1 0 0 0 0\n"
	_, err := Parse(strings.NewReader(input), "broken")
	if err == nil {
		t.Fatal("expected an error on duplicate tile id")
	}
}

func TestParseIgnoresBlankLinesAndPlainComments(t *testing.T) {
	input := "# just a comment with no colon\n\n# Dimensions: 1x1\n\n1 0 0 0 0\n"
	def, err := Parse(strings.NewReader(input), "ok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(def.Tiles) != 1 {
		t.Fatalf("expected 1 tile, got %d", len(def.Tiles))
	}
}
