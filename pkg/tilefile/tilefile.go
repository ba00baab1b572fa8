// Package tilefile parses puzzle text files into model.PuzzleDefinition
// values. The core solver never touches the filesystem or a text grammar
// directly; this package is the one place that bridges the two.
package tilefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/eternity/tessellate/pkg/model"
)

// ParseFile opens path and parses it as a puzzle definition.
func ParseFile(path string) (*model.PuzzleDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilefile: failed to open %s: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(fileBase(path), fileExt(path))
	def, err := Parse(f, name)
	if err != nil {
		return nil, fmt.Errorf("tilefile: %s: %w", path, err)
	}
	return def, nil
}

// Parse reads the puzzle grammar from r. name seeds PuzzleDefinition.Name,
// overridden by nothing in the grammar itself - the file has no name field.
func Parse(r io.Reader, name string) (*model.PuzzleDefinition, error) {
	def := &model.PuzzleDefinition{
		Name:      name,
		Tiles:     make(map[model.TileID]model.Tile),
		SortOrder: model.Ascending,
	}

	rows, cols := 0, 0
	dimensionsSeen := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			directive, value, ok := splitDirective(line)
			if !ok {
				continue // a plain comment, not a directive
			}
			switch strings.ToLower(directive) {
			case "type":
				// Recorded for diagnostics only; the core treats all puzzle
				// families identically.
			case "dimensions":
				r, c, err := parseDimensions(value)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				rows, cols = r, c
				dimensionsSeen = true
			case "difficulty":
				// Informational only.
			case "sortorder":
				switch strings.ToLower(strings.TrimSpace(value)) {
				case "descending":
					def.SortOrder = model.Descending
				case "ascending", "":
					def.SortOrder = model.Ascending
				default:
					return nil, fmt.Errorf("line %d: unknown SortOrder %q", lineNo, value)
				}
			case "prioritizeborders":
				b, err := parseBool(value)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				def.PrioritizeBorders = b
			case "verbose":
				b, err := parseBool(value)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				def.Verbose = b
			case "piecefixeposition":
				fp, err := parseFixedPiece(value)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				def.FixedPieces = append(def.FixedPieces, fp)
			default:
				// Unknown directive: ignored like any other comment.
			}
			continue
		}

		tile, err := parseTileLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, dup := def.Tiles[tile.ID]; dup {
			return nil, fmt.Errorf("line %d: duplicate tile id %d", lineNo, tile.ID)
		}
		def.Tiles[tile.ID] = tile
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning puzzle file: %w", err)
	}

	if !dimensionsSeen {
		return nil, fmt.Errorf("missing required \"# Dimensions: RxC\" directive")
	}
	def.Rows, def.Cols = rows, cols

	if rows*cols != len(def.Tiles) {
		return nil, fmt.Errorf("dimensions %dx%d require %d tiles, found %d", rows, cols, rows*cols, len(def.Tiles))
	}

	return def, nil
}

func splitDirective(line string) (directive, value string, ok bool) {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	idx := strings.Index(body, ":")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(body[:idx]), strings.TrimSpace(body[idx+1:]), true
}

func parseDimensions(value string) (rows, cols int, err error) {
	parts := strings.SplitN(strings.ToLower(value), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid Dimensions value %q, want RxC", value)
	}
	rows, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row count in Dimensions %q: %w", value, err)
	}
	cols, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column count in Dimensions %q: %w", value, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("Dimensions must be positive, got %dx%d", rows, cols)
	}
	return rows, cols, nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", value)
	}
}

func parseFixedPiece(value string) (model.PlacementInfo, error) {
	fields := strings.Fields(value)
	if len(fields) != 4 {
		return model.PlacementInfo{}, fmt.Errorf("PieceFixePosition expects \"pieceId row col rotation\", got %q", value)
	}
	nums, err := parseInts(fields)
	if err != nil {
		return model.PlacementInfo{}, fmt.Errorf("PieceFixePosition: %w", err)
	}
	return model.PlacementInfo{TileID: model.TileID(nums[0]), Row: nums[1], Col: nums[2], Rotation: nums[3]}, nil
}

func parseTileLine(line string) (model.Tile, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return model.Tile{}, fmt.Errorf("expected \"tileId N E S W\", got %q", line)
	}
	nums, err := parseInts(fields)
	if err != nil {
		return model.Tile{}, err
	}
	return model.NewTile(model.TileID(nums[0]), model.Color(nums[1]), model.Color(nums[2]), model.Color(nums[3]), model.Color(nums[4])), nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		out[i] = n
	}
	return out, nil
}

func fileBase(path string) string {
	i := strings.LastIndexAny(path, "/\\")
	return path[i+1:]
}

func fileExt(path string) string {
	base := fileBase(path)
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return ""
	}
	return base[i:]
}
