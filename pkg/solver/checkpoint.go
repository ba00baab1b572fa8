package solver

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/model"
)

// CheckpointStore reads and writes the line-oriented checkpoint text format:
// a header block, a Placement section, a PlacementOrder section, and an
// UnusedPieces section.
type CheckpointStore struct {
	Dir string
}

// NewCheckpointStore returns a store whose Dir receives the timestamped
// backups made by Save. The checkpoint files themselves are read and written
// at common.CheckpointFilePath, whatever Dir is.
func NewCheckpointStore(dir string) *CheckpointStore {
	return &CheckpointStore{Dir: dir}
}

// Save writes cp to its puzzle-named checkpoint file, backing up whatever
// was there first and writing atomically (temp file + rename).
func (cs *CheckpointStore) Save(cp *model.Checkpoint) error {
	path, err := common.CheckpointFilePath(cp.PuzzleName)
	if err != nil {
		return fmt.Errorf("failed to resolve checkpoint path: %w", err)
	}

	if _, err := common.BackupCheckpoint(path, cs.Dir); err != nil {
		common.Warning("checkpoint backup failed for %s: %v", cp.PuzzleName, err)
	}

	data := Encode(cp)
	if err := common.AtomicWriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}

// Load reads and validates a puzzle's checkpoint file. A corrupt checkpoint
// (failing Validate) is reported as an error; callers should treat that as
// "start fresh".
func (cs *CheckpointStore) Load(puzzleName string, totalTiles int) (*model.Checkpoint, error) {
	path, err := common.CheckpointFilePath(puzzleName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cp, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	if err := cp.Validate(totalTiles); err != nil {
		return nil, fmt.Errorf("corrupt checkpoint: %w", err)
	}
	return cp, nil
}

// Exists reports whether a checkpoint file exists for the named puzzle.
func (cs *CheckpointStore) Exists(puzzleName string) bool {
	path, err := common.CheckpointFilePath(puzzleName)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Encode serializes a Checkpoint into the line-oriented text format.
func Encode(cp *model.Checkpoint) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "puzzleName=%s\n", cp.PuzzleName)
	fmt.Fprintf(&buf, "rows=%d\n", cp.Rows)
	fmt.Fprintf(&buf, "cols=%d\n", cp.Cols)
	fmt.Fprintf(&buf, "depth=%d\n", len(cp.PlacementOrder)-cp.NumFixedPieces)
	fmt.Fprintf(&buf, "progressPercent=%g\n", cp.ProgressPercent)
	fmt.Fprintf(&buf, "elapsedMs=%d\n", cp.ElapsedMsThisSession)
	fmt.Fprintf(&buf, "cumulativeComputeMs=%d\n", cp.CumulativeComputeMs)
	fmt.Fprintf(&buf, "numFixedPieces=%d\n", cp.NumFixedPieces)

	buf.WriteString("[Placement]\n")
	// Iterate PlacementOrder rather than the map so output is deterministic
	// and round-trip byte-identical.
	for _, p := range cp.PlacementOrder {
		fmt.Fprintf(&buf, "%d %d %d %d\n", p.Row, p.Col, p.TileID, p.Rotation)
	}

	buf.WriteString("[PlacementOrder]\n")
	for _, p := range cp.PlacementOrder {
		fmt.Fprintf(&buf, "%d %d %d %d\n", p.Row, p.Col, p.TileID, p.Rotation)
	}

	buf.WriteString("[UnusedPieces]\n")
	parts := make([]string, len(cp.UnusedTileIDs))
	for i, id := range cp.UnusedTileIDs {
		parts[i] = strconv.Itoa(int(id))
	}
	buf.WriteString(strings.Join(parts, " "))
	buf.WriteString("\n")

	return buf.Bytes()
}

// Decode parses the line-oriented checkpoint text format back into a
// Checkpoint. It does not call Validate; callers should do that themselves
// so they control the corrupt-checkpoint policy.
func Decode(data []byte) (*model.Checkpoint, error) {
	cp := &model.Checkpoint{PlacementsByCell: make(map[[2]int]model.PlacementInfo)}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	section := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.Trim(line, "[]")
			continue
		}

		switch section {
		case "":
			if err := decodeHeaderLine(cp, line); err != nil {
				return nil, err
			}
		case "Placement":
			p, err := decodePlacementLine(line)
			if err != nil {
				return nil, err
			}
			cp.PlacementsByCell[[2]int{p.Row, p.Col}] = p
		case "PlacementOrder":
			p, err := decodePlacementLine(line)
			if err != nil {
				return nil, err
			}
			cp.PlacementOrder = append(cp.PlacementOrder, p)
		case "UnusedPieces":
			for _, tok := range strings.Fields(line) {
				n, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("invalid unused tile id %q: %w", tok, err)
				}
				cp.UnusedTileIDs = append(cp.UnusedTileIDs, model.TileID(n))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if cp.NumFixedPieces > 0 && cp.NumFixedPieces <= len(cp.PlacementOrder) {
		cp.InitialFixedPieces = append(cp.InitialFixedPieces, cp.PlacementOrder[:cp.NumFixedPieces]...)
	}

	return cp, nil
}

func decodeHeaderLine(cp *model.Checkpoint, line string) error {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return fmt.Errorf("malformed header line: %q", line)
	}
	switch key {
	case "puzzleName":
		cp.PuzzleName = value
	case "rows":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cp.Rows = n
	case "cols":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cp.Cols = n
	case "progressPercent":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		cp.ProgressPercent = f
	case "elapsedMs":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		cp.ElapsedMsThisSession = n
	case "cumulativeComputeMs":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		cp.CumulativeComputeMs = n
	case "numFixedPieces":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cp.NumFixedPieces = n
	case "depth":
		// derived field, recomputed from PlacementOrder/NumFixedPieces; no
		// state to set.
	}
	return nil
}

func decodePlacementLine(line string) (model.PlacementInfo, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return model.PlacementInfo{}, fmt.Errorf("malformed placement line: %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.PlacementInfo{}, err
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.PlacementInfo{}, err
	}
	tileID, err := strconv.Atoi(fields[2])
	if err != nil {
		return model.PlacementInfo{}, err
	}
	rotation, err := strconv.Atoi(fields[3])
	if err != nil {
		return model.PlacementInfo{}, err
	}
	return model.PlacementInfo{Row: row, Col: col, TileID: model.TileID(tileID), Rotation: rotation}, nil
}
