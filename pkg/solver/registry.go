package solver

import (
	"fmt"
	"sort"
	"sync"

	"github.com/eternity/tessellate/pkg/model"
)

// OrdererFactory builds a ValueOrderer for a puzzle, so a run can select
// its value-ordering heuristic by name (RunConfig.Strategy). Every worker
// of a run uses the same named heuristic.
type OrdererFactory func(dm *DomainManager, tiles map[model.TileID]model.Tile, idx *EdgeCompatibilityIndex) *ValueOrderer

// OrdererInfo is the metadata recorded for a registered heuristic.
type OrdererInfo struct {
	Name        string
	Description string
	Factory     OrdererFactory
}

var (
	orderers     = make(map[string]OrdererInfo)
	orderersLock sync.RWMutex
)

// RegisterOrderer adds a named value-ordering heuristic to the registry.
func RegisterOrderer(name, description string, factory OrdererFactory) {
	orderersLock.Lock()
	defer orderersLock.Unlock()
	orderers[name] = OrdererInfo{Name: name, Description: description, Factory: factory}
}

// GetOrderer builds a fresh ValueOrderer from the named strategy.
func GetOrderer(name string, dm *DomainManager, tiles map[model.TileID]model.Tile, idx *EdgeCompatibilityIndex) (*ValueOrderer, error) {
	orderersLock.RLock()
	info, ok := orderers[name]
	orderersLock.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown ordering strategy: %s", name)
	}
	return info.Factory(dm, tiles, idx), nil
}

// ListOrderers returns all registered heuristics sorted by name.
func ListOrderers() []OrdererInfo {
	orderersLock.RLock()
	defer orderersLock.RUnlock()

	list := make([]OrdererInfo, 0, len(orderers))
	for _, info := range orderers {
		list = append(list, info)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

const (
	StrategyMRVLCV        = "mrv-lcv"
	StrategyMRVAscending  = "mrv-ascending"
	StrategyMRVDescending = "mrv-descending"
)

func init() {
	RegisterOrderer(StrategyMRVLCV, "least-constraining-value ordering with ascending tile-id tiebreak", func(dm *DomainManager, tiles map[model.TileID]model.Tile, idx *EdgeCompatibilityIndex) *ValueOrderer {
		return NewValueOrderer(dm, tiles, idx, model.Ascending)
	})
	RegisterOrderer(StrategyMRVAscending, "least-constraining-value ordering with ascending tile-id tiebreak", func(dm *DomainManager, tiles map[model.TileID]model.Tile, idx *EdgeCompatibilityIndex) *ValueOrderer {
		return NewValueOrderer(dm, tiles, idx, model.Ascending)
	})
	RegisterOrderer(StrategyMRVDescending, "least-constraining-value ordering with descending tile-id tiebreak", func(dm *DomainManager, tiles map[model.TileID]model.Tile, idx *EdgeCompatibilityIndex) *ValueOrderer {
		return NewValueOrderer(dm, tiles, idx, model.Descending)
	})
}
