package registry

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ResourceError wraps a failure to load or parse a resource file. Startup
// errors of this kind are fatal at startup.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("registry: %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// excludedRegistryDirs are directory names that never contribute registry
// entries.
var excludedRegistryDirs = map[string]bool{
	"tags":       true,
	"datapacks":  true,
	"loot_table": true,
	"recipe":     true,
	"advancement": true,
}

// Load walks resourceRoot and builds an immutable Snapshot: registries
// from generated/data/<ns>/<registry>/.../<id>.json, tags from
// generated/data/<ns>/tags/.../<tag>.json, and the block-state table from
// generated/reports/blocks.json.
func Load(resourceRoot string) (*Snapshot, error) {
	blockStates, err := loadBlockStates(filepath.Join(resourceRoot, "generated", "reports", "blocks.json"))
	if err != nil {
		return nil, err
	}

	registries, order, err := loadRegistries(filepath.Join(resourceRoot, "generated", "data"))
	if err != nil {
		return nil, err
	}

	tags, err := loadTags(filepath.Join(resourceRoot, "generated", "data"), registries, blockStates)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		RegistryOrder: order,
		Registries:    registries,
		Tags:          tags,
		BlockStates:   blockStates,
	}, nil
}

func loadRegistries(dataRoot string) (map[string]*Registry, []string, error) {
	registries := make(map[string]*Registry)
	var order []string

	namespaces, err := os.ReadDir(dataRoot)
	if err != nil {
		return nil, nil, &ResourceError{Path: dataRoot, Err: err}
	}

	for _, nsEntry := range namespaces {
		if !nsEntry.IsDir() {
			continue
		}
		namespace := nsEntry.Name()
		nsRoot := filepath.Join(dataRoot, namespace)

		err := filepath.WalkDir(nsRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if excludedRegistryDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".json" {
				return nil
			}

			rel, err := filepath.Rel(nsRoot, path)
			if err != nil {
				return err
			}
			dir := filepath.Dir(rel)
			if dir == "." {
				// An identifier file directly under the namespace has no
				// registry name and is not a registry entry.
				return nil
			}
			for _, part := range strings.Split(dir, string(filepath.Separator)) {
				if excludedRegistryDirs[part] {
					return nil
				}
			}

			registryName := filepath.ToSlash(dir)
			registryID := "minecraft:" + registryName
			identifier := strings.TrimSuffix(filepath.Base(path), ".json")
			entryID := namespace + ":" + identifier

			reg, ok := registries[registryID]
			if !ok {
				reg = &Registry{ID: registryID}
				registries[registryID] = reg
				order = append(order, registryID)
			}
			reg.Entries = append(reg.Entries, Entry{ID: entryID})
			return nil
		})
		if err != nil {
			return nil, nil, &ResourceError{Path: nsRoot, Err: err}
		}
	}

	// Insertion order above depends on directory walk order, which WalkDir
	// already guarantees is lexical per directory level; sort the
	// top-level registry-id order list for a deterministic snapshot build
	// across namespaces, which WalkDir does not interleave.
	sort.Strings(order)
	return registries, order, nil
}

type blocksReportState struct {
	ID         int32             `json:"id"`
	Default    bool              `json:"default"`
	Properties map[string]string `json:"properties"`
}

type blocksReportEntry struct {
	States []blocksReportState `json:"states"`
}

func loadBlockStates(path string) (*BlockStateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer f.Close()

	var report map[string]blocksReportEntry
	if err := json.NewDecoder(f).Decode(&report); err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}

	table := NewBlockStateTable()
	for blockID, entry := range report {
		states := make([]BlockState, 0, len(entry.States))
		for _, s := range entry.States {
			states = append(states, BlockState{
				Properties: s.Properties,
				ID:         s.ID,
				Default:    s.Default,
			})
		}
		table.AddBlock(blockID, states)
	}
	return table, nil
}
